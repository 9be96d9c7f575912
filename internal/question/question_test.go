package question

import (
	"testing"

	"github.com/santhoshini-18/interview-assistance/internal/model"
)

func TestGetOrdinalAndCycling(t *testing.T) {
	for _, role := range model.Roles() {
		size := BankSize(role)
		if size == 0 {
			t.Fatalf("role %q has an empty prompt bank", role)
		}

		for i := 0; i < size*3; i++ {
			q := Get(role, i)
			if q.Ordinal != i+1 {
				t.Errorf("Get(%q, %d).Ordinal = %d, want %d", role, i, q.Ordinal, i+1)
			}
			if q.Prompt == "" || q.Category == "" {
				t.Errorf("Get(%q, %d) has empty prompt or category", role, i)
			}

			// Prompts repeat bank-size apart, but ordinals keep increasing.
			base := Get(role, i%size)
			if q.Prompt != base.Prompt || q.Category != base.Category {
				t.Errorf("Get(%q, %d) does not cycle: got %q, want %q", role, i, q.Prompt, base.Prompt)
			}
		}
	}
}

func TestGetDeterministic(t *testing.T) {
	first := Get(model.RoleSoftware, 1)
	second := Get(model.RoleSoftware, 1)
	if first != second {
		t.Errorf("Get is not deterministic: %+v != %+v", first, second)
	}
}

func TestGetUnknownRolePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get with unknown role did not panic")
		}
	}()
	Get(model.Role("astronaut"), 0)
}

func TestBanksDistinctPerRole(t *testing.T) {
	seen := make(map[string]model.Role)
	for _, role := range model.Roles() {
		for i := 0; i < BankSize(role); i++ {
			q := Get(role, i)
			if prev, ok := seen[q.Prompt]; ok {
				t.Errorf("prompt %q shared between roles %q and %q", q.Prompt, prev, role)
			}
			seen[q.Prompt] = role
		}
	}
}
