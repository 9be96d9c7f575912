package i18n

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTranslations(t *testing.T) {
	if err := Init("en"); err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	en := WithLocalizer(context.Background(), NewLocalizer("en"))
	ru := WithLocalizer(context.Background(), NewLocalizer("ru"))

	if got := T(en, "SessionNotFound"); got != "Session not found" {
		t.Errorf("en SessionNotFound = %q", got)
	}
	if got := T(ru, "SessionNotFound"); got != "Сессия не найдена" {
		t.Errorf("ru SessionNotFound = %q", got)
	}

	// Unknown IDs fall through unchanged.
	if got := T(en, "NoSuchMessage"); got != "NoSuchMessage" {
		t.Errorf("unknown ID = %q", got)
	}

	// A context without a localizer falls back to English.
	if got := T(context.Background(), "ReturnHome"); got != "Return Home" {
		t.Errorf("fallback ReturnHome = %q", got)
	}
}

func TestTemplateData(t *testing.T) {
	if err := Init("en"); err != nil {
		t.Fatalf("init i18n: %v", err)
	}
	ctx := WithLocalizer(context.Background(), NewLocalizer("en"))

	got := Td(ctx, "QuestionProgress", map[string]any{"Current": 2, "Total": 5})
	if got != "Question 2 of 5" {
		t.Errorf("QuestionProgress = %q", got)
	}
}

func TestMiddlewareLangOverride(t *testing.T) {
	if err := Init("en"); err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	var got string
	h := Middleware("en")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = T(r.Context(), "AppTitle")
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/?lang=ru", nil))
	if got != "ИИ-ассистент для собеседований" {
		t.Errorf("ru AppTitle = %q", got)
	}

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	if got != "AI Interview Assistant" {
		t.Errorf("default AppTitle = %q", got)
	}
}
