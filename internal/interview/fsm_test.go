package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionValid(t *testing.T) {
	tests := []struct {
		name    string
		current State
		event   Event
		want    State
	}{
		{"role selection", StateRoleSelect, EventSelectRole, StateModeSelect},
		{"mode selection", StateModeSelect, EventSelectMode, StateQuestioning},
		{"pending session found", StateModeSelect, EventPendingFound, StateConfirmPending},
		{"confirm new session", StateConfirmPending, EventConfirmNew, StateQuestioning},
		{"dismiss pending prompt", StateConfirmPending, EventDismiss, StateModeSelect},
		{"answer", StateQuestioning, EventAnswer, StateFeedback},
		{"back while questioning", StateQuestioning, EventBack, StateQuestioning},
		{"finish while questioning", StateQuestioning, EventFinish, StateComplete},
		{"continue past feedback", StateFeedback, EventContinue, StateQuestioning},
		{"back from feedback", StateFeedback, EventBack, StateQuestioning},
		{"finish from feedback", StateFeedback, EventFinish, StateComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.current, tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransitionInvalid(t *testing.T) {
	tests := []struct {
		current State
		event   Event
	}{
		{StateRoleSelect, EventSelectMode},
		{StateRoleSelect, EventAnswer},
		{StateModeSelect, EventSelectRole},
		{StateModeSelect, EventConfirmNew},
		{StateConfirmPending, EventAnswer},
		{StateQuestioning, EventSelectRole},
		{StateQuestioning, EventContinue},
		{StateFeedback, EventAnswer},
		{StateComplete, EventAnswer},
		{StateComplete, EventContinue},
		{StateComplete, EventFinish},
	}

	for _, tt := range tests {
		got, err := Transition(tt.current, tt.event)
		assert.Error(t, err, "expected %s --(%s)--> to fail", tt.current, tt.event)
		assert.Equal(t, tt.current, got, "failed transition must not move the state")
	}
}

func TestTransitionUnknownState(t *testing.T) {
	_, err := Transition(State("limbo"), EventAnswer)
	assert.Error(t, err)
}

func TestHappyPathSequence(t *testing.T) {
	state := StateRoleSelect
	for _, event := range []Event{
		EventSelectRole, EventSelectMode,
		EventAnswer, EventContinue,
		EventAnswer, EventFinish,
	} {
		next, err := Transition(state, event)
		require.NoError(t, err)
		state = next
	}
	assert.Equal(t, StateComplete, state)
}
