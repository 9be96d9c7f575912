package interview

import "fmt"

// State is one step of the interview session lifecycle.
type State string

// Event triggers a transition between states.
type Event string

const (
	StateRoleSelect     State = "role_select"
	StateModeSelect     State = "mode_select"
	StateConfirmPending State = "confirm_pending"
	StateQuestioning    State = "questioning"
	StateFeedback       State = "feedback"
	StateComplete       State = "complete"
)

const (
	EventSelectRole   Event = "select_role"
	EventSelectMode   Event = "select_mode"
	EventPendingFound Event = "pending_found"
	EventConfirmNew   Event = "confirm_new"
	EventDismiss      Event = "dismiss"
	EventAnswer       Event = "answer"
	EventContinue     Event = "continue"
	EventBack         Event = "back"
	EventFinish       Event = "finish"
)

// Transition applies one event to a state and returns the next state.
// The back event is a self-transition on questioning: the ordinal moves
// but the state does not. Complete is terminal.
func Transition(current State, event Event) (State, error) {
	switch current {
	case StateRoleSelect:
		switch event {
		case EventSelectRole:
			return StateModeSelect, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateModeSelect:
		switch event {
		case EventSelectMode:
			return StateQuestioning, nil
		case EventPendingFound:
			return StateConfirmPending, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateConfirmPending:
		switch event {
		case EventConfirmNew:
			return StateQuestioning, nil
		case EventDismiss:
			return StateModeSelect, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateQuestioning:
		switch event {
		case EventAnswer:
			return StateFeedback, nil
		case EventBack:
			return StateQuestioning, nil
		case EventFinish:
			return StateComplete, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateFeedback:
		switch event {
		case EventContinue:
			return StateQuestioning, nil
		case EventBack:
			return StateQuestioning, nil
		case EventFinish:
			return StateComplete, nil
		default:
			return current, invalidTransition(current, event)
		}
	case StateComplete:
		return current, invalidTransition(current, event)
	default:
		return current, fmt.Errorf("unknown state %q", current)
	}
}

func invalidTransition(state State, event Event) error {
	return fmt.Errorf("invalid transition: %s --(%s)--> ?", state, event)
}
