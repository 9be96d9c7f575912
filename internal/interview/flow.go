// Package interview orchestrates the mock-interview session lifecycle:
// role and mode choice, the question loop, per-answer scoring, and
// completion.
package interview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/santhoshini-18/interview-assistance/internal/feedback"
	"github.com/santhoshini-18/interview-assistance/internal/model"
	"github.com/santhoshini-18/interview-assistance/internal/question"
)

// TimeUpAnswer is the sentinel answer recorded when the question timer
// expires before the candidate submits anything.
const TimeUpAnswer = "Time's up - No answer provided"

var (
	// ErrInvalidRole rejects a role outside the four interview tracks.
	ErrInvalidRole = errors.New("unknown interview role")
	// ErrInvalidMode rejects a mode outside practice/test/interview.
	ErrInvalidMode = errors.New("unknown session mode")
	// ErrBackUnavailable rejects back-navigation before any answer.
	ErrBackUnavailable = errors.New("no previous question to go back to")
)

// Store is the narrow persistence contract the flow depends on.
// Failures surface to the caller and leave the flow state unchanged.
type Store interface {
	FindPendingSession(ctx context.Context, candidateID int64) (*model.Session, error)
	CreateSession(ctx context.Context, candidateID int64, role model.Role, mode model.Mode) (string, error)
	InsertResponse(ctx context.Context, resp model.Response) error
	UpdateSessionProgress(ctx context.Context, sessionID string, totalQuestions, correctAnswers, totalTime int) error
	UpdateSessionStatus(ctx context.Context, sessionID string, status model.SessionStatus) error
}

// TimerStarter launches a per-question countdown and returns a stop
// function. A nil TimerStarter disables countdowns entirely.
type TimerStarter func(seconds int, onExpire func()) (stop func())

// Flow drives one candidate's interview session. All methods are safe
// for concurrent use; transitions happen one event at a time.
type Flow struct {
	store       Store
	cfg         model.SessionConfig
	candidateID int64
	startTimer  TimerStarter
	now         func() time.Time

	mu            sync.Mutex
	state         State
	role          model.Role
	mode          model.Mode
	sessionID     string
	current       int // zero-based question index
	answers       []string
	last          *model.Feedback
	questionStart time.Time
	totalElapsed  int
	stopTimer     func()
}

// NewFlow creates a flow in the role-selection state for one candidate.
func NewFlow(store Store, cfg model.SessionConfig, candidateID int64, startTimer TimerStarter) *Flow {
	return &Flow{
		store:       store,
		cfg:         cfg,
		candidateID: candidateID,
		startTimer:  startTimer,
		now:         time.Now,
		state:       StateRoleSelect,
	}
}

// State returns the current state snapshot.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Snapshot is the flow's externally visible progress.
type Snapshot struct {
	State          State           `json:"state"`
	Role           model.Role      `json:"role,omitempty"`
	Mode           model.Mode      `json:"mode,omitempty"`
	SessionID      string          `json:"session_id,omitempty"`
	Question       *model.Question `json:"question,omitempty"`
	QuestionNumber int             `json:"question_number,omitempty"`
	TotalQuestions int             `json:"total_questions"`
	Feedback       *model.Feedback `json:"feedback,omitempty"`
	CanGoBack      bool            `json:"can_go_back"`
	TimerSeconds   int             `json:"timer_seconds,omitempty"`
}

// Snapshot reports the current progress for display.
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := Snapshot{
		State:          f.state,
		Role:           f.role,
		Mode:           f.mode,
		SessionID:      f.sessionID,
		TotalQuestions: f.cfg.QuestionsPerSession,
		CanGoBack:      f.current > 0 && (f.state == StateQuestioning || f.state == StateFeedback),
	}
	if f.state == StateQuestioning || f.state == StateFeedback {
		q := question.Get(f.role, f.current)
		snap.Question = &q
		snap.QuestionNumber = f.current + 1
	}
	if f.state == StateFeedback {
		snap.Feedback = f.last
	}
	if f.state == StateQuestioning && f.mode.Timed() {
		snap.TimerSeconds = f.cfg.TimerDuration
	}
	return snap
}

// SelectRole records the candidate's interview role.
func (f *Flow) SelectRole(role model.Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.transition(EventSelectRole); err != nil {
		return err
	}
	f.role = role
	return nil
}

// SelectMode records the session mode and starts a new session, unless
// a pending session already exists for the candidate. In that case the
// flow moves to the confirmation state and pendingFound is true; the
// existing pending row is left untouched.
func (f *Flow) SelectMode(ctx context.Context, mode model.Mode) (pendingFound bool, err error) {
	if !mode.Valid() {
		return false, ErrInvalidMode
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateModeSelect {
		return false, invalidTransition(f.state, EventSelectMode)
	}

	existing, err := f.store.FindPendingSession(ctx, f.candidateID)
	if err != nil {
		return false, fmt.Errorf("check existing session: %w", err)
	}
	if existing != nil {
		if err := f.transition(EventPendingFound); err != nil {
			return false, err
		}
		f.mode = mode
		slog.Info("pending session found, awaiting confirmation",
			"candidate_id", f.candidateID, "session_id", existing.ID)
		return true, nil
	}

	f.mode = mode
	return false, f.beginSession(ctx, EventSelectMode)
}

// ConfirmNewSession proceeds past the pending-session prompt by
// creating a fresh session. The old pending row stays in storage.
func (f *Flow) ConfirmNewSession(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateConfirmPending {
		return invalidTransition(f.state, EventConfirmNew)
	}
	return f.beginSession(ctx, EventConfirmNew)
}

// Dismiss backs out of the pending-session prompt to mode selection.
func (f *Flow) Dismiss() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.transition(EventDismiss); err != nil {
		return err
	}
	f.mode = ""
	return nil
}

// beginSession creates the storage session and enters the question
// loop. Callers hold the lock.
func (f *Flow) beginSession(ctx context.Context, event Event) error {
	id, err := f.store.CreateSession(ctx, f.candidateID, f.role, f.mode)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	if err := f.transition(event); err != nil {
		return err
	}
	f.sessionID = id
	f.current = 0
	f.answers = nil
	f.last = nil
	f.totalElapsed = 0
	f.questionStart = f.now()
	f.armTimer()
	slog.Info("session started",
		"session_id", id, "candidate_id", f.candidateID, "role", f.role, "mode", f.mode)
	return nil
}

// SubmitAnswer records the candidate's answer for the current question:
// the response row is persisted first, then the in-memory answer list
// grows and the feedback is computed and shown.
func (f *Flow) SubmitAnswer(ctx context.Context, answer string, confidence int) (model.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitAnswer(ctx, answer, confidence)
}

// TimeExpired handles a countdown reaching zero: a sentinel answer is
// submitted on the candidate's behalf. Expiry after the answer already
// landed is ignored.
func (f *Flow) TimeExpired(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateQuestioning {
		return
	}
	if _, err := f.submitAnswer(ctx, TimeUpAnswer, feedback.DefaultConfidence); err != nil {
		slog.Error("recording timed-out answer failed", "session_id", f.sessionID, "error", err)
	}
}

func (f *Flow) submitAnswer(ctx context.Context, answer string, confidence int) (model.Feedback, error) {
	if f.state != StateQuestioning {
		return model.Feedback{}, invalidTransition(f.state, EventAnswer)
	}

	elapsed := int(math.Round(f.now().Sub(f.questionStart).Seconds()))
	q := question.Get(f.role, f.current)
	fb := feedback.Analyze(answer, confidence)

	err := f.store.InsertResponse(ctx, model.Response{
		SessionID:       f.sessionID,
		QuestionText:    q.Prompt,
		Answer:          answer,
		TimeTaken:       elapsed,
		ClarityScore:    fb.Metrics.Clarity,
		TechnicalScore:  fb.Metrics.TechnicalAccuracy,
		CompletionScore: fb.Metrics.Completeness,
		ConfidenceScore: fb.Metrics.Confidence,
		Keywords:        fb.Keywords,
	})
	if err != nil {
		return model.Feedback{}, fmt.Errorf("save response: %w", err)
	}

	if err := f.transition(EventAnswer); err != nil {
		return model.Feedback{}, err
	}
	f.answers = append(f.answers, answer)
	f.last = &fb
	f.totalElapsed += elapsed
	f.questionStart = f.now()
	f.disarmTimer()
	return fb, nil
}

// Continue moves past the feedback view: to the next question, or to
// completion once the fixed question count has been answered.
func (f *Flow) Continue(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateFeedback {
		return invalidTransition(f.state, EventContinue)
	}

	if f.current+1 >= f.cfg.QuestionsPerSession {
		return f.finish(ctx)
	}

	err := f.store.UpdateSessionProgress(ctx, f.sessionID, f.current+1, len(f.answers), f.totalElapsed)
	if err != nil {
		return fmt.Errorf("update session progress: %w", err)
	}
	if err := f.transition(EventContinue); err != nil {
		return err
	}
	f.current++
	f.last = nil
	f.questionStart = f.now()
	f.armTimer()
	return nil
}

// Back rolls back one question: the ordinal decrements and the most
// recent in-memory answer is discarded. The persisted response row is
// intentionally kept; only process memory is rewound. Callers are
// expected to have confirmed the action with the candidate.
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current == 0 {
		return ErrBackUnavailable
	}
	if err := f.transition(EventBack); err != nil {
		return err
	}
	f.current--
	if n := len(f.answers); n > 0 {
		f.answers = f.answers[:n-1]
	}
	f.last = nil
	f.questionStart = f.now()
	f.armTimer()
	return nil
}

// Finish ends the session and returns its identifier for the report.
func (f *Flow) Finish(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != StateQuestioning && f.state != StateFeedback {
		return "", invalidTransition(f.state, EventFinish)
	}
	if err := f.finish(ctx); err != nil {
		return "", err
	}
	return f.sessionID, nil
}

// finish persists the final tally, marks the session complete, and
// enters the terminal state. Callers hold the lock.
func (f *Flow) finish(ctx context.Context) error {
	err := f.store.UpdateSessionProgress(ctx, f.sessionID, len(f.answers), len(f.answers), f.totalElapsed)
	if err != nil {
		return fmt.Errorf("update session progress: %w", err)
	}
	if err := f.store.UpdateSessionStatus(ctx, f.sessionID, model.StatusComplete); err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	if err := f.transition(EventFinish); err != nil {
		return err
	}
	f.disarmTimer()
	slog.Info("session complete",
		"session_id", f.sessionID, "answers", len(f.answers), "total_time", f.totalElapsed)
	return nil
}

// transition applies one event to the flow state. Callers hold the lock.
func (f *Flow) transition(event Event) error {
	next, err := Transition(f.state, event)
	if err != nil {
		return err
	}
	f.state = next
	return nil
}

// armTimer starts a fresh per-question countdown in timed modes.
func (f *Flow) armTimer() {
	f.disarmTimer()
	if f.startTimer == nil || !f.mode.Timed() {
		return
	}
	f.stopTimer = f.startTimer(f.cfg.TimerDuration, func() {
		f.TimeExpired(context.Background())
	})
}

func (f *Flow) disarmTimer() {
	if f.stopTimer != nil {
		f.stopTimer()
		f.stopTimer = nil
	}
}
