package model

import (
	"context"
	"time"
)

// Role is the professional track a candidate practices for.
type Role string

const (
	RoleSoftware Role = "software"
	RoleAIML     Role = "aiml"
	RoleData     Role = "data"
	RoleSecurity Role = "security"
)

// Roles lists every selectable interview role.
func Roles() []Role {
	return []Role{RoleSoftware, RoleAIML, RoleData, RoleSecurity}
}

// Valid reports whether r is one of the four interview roles.
func (r Role) Valid() bool {
	switch r {
	case RoleSoftware, RoleAIML, RoleData, RoleSecurity:
		return true
	}
	return false
}

// Mode selects how a practice session is run.
type Mode string

const (
	ModePractice  Mode = "practice"
	ModeTest      Mode = "test"
	ModeInterview Mode = "interview"
)

// Valid reports whether m is a known session mode.
func (m Mode) Valid() bool {
	switch m {
	case ModePractice, ModeTest, ModeInterview:
		return true
	}
	return false
}

// Timed reports whether a per-question countdown runs in this mode.
// Practice mode is untimed; test and interview modes are not.
func (m Mode) Timed() bool {
	return m != ModePractice
}

// SessionStatus represents the lifecycle status of an interview session.
type SessionStatus string

const (
	StatusPending  SessionStatus = "pending"
	StatusActive   SessionStatus = "active"
	StatusComplete SessionStatus = "complete"
)

// UserRole represents a user's access level.
type UserRole string

const (
	// UserRoleCandidate is a regular practicing user.
	UserRoleCandidate UserRole = "candidate"
	// UserRoleAdmin manages users.
	UserRoleAdmin UserRole = "admin"
)

// User represents a system user.
type User struct {
	ID           int64
	Username     string
	DisplayName  string
	PasswordHash string
	Role         UserRole
	Active       bool
	CreatedAt    time.Time
}

// AuthSession represents an authentication session.
type AuthSession struct {
	ID        string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Question is one prompt served to the candidate. Ordinal is 1-based
// and keeps increasing across the session even though the underlying
// prompt bank cycles.
type Question struct {
	Ordinal  int    `json:"ordinal"`
	Category string `json:"category"`
	Prompt   string `json:"prompt"`
}

// AnswerMetrics are the four per-answer sub-scores, each in [0,10].
// Confidence is supplied by the candidate; the rest are computed.
type AnswerMetrics struct {
	Clarity           int `json:"clarity"`
	TechnicalAccuracy int `json:"technical_accuracy"`
	Completeness      int `json:"completeness"`
	Confidence        int `json:"confidence"`
}

// Feedback is the derived scoring output shown after each answer.
type Feedback struct {
	Score        int           `json:"score"`
	Metrics      AnswerMetrics `json:"metrics"`
	Strengths    []string      `json:"strengths"`
	Improvements []string      `json:"improvements"`
	Keywords     []string      `json:"keywords,omitempty"`
}

// Session is one complete practice attempt by a candidate.
type Session struct {
	ID             string        `json:"id"`
	CandidateID    int64         `json:"candidate_id"`
	Role           Role          `json:"role"`
	Mode           Mode          `json:"mode"`
	Status         SessionStatus `json:"status"`
	StartedAt      time.Time     `json:"started_at"`
	TotalQuestions int           `json:"total_questions"`
	CorrectAnswers int           `json:"correct_answers"`
	TotalTime      int           `json:"total_time"`
}

// Response is the persisted record of one answered question.
// The question text is denormalized onto the row; metric scores and
// keywords are a stored copy of the feedback computed at answer time.
type Response struct {
	ID              int64     `json:"id"`
	SessionID       string    `json:"session_id"`
	QuestionText    string    `json:"question_text"`
	Answer          string    `json:"user_answer"`
	TimeTaken       int       `json:"time_taken"`
	ClarityScore    int       `json:"clarity_score"`
	TechnicalScore  int       `json:"technical_score"`
	CompletionScore int       `json:"completion_score"`
	ConfidenceScore int       `json:"confidence_score"`
	Keywords        []string  `json:"keywords_used,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// SessionReport aggregates a finished session for the analysis view.
type SessionReport struct {
	Session     Session    `json:"session"`
	Responses   []Response `json:"responses"`
	Accuracy    int        `json:"accuracy"`
	AverageTime int        `json:"average_time"`
}

// SessionConfig holds runtime parameters set via CLI flags.
type SessionConfig struct {
	QuestionsPerSession int  // fixed question count per session
	TimerDuration       int  // per-question countdown in seconds (timed modes)
	SecureCookies       bool // Set Secure flag on cookies (disable for local dev)
}

type userCtxKey struct{}

// ContextWithUser stores a user in the request context.
func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, u)
}

// UserFromContext retrieves the authenticated user from context, or nil.
func UserFromContext(ctx context.Context) *User {
	u, _ := ctx.Value(userCtxKey{}).(*User)
	return u
}
