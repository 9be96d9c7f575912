package model

import "time"

// SessionsExport is the top-level JSON structure for session export.
type SessionsExport struct {
	GeneratedAt time.Time       `json:"generated_at"`
	NumSessions int             `json:"num_sessions"`
	Sessions    []SessionResult `json:"sessions"`
}

// SessionResult holds one candidate session for export.
type SessionResult struct {
	SessionID      string           `json:"session_id"`
	Candidate      string           `json:"candidate"`
	Role           Role             `json:"role"`
	Mode           Mode             `json:"mode"`
	Status         SessionStatus    `json:"status"`
	StartedAt      time.Time        `json:"started_at"`
	TotalQuestions int              `json:"total_questions"`
	CorrectAnswers int              `json:"correct_answers"`
	TotalTime      int              `json:"total_time"`
	Responses      []ResponseResult `json:"responses"`
}

// ResponseResult holds per-answer data for export.
type ResponseResult struct {
	Question        string   `json:"question"`
	Answer          string   `json:"answer"`
	TimeTaken       int      `json:"time_taken"`
	ClarityScore    int      `json:"clarity_score"`
	TechnicalScore  int      `json:"technical_score"`
	CompletionScore int      `json:"completion_score"`
	ConfidenceScore int      `json:"confidence_score"`
	Keywords        []string `json:"keywords,omitempty"`
}
