package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/santhoshini-18/interview-assistance/internal/model"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		display_name TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'candidate',
		active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS auth_sessions (
		id TEXT PRIMARY KEY,
		user_id INTEGER NOT NULL,
		created_at DATETIME NOT NULL,
		expires_at DATETIME NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS interview_sessions (
		id TEXT PRIMARY KEY,
		candidate_id INTEGER NOT NULL,
		role TEXT NOT NULL,
		mode TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		started_at DATETIME NOT NULL,
		total_questions INTEGER NOT NULL DEFAULT 0,
		correct_answers INTEGER NOT NULL DEFAULT 0,
		total_time INTEGER NOT NULL DEFAULT 0,
		FOREIGN KEY (candidate_id) REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS responses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		question_text TEXT NOT NULL,
		user_answer TEXT NOT NULL,
		time_taken INTEGER NOT NULL DEFAULT 0,
		clarity_score INTEGER NOT NULL DEFAULT 0,
		technical_score INTEGER NOT NULL DEFAULT 0,
		completion_score INTEGER NOT NULL DEFAULT 0,
		confidence_score INTEGER NOT NULL DEFAULT 0,
		keywords_used TEXT NOT NULL DEFAULT '[]',
		created_at DATETIME NOT NULL,
		FOREIGN KEY (session_id) REFERENCES interview_sessions(id)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// CreateSession inserts a new pending session and returns its identifier.
func (s *Store) CreateSession(ctx context.Context, candidateID int64, role model.Role, mode model.Mode) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO interview_sessions (id, candidate_id, role, mode, status, started_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, candidateID, role, mode, model.StatusPending, time.Now(),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// GetSession returns a session by ID.
func (s *Store) GetSession(ctx context.Context, id string) (model.Session, error) {
	var sess model.Session
	err := s.db.QueryRowContext(ctx,
		`SELECT id, candidate_id, role, mode, status, started_at, total_questions, correct_answers, total_time
		 FROM interview_sessions WHERE id = ?`, id,
	).Scan(&sess.ID, &sess.CandidateID, &sess.Role, &sess.Mode, &sess.Status,
		&sess.StartedAt, &sess.TotalQuestions, &sess.CorrectAnswers, &sess.TotalTime)
	return sess, err
}

// FindPendingSession returns the candidate's most recent pending
// session, or nil when none exists.
func (s *Store) FindPendingSession(ctx context.Context, candidateID int64) (*model.Session, error) {
	var sess model.Session
	err := s.db.QueryRowContext(ctx,
		`SELECT id, candidate_id, role, mode, status, started_at, total_questions, correct_answers, total_time
		 FROM interview_sessions
		 WHERE candidate_id = ? AND status = ?
		 ORDER BY started_at DESC LIMIT 1`, candidateID, model.StatusPending,
	).Scan(&sess.ID, &sess.CandidateID, &sess.Role, &sess.Mode, &sess.Status,
		&sess.StartedAt, &sess.TotalQuestions, &sess.CorrectAnswers, &sess.TotalTime)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// UpdateSessionProgress records the running question/answer/time tally.
func (s *Store) UpdateSessionProgress(ctx context.Context, id string, totalQuestions, correctAnswers, totalTime int) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE interview_sessions SET total_questions = ?, correct_answers = ?, total_time = ? WHERE id = ?`,
		totalQuestions, correctAnswers, totalTime, id,
	)
	return err
}

// UpdateSessionStatus updates the session status.
func (s *Store) UpdateSessionStatus(ctx context.Context, id string, status model.SessionStatus) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE interview_sessions SET status = ? WHERE id = ?`, status, id,
	)
	return err
}

// ListSessions returns all sessions, newest first.
func (s *Store) ListSessions(ctx context.Context) ([]model.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, candidate_id, role, mode, status, started_at, total_questions, correct_answers, total_time
		 FROM interview_sessions ORDER BY started_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var sessions []model.Session
	for rows.Next() {
		var sess model.Session
		if err := rows.Scan(&sess.ID, &sess.CandidateID, &sess.Role, &sess.Mode, &sess.Status,
			&sess.StartedAt, &sess.TotalQuestions, &sess.CorrectAnswers, &sess.TotalTime); err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// InsertResponse stores one answered question. Responses are never
// mutated or deleted afterwards.
func (s *Store) InsertResponse(ctx context.Context, resp model.Response) error {
	keywords, err := json.Marshal(resp.Keywords)
	if err != nil {
		return fmt.Errorf("marshal keywords: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO responses
		 (session_id, question_text, user_answer, time_taken,
		  clarity_score, technical_score, completion_score, confidence_score, keywords_used, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		resp.SessionID, resp.QuestionText, resp.Answer, resp.TimeTaken,
		resp.ClarityScore, resp.TechnicalScore, resp.CompletionScore, resp.ConfidenceScore,
		string(keywords), time.Now(),
	)
	return err
}

// GetResponses returns a session's responses in answer order.
func (s *Store) GetResponses(ctx context.Context, sessionID string) ([]model.Response, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, question_text, user_answer, time_taken,
		        clarity_score, technical_score, completion_score, confidence_score, keywords_used, created_at
		 FROM responses WHERE session_id = ? ORDER BY id`, sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var responses []model.Response
	for rows.Next() {
		var r model.Response
		var keywords string
		if err := rows.Scan(&r.ID, &r.SessionID, &r.QuestionText, &r.Answer, &r.TimeTaken,
			&r.ClarityScore, &r.TechnicalScore, &r.CompletionScore, &r.ConfidenceScore,
			&keywords, &r.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(keywords), &r.Keywords); err != nil {
			return nil, fmt.Errorf("unmarshal keywords for response %d: %w", r.ID, err)
		}
		responses = append(responses, r)
	}
	return responses, rows.Err()
}

// GetSessionReport builds the aggregate analysis view for a session.
// Returns nil when the session does not exist.
func (s *Store) GetSessionReport(ctx context.Context, sessionID string) (*model.SessionReport, error) {
	sess, err := s.GetSession(ctx, sessionID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	responses, err := s.GetResponses(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	report := &model.SessionReport{Session: sess, Responses: responses}
	if sess.TotalQuestions > 0 {
		report.Accuracy = int(math.Round(float64(sess.CorrectAnswers) / float64(sess.TotalQuestions) * 100))
		report.AverageTime = int(math.Round(float64(sess.TotalTime) / float64(sess.TotalQuestions)))
	}
	return report, nil
}
