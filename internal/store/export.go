package store

import (
	"context"
	"fmt"
	"time"

	"github.com/santhoshini-18/interview-assistance/internal/model"
)

// ExportAllSessions builds export-ready results from every session and
// its responses.
func (s *Store) ExportAllSessions(ctx context.Context) (model.SessionsExport, error) {
	sessions, err := s.ListSessions(ctx)
	if err != nil {
		return model.SessionsExport{}, fmt.Errorf("list sessions: %w", err)
	}

	export := model.SessionsExport{
		GeneratedAt: time.Now(),
		NumSessions: len(sessions),
	}

	for _, sess := range sessions {
		user, err := s.GetUserByID(ctx, sess.CandidateID)
		if err != nil {
			return model.SessionsExport{}, fmt.Errorf("get user %d: %w", sess.CandidateID, err)
		}
		candidate := ""
		if user != nil {
			candidate = user.DisplayName
		}

		responses, err := s.GetResponses(ctx, sess.ID)
		if err != nil {
			return model.SessionsExport{}, fmt.Errorf("get responses for %s: %w", sess.ID, err)
		}

		var rr []model.ResponseResult
		for _, r := range responses {
			rr = append(rr, model.ResponseResult{
				Question:        r.QuestionText,
				Answer:          r.Answer,
				TimeTaken:       r.TimeTaken,
				ClarityScore:    r.ClarityScore,
				TechnicalScore:  r.TechnicalScore,
				CompletionScore: r.CompletionScore,
				ConfidenceScore: r.ConfidenceScore,
				Keywords:        r.Keywords,
			})
		}

		export.Sessions = append(export.Sessions, model.SessionResult{
			SessionID:      sess.ID,
			Candidate:      candidate,
			Role:           sess.Role,
			Mode:           sess.Mode,
			Status:         sess.Status,
			StartedAt:      sess.StartedAt,
			TotalQuestions: sess.TotalQuestions,
			CorrectAnswers: sess.CorrectAnswers,
			TotalTime:      sess.TotalTime,
			Responses:      rr,
		})
	}

	return export, nil
}
