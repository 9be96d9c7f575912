// Package handler exposes the interview engine over a JSON HTTP API.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	appI18n "github.com/santhoshini-18/interview-assistance/internal/i18n"
	"github.com/santhoshini-18/interview-assistance/internal/interview"
	"github.com/santhoshini-18/interview-assistance/internal/model"
	"github.com/santhoshini-18/interview-assistance/internal/store"
	"github.com/santhoshini-18/interview-assistance/internal/voice"
)

// defaultConfidence matches the answer form's slider default.
const defaultConfidence = 5

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	store  *store.Store
	flows  *interview.Manager
	config model.SessionConfig
	device voice.Device

	recMu     sync.Mutex
	recorders map[int64]*voice.Recorder
}

// New creates a new Handler.
func New(s *store.Store, flows *interview.Manager, cfg model.SessionConfig, device voice.Device) *Handler {
	return &Handler{
		store:     s,
		flows:     flows,
		config:    cfg,
		device:    device,
		recorders: make(map[int64]*voice.Recorder),
	}
}

// Routes registers all HTTP routes.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/api/signup", h.handleSignup)
	r.Post("/api/login", h.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Use(h.csrfMiddleware)

		r.Post("/api/logout", h.handleLogout)

		r.Get("/api/interview", h.handleInterviewState)
		r.Post("/api/interview/role", h.handleSelectRole)
		r.Post("/api/interview/mode", h.handleSelectMode)
		r.Post("/api/interview/confirm", h.handleConfirmNew)
		r.Post("/api/interview/dismiss", h.handleDismiss)
		r.Post("/api/interview/answer", h.handleAnswer)
		r.Post("/api/interview/continue", h.handleContinue)
		r.Post("/api/interview/back", h.handleBack)
		r.Post("/api/interview/finish", h.handleFinish)
		r.Post("/api/interview/voice/toggle", h.handleVoiceToggle)
		r.Post("/api/interview/voice/chunk", h.handleVoiceChunk)

		r.Get("/api/report/{sessionID}", h.handleReport)

		r.Route("/api/admin", func(r chi.Router) {
			r.Use(requireRole(model.UserRoleAdmin))
			r.Get("/users", h.handleAdminListUsers)
			r.Post("/users", h.handleAdminCreateUser)
			r.Post("/users/{userID}/toggle", h.handleAdminToggleUser)
		})
	})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// notify sends the localized user-visible notice for a failed action.
func notify(w http.ResponseWriter, r *http.Request, status int, msgID string) {
	respondJSON(w, status, map[string]string{"error": appI18n.T(r.Context(), msgID)})
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// flow returns the interview flow for the authenticated candidate.
func (h *Handler) flow(r *http.Request) *interview.Flow {
	user := model.UserFromContext(r.Context())
	return h.flows.Flow(user.ID)
}

// recorder returns the per-candidate voice recorder, creating it lazily.
func (h *Handler) recorder(r *http.Request) *voice.Recorder {
	user := model.UserFromContext(r.Context())
	h.recMu.Lock()
	defer h.recMu.Unlock()
	rec, ok := h.recorders[user.ID]
	if !ok {
		rec = voice.NewRecorder(h.device)
		h.recorders[user.ID] = rec
	}
	return rec
}

func (h *Handler) handleInterviewState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.flow(r).Snapshot())
}

func (h *Handler) handleSelectRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Role model.Role `json:"role"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	f := h.flow(r)
	if err := f.SelectRole(req.Role); err != nil {
		if errors.Is(err, interview.ErrInvalidRole) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	respondJSON(w, http.StatusOK, f.Snapshot())
}

func (h *Handler) handleSelectMode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode model.Mode `json:"mode"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	f := h.flow(r)
	pending, err := f.SelectMode(r.Context(), req.Mode)
	if err != nil {
		if errors.Is(err, interview.ErrInvalidMode) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("mode selection failed", "error", err)
		notify(w, r, http.StatusInternalServerError, "ErrorStartingSession")
		return
	}
	if pending {
		respondJSON(w, http.StatusConflict, map[string]any{
			"confirm_required": true,
			"message":          appI18n.T(r.Context(), "SessionExists"),
		})
		return
	}
	respondJSON(w, http.StatusOK, f.Snapshot())
}

func (h *Handler) handleConfirmNew(w http.ResponseWriter, r *http.Request) {
	f := h.flow(r)
	if err := f.ConfirmNewSession(r.Context()); err != nil {
		slog.Error("confirm new session failed", "error", err)
		notify(w, r, http.StatusInternalServerError, "ErrorStartingSession")
		return
	}
	respondJSON(w, http.StatusOK, f.Snapshot())
}

func (h *Handler) handleDismiss(w http.ResponseWriter, r *http.Request) {
	f := h.flow(r)
	if err := f.Dismiss(); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	respondJSON(w, http.StatusOK, f.Snapshot())
}

func (h *Handler) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Answer     string `json:"answer"`
		Confidence int    `json:"confidence"`
	}
	if err := decodeBody(r, &req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Answer == "" {
		http.Error(w, "answer cannot be empty", http.StatusBadRequest)
		return
	}
	if req.Confidence == 0 {
		req.Confidence = defaultConfidence
	}

	f := h.flow(r)
	fb, err := f.SubmitAnswer(r.Context(), req.Answer, req.Confidence)
	if err != nil {
		slog.Error("submit answer failed", "error", err)
		notify(w, r, http.StatusInternalServerError, "ErrorSavingResponse")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"feedback": fb,
		"state":    f.Snapshot(),
	})
}

func (h *Handler) handleContinue(w http.ResponseWriter, r *http.Request) {
	f := h.flow(r)
	if err := f.Continue(r.Context()); err != nil {
		slog.Error("continue failed", "error", err)
		notify(w, r, http.StatusInternalServerError, "ErrorUpdatingSession")
		return
	}
	respondJSON(w, http.StatusOK, f.Snapshot())
}

func (h *Handler) handleBack(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Confirm bool `json:"confirm"`
	}
	if err := decodeBody(r, &req); err != nil && err != io.EOF {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !req.Confirm {
		respondJSON(w, http.StatusConflict, map[string]any{
			"confirm_required": true,
			"message":          appI18n.T(r.Context(), "ConfirmBack"),
		})
		return
	}

	f := h.flow(r)
	if err := f.Back(); err != nil {
		if errors.Is(err, interview.ErrBackUnavailable) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	respondJSON(w, http.StatusOK, f.Snapshot())
}

func (h *Handler) handleFinish(w http.ResponseWriter, r *http.Request) {
	f := h.flow(r)
	sessionID, err := f.Finish(r.Context())
	if err != nil {
		slog.Error("finish failed", "error", err)
		notify(w, r, http.StatusInternalServerError, "ErrorUpdatingSession")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"session_id": sessionID,
		"report":     "/api/report/" + sessionID,
	})
}

func (h *Handler) handleVoiceToggle(w http.ResponseWriter, r *http.Request) {
	rec := h.recorder(r)
	result, err := rec.Toggle(r.Context())
	if err != nil {
		if errors.Is(err, voice.ErrMicrophoneUnavailable) {
			respondJSON(w, http.StatusServiceUnavailable, map[string]any{
				"error":    appI18n.T(r.Context(), "MicrophoneUnavailable"),
				"fallback": "text",
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	msgID := "RecordingCompleted"
	if result.Recording {
		msgID = "RecordingStarted"
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"recording":  result.Recording,
		"transcript": result.Transcript,
		"message":    appI18n.T(r.Context(), msgID),
	})
}

func (h *Handler) handleVoiceChunk(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	chunk, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read chunk", http.StatusBadRequest)
		return
	}

	if err := h.recorder(r).AddChunk(chunk); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	report, err := h.store.GetSessionReport(r.Context(), sessionID)
	if err != nil {
		slog.Error("report lookup failed", "session_id", sessionID, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if report == nil {
		respondJSON(w, http.StatusNotFound, map[string]string{
			"error":    appI18n.T(r.Context(), "SessionNotFound"),
			"recovery": "/",
		})
		return
	}
	respondJSON(w, http.StatusOK, report)
}
