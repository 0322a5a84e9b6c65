package screening

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/aihelper/screening-backend/internal/entity"
	"github.com/aihelper/screening-backend/internal/pkg/formatter"
	"github.com/aihelper/screening-backend/internal/pkg/logger"
	"github.com/aihelper/screening-backend/internal/pkg/response"
	"github.com/aihelper/screening-backend/internal/pkg/validator"
)

type Handler struct {
	usecase   ScreeningUsecase
	keywords  KeywordReader
	validator *validator.Validator
	formats   *formatter.Factory
}

func NewHandler(
	usecase ScreeningUsecase,
	keywords KeywordReader,
	validator *validator.Validator,
) *Handler {
	return &Handler{
		usecase:   usecase,
		keywords:  keywords,
		validator: validator,
		formats:   formatter.NewFactory(),
	}
}

// StartSession handles POST /screening-session - Start new session
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "StartSession")

	var req entity.StartSessionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
			response.Error(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	if err := h.validator.ValidateStartSession(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.usecase.StartSession(ctx, req.UserID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "screening session started", zap.String("session_id", resp.SessionID))

	response.Created(w, resp)
}

// ProcessTurn handles POST /screening-session/{id}/turn - Process one utterance
func (h *Handler) ProcessTurn(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", "ProcessTurn"),
	)

	var req entity.TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateTurn(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.usecase.ProcessTurn(ctx, sessionID, req.Utterance)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "turn processed",
		zap.String("intent", string(result.Intent)),
		zap.Bool("is_complete", result.IsComplete),
	)

	response.Success(w, result)
}

// ResetSession handles POST /screening-session/{id}/reset - Restart session
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", "ResetSession"),
	)

	resp, err := h.usecase.ResetSession(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "session reset")

	response.Success(w, resp)
}

// GetProgress handles GET /screening-session/{id}/progress
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", "GetProgress"),
	)

	progress, err := h.usecase.GetProgress(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, progress)
}

// GetHistory handles GET /screening-session/{id}/history
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", "GetHistory"),
	)

	history, err := h.usecase.GetHistory(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, history)
}

// GetReport handles GET /screening-session/{id}/report?format=md|pdf|docx
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", "GetReport"),
	)

	format, err := h.validator.ValidateResultFormat(r.URL.Query().Get("format"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.usecase.GetReport(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	f, err := h.formats.Create(format)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := f.Format(report.Rendered)
	if err != nil {
		ctxzap.Error(ctx, "failed to render report", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to render report")
		return
	}

	filename := fmt.Sprintf("screening-report-%s%s", sessionID, f.FileExtension())
	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// GetKeywords handles GET /screening-keywords?category=&subcategory=&limit=
func (h *Handler) GetKeywords(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetKeywords")

	category := entity.Category(r.URL.Query().Get("category"))
	if err := category.Validate(); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	subcategory := r.URL.Query().Get("subcategory")
	if subcategory == "" {
		response.Error(w, http.StatusBadRequest, "subcategory is required")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 200 {
			response.Error(w, http.StatusBadRequest, "limit must be an integer between 1 and 200")
			return
		}
		limit = n
	}

	freqs, err := h.keywords.TopKeywords(ctx, category, subcategory, limit)
	if err != nil {
		ctxzap.Error(ctx, "failed to list keywords", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to list keywords")
		return
	}

	response.Success(w, freqs)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	ctxzap.Warn(ctx, "usecase error", zap.Error(err))

	switch {
	case errors.Is(err, entity.ErrSessionNotFound):
		response.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, entity.ErrSessionExpired):
		response.Error(w, http.StatusGone, err.Error())
	case errors.Is(err, entity.ErrEmptyUtterance),
		errors.Is(err, entity.ErrMissingField),
		errors.Is(err, entity.ErrInvalidFormat):
		response.Error(w, http.StatusBadRequest, err.Error())
	default:
		response.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
