package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	service "github.com/okian/lovecalc/internal/app"
	"github.com/okian/lovecalc/internal/domain/model"
	"github.com/okian/lovecalc/pkg/logger"
)

// Response messages for POST /api/calculate.
const (
	MsgSaved          = "Love calculation saved successfully!"
	MsgMissingFields  = "Missing required fields"
	MsgScoreMismatch  = "Calculated percentage does not match names"
	MsgInvalidRequest = "Invalid request body"
	MsgStorageFailed  = "Error saving data to database."
)

// maxBodyBytes caps the request body; a submission is a few hundred bytes.
const maxBodyBytes = 64 << 10

type savedResponse struct {
	Message string           `json:"message"`
	Data    model.Submission `json:"data"`
}

// CalculateHandler handles calculation submissions.
type CalculateHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewCalculateHandler creates a new calculate handler.
func NewCalculateHandler(deps Dependencies, l logger.Logger) *CalculateHandler {
	return &CalculateHandler{deps: deps, logger: l}
}

// HandleCalculate handles POST /api/calculate requests.
func (h *CalculateHandler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req service.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		var tooLong *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			writeError(w, http.StatusBadRequest, MsgMissingFields, ErrEmptyBody)
		case errors.As(err, &tooLong):
			writeError(w, http.StatusRequestEntityTooLarge, MsgInvalidRequest, ErrBodyTooLong)
		default:
			writeError(w, http.StatusBadRequest, MsgInvalidRequest, fmt.Errorf("%w: %w", ErrBadRequest, err))
		}
		h.logger.Debug(ctx, "undecodable submission", logger.Error(err))
		return
	}

	sub, err := h.deps.Submit(ctx, req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, savedResponse{Message: MsgSaved, Data: sub})
	case errors.Is(err, service.ErrMissingFields):
		writeError(w, http.StatusBadRequest, MsgMissingFields, nil)
	case errors.Is(err, service.ErrScoreMismatch):
		writeError(w, http.StatusBadRequest, MsgScoreMismatch, err)
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, MsgInvalidRequest, err)
	default:
		writeError(w, http.StatusInternalServerError, MsgStorageFailed, err)
	}
}
