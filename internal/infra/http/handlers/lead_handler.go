package handlers

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/brand-bridge/internal/logger"
	"github.com/xavierca1/brand-bridge/internal/usecase"
)

const (
	msgSubscribeUnexpected = "An unexpected error occurred"
	msgUpdateUnexpected    = "An error occurred"
)

type SubscribeLeadUseCaseInterface interface {
	Execute(ctx context.Context, input usecase.SubscribeLeadInput) (*usecase.SubscribeLeadOutput, error)
}

type UpdateContactStatusUseCaseInterface interface {
	Execute(ctx context.Context, input usecase.UpdateContactStatusInput) (*usecase.UpdateContactStatusOutput, error)
}

type LeadHandler struct {
	SubscribeUC    SubscribeLeadUseCaseInterface
	UpdateStatusUC UpdateContactStatusUseCaseInterface
	Logger         *zap.Logger
}

func NewLeadHandler(subscribeUC SubscribeLeadUseCaseInterface, updateStatusUC UpdateContactStatusUseCaseInterface, log *zap.Logger) *LeadHandler {
	return &LeadHandler{
		SubscribeUC:    subscribeUC,
		UpdateStatusUC: updateStatusUC,
		Logger:         log,
	}
}

// Subscribe handles POST /api/subscribe.
func (h *LeadHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	defer h.recoverWith(w, r, msgSubscribeUnexpected)

	data := decodeObject(w, r)
	if len(data) == 0 {
		logger.WithRequest(r.Context(), h.Logger).Info("subscribe request without data")
		writeErrorResponse(w, http.StatusBadRequest, usecase.NoDataError().Message)
		return
	}

	output, err := h.SubscribeUC.Execute(r.Context(), usecase.SubscribeLeadInput{
		Email:  stringField(data, "email"),
		Source: optionalString(data, "source"),
	})
	if err != nil {
		h.writeError(w, r, err, msgSubscribeUnexpected)
		return
	}

	writeSuccess(w, output.Message)
}

// UpdateStatus handles POST /api/update-status.
func (h *LeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	defer h.recoverWith(w, r, msgUpdateUnexpected)

	data := decodeObject(w, r)

	output, err := h.UpdateStatusUC.Execute(r.Context(), usecase.UpdateContactStatusInput{
		Email:  stringField(data, "email"),
		Status: optionalString(data, "status"),
	})
	if err != nil {
		h.writeError(w, r, err, msgUpdateUnexpected)
		return
	}

	writeSuccess(w, output.Message)
}

// Preflight answers CORS preflight requests with an empty 204. The cors
// middleware has already written the Access-Control headers by then.
func Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (h *LeadHandler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if status, message, ok := statusForError(err); ok {
		writeErrorResponse(w, status, message)
		return
	}

	logger.WithRequest(r.Context(), h.Logger).Error("unexpected error", zap.String("path", r.URL.Path), zap.Error(err))
	writeErrorResponse(w, http.StatusInternalServerError, fallback)
}

func (h *LeadHandler) recoverWith(w http.ResponseWriter, r *http.Request, fallback string) {
	rec := recover()
	if rec == nil {
		return
	}
	if rec == http.ErrAbortHandler {
		panic(rec)
	}
	h.writeError(w, r, fmt.Errorf("panic: %v", rec), fallback)
}
