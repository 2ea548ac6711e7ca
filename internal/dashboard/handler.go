package dashboard

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"corus-backend/internal/middleware"
	"corus-backend/internal/transport"
)

type Handler struct {
	service *Service
	log     *slog.Logger
}

func NewHandler(service *Service, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

func (h *Handler) AdminSummary(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	summary, err := h.service.Summary(ctx)
	if err != nil {
		log.Error("admin dashboard summary: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to fetch dashboard summary", nil)
		return
	}
	transport.WriteEnvelope(w, http.StatusOK, "Dashboard summary retrieved successfully", summary)
}

func (h *Handler) AdminFinancial(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	data, err := h.service.Financial(ctx, r.URL.Query().Get("dateRange"))
	if err != nil {
		log.Error("admin financial data: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to fetch financial data", nil)
		return
	}
	transport.WriteEnvelope(w, http.StatusOK, "Financial data retrieved successfully", data)
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
