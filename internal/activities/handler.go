package activities

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"corus-backend/internal/httpx"
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

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	page, limit, err := httpx.ParsePageLimit(r.URL.Query(), 20, 100)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	filter := ListFilter{
		Type:       strings.TrimSpace(r.URL.Query().Get("type")),
		UnreadOnly: r.URL.Query().Get("unread") == "true",
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.service.List(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		log.Error("admin activities list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to fetch activities", nil)
		return
	}

	transport.WritePaginated(w, http.StatusOK, "Activities retrieved successfully", items, transport.NewPagination(page, limit, total))
}

func (h *Handler) AdminRecent(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.Recent(ctx, 10)
	if err != nil {
		log.Error("admin activities recent: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to fetch activities", nil)
		return
	}

	transport.WriteEnvelope(w, http.StatusOK, "Recent activities retrieved successfully", items)
}

func (h *Handler) AdminUnreadCount(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	count, err := h.service.UnreadCount(ctx)
	if err != nil {
		log.Error("admin activities unread count: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to fetch unread count", nil)
		return
	}

	transport.WriteEnvelope(w, http.StatusOK, "Unread count retrieved successfully", map[string]int64{"count": count})
}

func (h *Handler) AdminMarkRead(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.MarkRead(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "Activity not found", nil)
			return
		}
		log.Error("admin activities mark read: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to update activity", nil)
		return
	}

	transport.WriteEnvelope(w, http.StatusOK, "Activity marked as read", nil)
}

func (h *Handler) AdminMarkAllRead(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	updated, err := h.service.MarkAllRead(ctx)
	if err != nil {
		log.Error("admin activities mark all read: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to update activities", nil)
		return
	}

	transport.WriteEnvelope(w, http.StatusOK, "All activities marked as read", map[string]int64{"updated": updated})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
