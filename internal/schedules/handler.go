package schedules

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
	"corus-backend/internal/validation"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

func (h *Handler) PublicCreate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "Validation failed", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDateInPast):
			transport.WriteError(w, http.StatusBadRequest, "Preferred date is in the past", nil)
		case errors.Is(err, ErrSlotInPast):
			transport.WriteError(w, http.StatusBadRequest, "Preferred time has already passed", nil)
		case errors.Is(err, ErrSlotNotOpen):
			transport.WriteError(w, http.StatusBadRequest, "Preferred time is outside office hours", nil)
		case errors.Is(err, ErrSlotTaken):
			transport.WriteError(w, http.StatusConflict, "This slot is already booked", nil)
		case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidTime):
			transport.WriteError(w, http.StatusBadRequest, "Invalid date or time", nil)
		default:
			log.Error("schedules create: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "Failed to book meeting", nil)
		}
		return
	}

	log.Info("schedules create: ok",
		slog.String("schedule_id", item.ID),
		slog.String("date", item.PreferredDate),
		slog.String("time", item.PreferredTime),
	)
	transport.WriteEnvelope(w, http.StatusCreated, "Meeting scheduled successfully", item)
}

func (h *Handler) PublicSlots(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		transport.WriteError(w, http.StatusBadRequest, "Missing date", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	slots, err := h.service.AvailableSlots(ctx, date)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			transport.WriteError(w, http.StatusBadRequest, "Invalid date", nil)
			return
		}
		log.Error("schedules slots: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to fetch available slots", nil)
		return
	}
	transport.WriteEnvelope(w, http.StatusOK, "Available slots retrieved successfully", slots)
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	page, limit, err := httpx.ParsePageLimit(r.URL.Query(), 20, 100)
	if err != nil {
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	filter := AdminListFilter{
		Status: r.URL.Query().Get("status"),
		Date:   r.URL.Query().Get("date"),
		Search: r.URL.Query().Get("search"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.service.ListAdmin(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		log.Error("admin schedules list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to fetch schedules", nil)
		return
	}

	transport.WritePaginated(w, http.StatusOK, "Schedules retrieved successfully", items, transport.NewPagination(page, limit, total))
}

func (h *Handler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	var req AdminUpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "Validation failed", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.AdminUpdate(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "Schedule not found", nil)
			return
		}
		log.Error("admin schedules update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to update schedule", nil)
		return
	}

	log.Info("admin schedules update: ok", slog.String("schedule_id", id), slog.String("status", item.Status))
	transport.WriteEnvelope(w, http.StatusOK, "Schedule updated successfully", item)
}

func (h *Handler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "Schedule not found", nil)
			return
		}
		log.Error("admin schedules delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to delete schedule", nil)
		return
	}

	log.Info("admin schedules delete: ok", slog.String("schedule_id", id))
	transport.WriteEnvelope(w, http.StatusOK, "Schedule deleted successfully", nil)
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
