package content

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

func (h *Handler) ListMenus(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.ListMenus(ctx)
	if err != nil {
		log.Error("menus list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to fetch menus", nil)
		return
	}
	transport.WriteEnvelope(w, http.StatusOK, "Menus retrieved successfully", items)
}

func (h *Handler) GetMenuBySlug(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.GetMenuBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "Menu not found", nil)
			return
		}
		log.Error("menus get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to fetch menu", nil)
		return
	}
	transport.WriteEnvelope(w, http.StatusOK, "Menu retrieved successfully", item)
}

func (h *Handler) CreateMenu(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req MenuUpsertRequest
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

	item, err := h.service.CreateMenu(ctx, req)
	if err != nil {
		h.writeContentError(w, log, "menus create", err)
		return
	}

	log.Info("menus create: ok", slog.String("menu_id", item.ID), slog.String("slug", item.Slug))
	transport.WriteEnvelope(w, http.StatusCreated, "Menu created successfully", item)
}

func (h *Handler) UpdateMenu(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	var req MenuUpsertRequest
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

	item, err := h.service.UpdateMenu(ctx, id, req)
	if err != nil {
		h.writeContentError(w, log, "menus update", err)
		return
	}

	log.Info("menus update: ok", slog.String("menu_id", id))
	transport.WriteEnvelope(w, http.StatusOK, "Menu updated successfully", item)
}

func (h *Handler) DeleteMenu(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.DeleteMenu(ctx, id); err != nil {
		h.writeContentError(w, log, "menus delete", err)
		return
	}

	log.Info("menus delete: ok", slog.String("menu_id", id))
	transport.WriteEnvelope(w, http.StatusOK, "Menu deleted successfully", nil)
}

func (h *Handler) ListSolutions(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.ListSolutions(ctx)
	if err != nil {
		log.Error("solutions list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to fetch solutions", nil)
		return
	}
	transport.WriteEnvelope(w, http.StatusOK, "Solutions retrieved successfully", items)
}

func (h *Handler) GetSolutionBySlug(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.GetSolutionBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "Solution not found", nil)
			return
		}
		log.Error("solutions get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to fetch solution", nil)
		return
	}
	transport.WriteEnvelope(w, http.StatusOK, "Solution retrieved successfully", item)
}

func (h *Handler) CreateSolution(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req SolutionUpsertRequest
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

	item, err := h.service.CreateSolution(ctx, req)
	if err != nil {
		h.writeContentError(w, log, "solutions create", err)
		return
	}

	log.Info("solutions create: ok", slog.String("solution_id", item.ID), slog.String("slug", item.Slug))
	transport.WriteEnvelope(w, http.StatusCreated, "Solution created successfully", item)
}

func (h *Handler) UpdateSolution(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	var req SolutionUpsertRequest
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

	item, err := h.service.UpdateSolution(ctx, id, req)
	if err != nil {
		h.writeContentError(w, log, "solutions update", err)
		return
	}

	log.Info("solutions update: ok", slog.String("solution_id", id))
	transport.WriteEnvelope(w, http.StatusOK, "Solution updated successfully", item)
}

func (h *Handler) DeleteSolution(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.DeleteSolution(ctx, id); err != nil {
		h.writeContentError(w, log, "solutions delete", err)
		return
	}

	log.Info("solutions delete: ok", slog.String("solution_id", id))
	transport.WriteEnvelope(w, http.StatusOK, "Solution deleted successfully", nil)
}

func (h *Handler) ListIndustries(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.ListIndustries(ctx)
	if err != nil {
		log.Error("industries list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to fetch industries", nil)
		return
	}
	transport.WriteEnvelope(w, http.StatusOK, "Industries retrieved successfully", items)
}

func (h *Handler) GetIndustryBySlug(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.GetIndustryBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			transport.WriteError(w, http.StatusNotFound, "Industry not found", nil)
			return
		}
		log.Error("industries get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Failed to fetch industry", nil)
		return
	}
	transport.WriteEnvelope(w, http.StatusOK, "Industry retrieved successfully", item)
}

func (h *Handler) CreateIndustry(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req IndustryUpsertRequest
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

	item, err := h.service.CreateIndustry(ctx, req)
	if err != nil {
		h.writeContentError(w, log, "industries create", err)
		return
	}

	log.Info("industries create: ok", slog.String("industry_id", item.ID), slog.String("slug", item.Slug))
	transport.WriteEnvelope(w, http.StatusCreated, "Industry created successfully", item)
}

func (h *Handler) UpdateIndustry(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	var req IndustryUpsertRequest
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

	item, err := h.service.UpdateIndustry(ctx, id, req)
	if err != nil {
		h.writeContentError(w, log, "industries update", err)
		return
	}

	log.Info("industries update: ok", slog.String("industry_id", id))
	transport.WriteEnvelope(w, http.StatusOK, "Industry updated successfully", item)
}

func (h *Handler) DeleteIndustry(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.DeleteIndustry(ctx, id); err != nil {
		h.writeContentError(w, log, "industries delete", err)
		return
	}

	log.Info("industries delete: ok", slog.String("industry_id", id))
	transport.WriteEnvelope(w, http.StatusOK, "Industry deleted successfully", nil)
}

func (h *Handler) writeContentError(w http.ResponseWriter, log *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		transport.WriteError(w, http.StatusNotFound, "Not found", nil)
	case errors.Is(err, ErrSlugExists):
		transport.WriteError(w, http.StatusConflict, "Slug already exists", nil)
	case errors.Is(err, ErrInvalidSlug):
		transport.WriteError(w, http.StatusBadRequest, "Validation failed", map[string]string{"slug": "invalid"})
	default:
		log.Error(op+": database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
