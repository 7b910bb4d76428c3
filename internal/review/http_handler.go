package review

import (
	"context"
	"net/http"

	"bookshelf/internal/httpx"
	"bookshelf/internal/logger"
)

const (
	msgInserted = "Added new review score for book"
	msgUpdated  = "Updated existing review score for book"
	msgRemoved  = "Removed review score for book"
)

type HTTPHandler struct {
	service *Service
	log     *logger.Logger
}

func NewHTTPHandler(service *Service, log *logger.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// Get handles GET /v1/books?title=&author=
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	payload, err := PayloadFromQuery(r.URL.Query())
	if err != nil {
		httpx.RejectErr(h.log, w, r, "find", err)
		return
	}

	summary, err := h.service.Summary(r.Context(), payload)
	if err != nil {
		httpx.RejectErr(h.log, w, r, "find", err)
		return
	}

	httpx.JSON(w, http.StatusOK, summary)
}

// Create handles POST /v1/books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "insert", h.service.AddScore, http.StatusCreated, msgInserted)
}

// Update handles PUT /v1/books
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "update", h.service.ReplaceScore, http.StatusCreated, msgUpdated)
}

// Delete handles DELETE /v1/books
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "delete", h.service.RemoveScore, http.StatusOK, msgRemoved)
}

func (h *HTTPHandler) mutate(
	w http.ResponseWriter,
	r *http.Request,
	action string,
	op func(ctx context.Context, p Payload) error,
	status int,
	message string,
) {
	var payload Payload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.RejectErr(h.log, w, r, action, err)
		return
	}

	if err := op(r.Context(), payload); err != nil {
		httpx.RejectErr(h.log, w, r, action, err)
		return
	}

	httpx.Text(w, status, message)
}
