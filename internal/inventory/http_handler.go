package inventory

import (
	"net/http"

	"bookshelf/internal/httpx"
	"bookshelf/internal/logger"
)

const (
	msgInserted = "Inserted new book into the book list"
	msgUpdated  = "Incremented book amount in the book list"
	msgRemoved  = "Removed book from books list"
)

type HTTPHandler struct {
	service *Service
	log     *logger.Logger
}

func NewHTTPHandler(service *Service, log *logger.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// List handles GET /v1/books?title=&author=
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	payload, err := PayloadFromQuery(r.URL.Query())
	if err != nil {
		httpx.RejectErr(h.log, w, r, "find", err)
		return
	}

	books, err := h.service.List(r.Context(), payload)
	if err != nil {
		httpx.RejectErr(h.log, w, r, "find", err)
		return
	}

	httpx.JSON(w, http.StatusOK, books)
}

// Create handles POST /v1/books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload Payload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.RejectErr(h.log, w, r, "insert", err)
		return
	}

	if err := h.service.Add(r.Context(), payload); err != nil {
		httpx.RejectErr(h.log, w, r, "insert", err)
		return
	}

	httpx.Text(w, http.StatusCreated, msgInserted)
}

// Update handles PUT /v1/books
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload Payload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.RejectErr(h.log, w, r, "update", err)
		return
	}

	if err := h.service.Restock(r.Context(), payload); err != nil {
		httpx.RejectErr(h.log, w, r, "update", err)
		return
	}

	httpx.Text(w, http.StatusCreated, msgUpdated)
}

// Delete handles DELETE /v1/books
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var payload Payload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.RejectErr(h.log, w, r, "delete", err)
		return
	}

	if err := h.service.Remove(r.Context(), payload); err != nil {
		httpx.RejectErr(h.log, w, r, "delete", err)
		return
	}

	httpx.Text(w, http.StatusOK, msgRemoved)
}
