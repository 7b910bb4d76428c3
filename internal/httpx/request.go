package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"bookshelf/internal/apperr"
	"bookshelf/internal/logger"
)

// DecodeJSON reads a single JSON value from the request body into v. Anything
// but whitespace after that value is an error.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("decode body: empty body")
		}
		return fmt.Errorf("decode body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("decode body: trailing data after JSON value")
	}
	return nil
}

// RejectErr logs err with the request context and answers with the generic
// rejection.
func RejectErr(log *logger.Logger, w http.ResponseWriter, r *http.Request, action string, err error) {
	log.Error("request rejected",
		"action", action,
		"kind", apperr.Kind(err),
		"error", err,
		"request_id", RequestIDFrom(r),
	)
	Reject(w, r)
}
