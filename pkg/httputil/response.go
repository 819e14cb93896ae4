package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	apperrors "github.com/shopapi/catalog/pkg/errors"
	"github.com/shopapi/catalog/pkg/logger"
)

// MaxBodyBytes caps JSON request bodies.
const MaxBodyBytes = 1 << 20

// WriteJSON writes v as JSON with the given status code.
// Headers are already sent when encoding fails, so the error is dropped.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteText writes a plain-text body with the given status code.
func WriteText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, text)
}

// WriteEmpty writes only the status line and headers.
func WriteEmpty(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

// WriteError relays err to the caller as plain text.
//
// AppErrors keep their status and message. Other errors are classified by
// apperrors.HTTPStatus; unclassified ones become apperrors.Internal so driver
// details never reach the client. Server errors are logged at error level,
// client errors at debug with their cause. The request-scoped logger set by
// middleware.RequestLogger is preferred over fallback.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	l := logger.FromContext(r.Context())
	if l == slog.Default() && fallback != nil {
		l = fallback
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		switch apperrors.HTTPStatus(err) {
		case http.StatusNotFound:
			appErr = apperrors.NotFoundMessage("resource not found")
		case http.StatusBadRequest:
			appErr = apperrors.InvalidInput(err.Error())
		default:
			appErr = apperrors.Internal(err)
		}
	}

	attrs := []any{
		slog.Int("status", appErr.Status),
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("correlation_id", logger.CorrelationIDFromContext(r.Context())),
	}
	if appErr.Status >= http.StatusInternalServerError {
		l.ErrorContext(r.Context(), "internal error", attrs...)
		WriteText(w, appErr.Status, apperrors.InternalMessage)
		return
	}

	l.DebugContext(r.Context(), "request rejected", attrs...)
	WriteText(w, appErr.Status, appErr.Message)
}

// DecodeJSON decodes the request body into dst, limiting it to MaxBodyBytes.
// Decoding failures are returned as apperrors.InvalidInput.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperrors.InvalidInput(fmt.Sprintf("invalid request body: %s", err.Error()))
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return apperrors.InvalidInput("invalid request body: unexpected data after JSON value")
	}
	return nil
}
