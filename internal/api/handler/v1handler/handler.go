// Package v1handler implements the authenticated v1 REST API on top of the
// trading service.
package v1handler

import (
	"context"
	"errors"
	"mangatrade/internal/trading"
	"mangatrade/pkg/logger"
	"mangatrade/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// DefaultLimit is the number of titles returned by list endpoints when no
// display limit is configured.
const DefaultLimit = 50

// Deps are the collaborators of the v1 handlers.
type Deps struct {
	Trading trading.Service
	// DisplayLimit caps the number of titles in list and search responses.
	DisplayLimit int
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	if deps.DisplayLimit <= 0 {
		deps.DisplayLimit = DefaultLimit
	}

	return &Handler{deps: deps}
}

// ErrorBody is the JSON payload of every error response.
type ErrorBody struct {
	Code    string
	Message string
}

// ErrorResponse pairs an error payload with its HTTP status code.
type ErrorResponse struct {
	StatusCode int
	Response   ErrorBody
}

// defaultMessages are used when an error carries no message of its own.
var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     "resource not found",
	serrors.ErrUnauthorized: "unauthorized",
	serrors.ErrBadRequest:   "bad request",
	serrors.ErrInternal:     "internal error",
	serrors.ErrTimeout:      "request timed out",
	serrors.ErrUnavailable:  "service unavailable",
}

var statusCodes = map[serrors.Kind]int{ //nolint: gochecknoglobals
	serrors.ErrNotFound:     http.StatusNotFound,
	serrors.ErrUnauthorized: http.StatusUnauthorized,
	serrors.ErrBadRequest:   http.StatusBadRequest,
	serrors.ErrInternal:     http.StatusInternalServerError,
	serrors.ErrTimeout:      http.StatusGatewayTimeout,
	serrors.ErrUnavailable:  http.StatusServiceUnavailable,
}

// NewError maps err to a response. Messages of internal errors are never
// exposed to clients.
func (h Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := kindOf(err)
	if kind == nil {
		kind = serrors.ErrInternal
	}

	msg := defaultMessages[kind]
	var se *serrors.Error
	if kind != serrors.ErrInternal && errors.As(err, &se) && se.Message() != "" {
		msg = se.Message()
	}

	status, ok := statusCodes[kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &ErrorResponse{
		StatusCode: status,
		Response:   ErrorBody{Code: kind.Error(), Message: msg},
	}
}

// kindOf also accepts a bare kind sentinel passed as the error itself.
func kindOf(err error) serrors.Kind {
	if k, ok := err.(serrors.Kind); ok { //nolint: errorlint
		return k
	}

	return serrors.KindOf(err)
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("code")
		e.Str(res.Response.Code)
		e.FieldStart("message")
		e.Str(res.Response.Message)
		e.ObjEnd()
	})
}

// writeJSON encodes a response body with jx and writes it with status.
func writeJSON(w http.ResponseWriter, status int, fn func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	fn(e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// Register mounts the v1 routes on mux behind bearer authentication. With a
// nil sec the routes are mounted unauthenticated and expect the caller to put
// the owner in the request context.
func (h *Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	protect := func(fn http.HandlerFunc) http.Handler {
		if sec == nil {
			return fn
		}

		return sec.Wrap(fn, h.writeError)
	}

	mux.Handle("GET /v1/lists/{kind}", protect(h.ListTitles))
	mux.Handle("POST /v1/lists/{kind}", protect(h.AddTitle))
	mux.Handle("DELETE /v1/lists/{kind}/items", protect(h.RemoveTitle))
	mux.Handle("DELETE /v1/lists/{kind}", protect(h.ClearList))
	mux.Handle("GET /v1/matches", protect(h.GetMatches))
	mux.Handle("GET /v1/duplicates", protect(h.GetDuplicates))
	mux.HandleFunc("/v1/", func(w http.ResponseWriter, r *http.Request) {
		h.writeError(w, r, serrors.With(serrors.ErrNotFound, "no route for %s %s", r.Method, r.URL.Path))
	})
}
