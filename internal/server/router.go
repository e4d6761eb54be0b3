package server

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fnbridge/fnbridge/internal/app"
	"github.com/fnbridge/fnbridge/internal/bridge"
	"github.com/fnbridge/fnbridge/internal/constants"
	apperrors "github.com/fnbridge/fnbridge/internal/errors"
	"github.com/fnbridge/fnbridge/internal/events"
	"github.com/fnbridge/fnbridge/internal/message"
)

// NewRouter creates a chi router for the local harness.
func NewRouter(b *bridge.Bridge, handler app.Handler, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(constants.ContentTypeHeader, constants.ContentTypeJSON)
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprint(w, `{"status":"ok","component":"local-harness"}`)
	})

	// Run an event document through the full pipeline.
	// The optional "type" query parameter declares the input family, e.g.
	// curl -X POST 'http://localhost:8080/invoke?type=sqs' -d @event.json
	r.Post("/invoke", func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			_ = req.Body.Close()
		}()

		payload, readErr := io.ReadAll(req.Body)
		if readErr != nil {
			writeErrorResponse(w, http.StatusBadRequest, "failed to read request body", readErr.Error())
			return
		}

		declared, typeErr := declaredType(req.URL.Query().Get("type"))
		if typeErr != nil {
			writeErrorResponse(w, http.StatusBadRequest, "unknown event type", typeErr.Error())
			return
		}

		out, invokeErr := invoke(req, b, handler, payload, declared)
		if invokeErr != nil {
			log.Error("pipeline invocation failed",
				"error", invokeErr,
				"code", apperrors.GetCode(invokeErr),
			)
			writeErrorResponse(w, http.StatusInternalServerError,
				apperrors.GetMessage(invokeErr), apperrors.GetDetails(invokeErr))
			return
		}

		w.Header().Set(constants.ContentTypeHeader, constants.ContentTypeJSON)
		w.WriteHeader(http.StatusOK)
		if _, writeErr := w.Write(out); writeErr != nil {
			log.Error("failed to write response", "error", writeErr)
		}
	})

	return r
}

func invoke(req *http.Request, b *bridge.Bridge, handler app.Handler, payload []byte, declared reflect.Type) ([]byte, error) {
	ctx := req.Context()

	normalized, err := b.NormalizeRequest(ctx, payload, httpTransportHeaders(req), declared)
	if err != nil {
		return nil, err
	}

	response, err := handler.Handle(ctx, normalized)
	if err != nil {
		return nil, err
	}

	return b.EncodeResponse(normalized, response, nil)
}

// declaredType maps the short family name from the query string to the
// family's Go type. An empty name means no declared type (generic path).
func declaredType(name string) (reflect.Type, error) {
	if name == "" {
		return nil, nil
	}
	family, ok := events.FamilyByName(name)
	if !ok {
		return nil, fmt.Errorf("no event family named %q", name)
	}
	t, ok := events.TypeOf(family)
	if !ok {
		return nil, fmt.Errorf("no Go type for family %s", family)
	}
	return t, nil
}

// httpTransportHeaders forwards harness request headers as transport headers,
// the way the platform shim would.
func httpTransportHeaders(req *http.Request) message.Headers {
	headers := make(message.Headers, len(req.Header))
	for key, values := range req.Header {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}
	return headers
}

func writeErrorResponse(w http.ResponseWriter, statusCode int, message, details string) {
	w.Header().Set(constants.ContentTypeHeader, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)
	_, _ = fmt.Fprintf(w, `{"error":%q,"details":%q}`, message, details)
}
