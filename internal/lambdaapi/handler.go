// Package lambdaapi adapts the bridge pipeline to the raw AWS Lambda
// invocation contract.
package lambdaapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"reflect"

	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/fnbridge/fnbridge/internal/app"
	"github.com/fnbridge/fnbridge/internal/bridge"
	"github.com/fnbridge/fnbridge/internal/logger"
	"github.com/fnbridge/fnbridge/internal/message"
)

// Signature declares the payload types the wrapped handler consumes and
// produces. Either side may be nil when the handler takes whatever arrives.
// It is resolved once per deployed function, not per invocation.
type Signature struct {
	Input  reflect.Type
	Output reflect.Type
}

// LambdaHandler runs the full pipeline for one invocation:
// normalize, business handler, encode.
type LambdaHandler struct {
	bridge    *bridge.Bridge
	handler   app.Handler
	signature Signature
	logger    *slog.Logger
}

// NewHandler creates a LambdaHandler.
func NewHandler(b *bridge.Bridge, h app.Handler, sig Signature, log *slog.Logger) *LambdaHandler {
	return &LambdaHandler{
		bridge:    b,
		handler:   h,
		signature: sig,
		logger:    log,
	}
}

// Invoke handles one raw Lambda invocation end to end. Errors abort the
// invocation; no partial response is returned.
func (h *LambdaHandler) Invoke(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req, err := h.bridge.NormalizeRequest(ctx, payload, transportHeaders(ctx), h.signature.Input)
	if err != nil {
		logger.DeriveRequestLogger(ctx, h.logger).Error("request normalization failed", "error", err)
		return nil, err
	}

	resp, err := h.handler.Handle(ctx, req)
	if err != nil {
		return nil, err
	}

	out, err := h.bridge.EncodeResponse(req, resp, h.signature.Output)
	if err != nil {
		logger.DeriveRequestLogger(ctx, h.logger).Error("response encoding failed", "error", err)
		return nil, err
	}
	return out, nil
}

// transportHeaders extracts caller-supplied headers from the Lambda client
// context, the only transport header channel a raw invocation has.
func transportHeaders(ctx context.Context) message.Headers {
	lc, ok := lambdacontext.FromContext(ctx)
	if !ok || len(lc.ClientContext.Custom) == 0 {
		return nil
	}
	headers := make(message.Headers, len(lc.ClientContext.Custom))
	for k, v := range lc.ClientContext.Custom {
		headers[k] = v
	}
	return headers
}
