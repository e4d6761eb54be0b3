// Package app hosts the business handler invoked between request
// normalization and response encoding. The bridge itself carries no business
// logic; Echo is the built-in handler used by the Lambda entrypoint and the
// local harness.
package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/fnbridge/fnbridge/internal/codec"
	"github.com/fnbridge/fnbridge/internal/constants"
	"github.com/fnbridge/fnbridge/internal/message"
)

// Handler is the contract between the bridge and business logic: one
// canonical message in, one canonical message out.
type Handler interface {
	Handle(ctx context.Context, req *message.Message) (*message.Message, error)
}

// Echo returns the request payload unchanged with a 200 status code header.
type Echo struct {
	codec  *codec.Codec
	logger *slog.Logger
}

// NewEcho creates the echo handler.
func NewEcho(c *codec.Codec, log *slog.Logger) *Echo {
	return &Echo{codec: c, logger: log}
}

// Handle implements Handler.
func (e *Echo) Handle(_ context.Context, req *message.Message) (*message.Message, error) {
	body, ok := req.Bytes()
	if !ok {
		var err error
		body, err = e.codec.Marshal(req.Payload())
		if err != nil {
			return nil, err
		}
	}

	e.logger.Debug("echoing request payload", "bytes", len(body))

	return message.New(body, message.Headers{
		constants.StatusCodeHeader: http.StatusOK,
	}), nil
}
