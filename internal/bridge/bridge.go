// Package bridge converts raw Lambda invocations into canonical messages for
// business handlers and re-encodes canonical responses into the bytes the
// invoking trigger expects. It is a stateless, one-shot transform: one
// NormalizeRequest per inbound event, one EncodeResponse per outbound result.
package bridge

import (
	"log/slog"

	"github.com/fnbridge/fnbridge/internal/codec"
	"github.com/fnbridge/fnbridge/internal/events"
)

// Compat collects the legacy wire-format behaviors the bridge reproduces.
type Compat struct {
	// StripBodyQuotes removes literal double quotes from gateway response
	// bodies. This matches the historical wire format; turn it off only if
	// every consumer has migrated.
	StripBodyQuotes bool
}

// DefaultCompat returns the compatibility settings matching the legacy
// adapter behavior.
func DefaultCompat() Compat {
	return Compat{StripBodyQuotes: true}
}

// Bridge normalizes requests and encodes responses. Each Bridge owns its
// codec, so concurrent invocations only share the codec's one-time
// configuration flag.
type Bridge struct {
	codec    *codec.Codec
	registry *events.Registry
	logger   *slog.Logger
	compat   Compat
}

// New creates a Bridge.
func New(c *codec.Codec, registry *events.Registry, log *slog.Logger, compat Compat) *Bridge {
	return &Bridge{
		codec:    c,
		registry: registry,
		logger:   log,
		compat:   compat,
	}
}
