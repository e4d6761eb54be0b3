// Package message defines the canonical message exchanged between the
// normalization layer and business handlers: one payload plus a flat header
// map, independent of the trigger that produced it.
package message

import (
	"reflect"
	"strings"
)

// Headers is a flat map of header names to values. Keys are case-sensitive.
type Headers map[string]any

// Message is the canonical representation of an event. The payload is either
// the raw invocation bytes or a decoded typed value, never both. A Message is
// immutable once built.
type Message struct {
	payload any
	headers Headers
}

// New builds a Message from a payload and an already-merged header map.
// The header map is copied so later mutation of the argument cannot leak in.
func New(payload any, headers Headers) *Message {
	copied := make(Headers, len(headers))
	for k, v := range headers {
		copied[k] = v
	}
	return &Message{payload: payload, headers: copied}
}

// Payload returns the message payload.
func (m *Message) Payload() any {
	return m.payload
}

// Bytes returns the payload as raw bytes when the message carries one.
func (m *Message) Bytes() ([]byte, bool) {
	b, ok := m.payload.([]byte)
	return b, ok
}

// Header returns the value stored under key, if any.
func (m *Message) Header(key string) (any, bool) {
	v, ok := m.headers[key]
	return v, ok
}

// Headers returns a copy of the header map.
func (m *Message) Headers() Headers {
	copied := make(Headers, len(m.headers))
	for k, v := range m.headers {
		copied[k] = v
	}
	return copied
}

// Of declares a "message of X" payload type for a handler signature. The
// bridge unwraps it to X when resolving the declared input or output type.
type Of[T any] struct {
	Payload T
	Headers Headers
}

// Merge overlays the header sources in order, later sources overwriting
// earlier ones. Keys listed in sticky are first-writer-wins: once a source
// has set them, later sources cannot overwrite or drop them. This is how
// transport headers get final say over computed headers while the internal
// routing markers survive the merge.
func Merge(sticky []string, sources ...Headers) Headers {
	stickySet := make(map[string]struct{}, len(sticky))
	for _, k := range sticky {
		stickySet[k] = struct{}{}
	}

	merged := make(Headers)
	for _, src := range sources {
		for k, v := range src {
			if _, isSticky := stickySet[k]; isSticky {
				if _, taken := merged[k]; taken {
					continue
				}
			}
			merged[k] = v
		}
	}
	return merged
}

var ofPkgPath = reflect.TypeOf(Of[struct{}]{}).PkgPath()

// UnwrapType resolves the payload type behind a pointer or an Of wrapper.
// Types without a wrapper are returned unchanged.
func UnwrapType(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct && t.PkgPath() == ofPkgPath && strings.HasPrefix(t.Name(), "Of[") {
		if field, ok := t.FieldByName("Payload"); ok {
			return UnwrapType(field.Type)
		}
	}
	return t
}
