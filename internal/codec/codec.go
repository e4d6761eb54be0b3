// Package codec wraps the JSON serializer used across the bridge. The codec
// starts in a strict, stdlib-shaped mode and can be switched once into the
// Lambda decoding mode: case-insensitive field matching plus a time.Time
// decoder that accepts bare epoch-millisecond numbers, which is how several
// AWS event documents encode timestamps.
package codec

import (
	"reflect"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
	"github.com/modern-go/reflect2"
)

// Codec is a configurable JSON parse/serialize facility. Each Bridge owns
// its own Codec so tests can use a fresh instance per case.
type Codec struct {
	strict  jsoniter.API
	relaxed jsoniter.API

	once       sync.Once
	configured atomic.Bool
}

// New returns a Codec in its unconfigured state.
func New() *Codec {
	return &Codec{
		strict: jsoniter.Config{
			EscapeHTML:             true,
			SortMapKeys:            true,
			ValidateJsonRawMessage: true,
			CaseSensitive:          true,
		}.Froze(),
	}
}

// EnsureConfigured switches the codec into the Lambda decoding mode. It is
// idempotent and safe under concurrent first use: the relaxed API is frozen
// and its extensions registered exactly once, gated by the configured flag.
func (c *Codec) EnsureConfigured() {
	if c.configured.Load() {
		return
	}
	c.once.Do(func() {
		api := jsoniter.Config{
			EscapeHTML:             true,
			SortMapKeys:            true,
			ValidateJsonRawMessage: true,
		}.Froze()
		api.RegisterExtension(&epochMillisExtension{})
		c.relaxed = api
		c.configured.Store(true)
	})
}

// Configured reports whether the Lambda decoding mode is active.
func (c *Codec) Configured() bool {
	return c.configured.Load()
}

func (c *Codec) api() jsoniter.API {
	if c.configured.Load() {
		return c.relaxed
	}
	return c.strict
}

// Marshal serializes v to JSON bytes.
func (c *Codec) Marshal(v any) ([]byte, error) {
	return c.api().Marshal(v)
}

// Unmarshal parses JSON bytes into v.
func (c *Codec) Unmarshal(data []byte, v any) error {
	return c.api().Unmarshal(data, v)
}

var timeType = reflect.TypeOf(time.Time{})

// epochMillisExtension installs a time.Time decoder that reads a bare JSON
// number as epoch milliseconds. RFC3339 strings still decode, and null
// yields the zero time.
type epochMillisExtension struct {
	jsoniter.DummyExtension
}

func (e *epochMillisExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	if typ.Type1() == timeType {
		return &epochMillisDecoder{}
	}
	return nil
}

type epochMillisDecoder struct{}

func (d *epochMillisDecoder) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.NumberValue:
		*(*time.Time)(ptr) = time.UnixMilli(iter.ReadInt64()).UTC()
	case jsoniter.StringValue:
		parsed, err := time.Parse(time.RFC3339, iter.ReadString())
		if err != nil {
			iter.ReportError("decode time.Time", err.Error())
			return
		}
		*(*time.Time)(ptr) = parsed
	case jsoniter.NilValue:
		iter.ReadNil()
		*(*time.Time)(ptr) = time.Time{}
	default:
		iter.ReportError("decode time.Time", "expected epoch milliseconds or RFC3339 string")
	}
}
