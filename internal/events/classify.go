package events

import (
	"reflect"

	"github.com/fnbridge/fnbridge/internal/codec"
	"github.com/fnbridge/fnbridge/internal/message"
)

// ShapeKind is the structural category assigned to an inbound payload.
type ShapeKind int

const (
	// ShapeRawBytes is the fallback for anything unrecognized: scalar JSON,
	// unparsable bytes, or payloads with no better match.
	ShapeRawBytes ShapeKind = iota
	// ShapeTypedEvent is a payload whose declared type names a known family.
	ShapeTypedEvent
	// ShapeJSONObject is a generic JSON key/value mapping.
	ShapeJSONObject
	// ShapeJSONArray is a generic JSON sequence.
	ShapeJSONArray
)

// String returns the string representation of the ShapeKind
func (k ShapeKind) String() string {
	switch k {
	case ShapeTypedEvent:
		return "TypedEvent"
	case ShapeJSONObject:
		return "JSONObject"
	case ShapeJSONArray:
		return "JSONArray"
	default:
		return "RawBytes"
	}
}

// Shape is the classification result. Family is set only for ShapeTypedEvent.
type Shape struct {
	Kind   ShapeKind
	Family Family
}

// Classify assigns exactly one shape to an inbound payload. The declared
// type, when present, wins over structural sniffing: one message/pointer
// wrapper is unwrapped and the result matched against the known families.
// Otherwise the bytes are parsed generically; a parse failure classifies as
// raw bytes (the normalizer decides whether that is fatal). Pure function.
func Classify(declared reflect.Type, raw []byte, c *codec.Codec) Shape {
	if family, ok := FamilyOf(message.UnwrapType(declared)); ok {
		return Shape{Kind: ShapeTypedEvent, Family: family}
	}

	var value any
	if err := c.Unmarshal(raw, &value); err != nil {
		return Shape{Kind: ShapeRawBytes}
	}
	switch value.(type) {
	case map[string]any:
		return Shape{Kind: ShapeJSONObject}
	case []any:
		return Shape{Kind: ShapeJSONArray}
	default:
		return Shape{Kind: ShapeRawBytes}
	}
}
