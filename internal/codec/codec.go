package codec

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Destroid1669/MyLibrary/internal/core"
)

type Format string

const (
	FORMAT_JSON Format = "json"
	FORMAT_YAML Format = "yaml"

	//Python-like representation of values, it can only be used for encoding.
	FORMAT_REPR Format = "repr"
)

var (
	ErrUnknownFormat = errors.New("unknown format")
	ErrInvalidInput  = errors.New("invalid input")

	parsers  = map[Format]Parser{}
	encoders = map[Format]Encoder{}

	_ = []Parser{jsonParser{}, yamlParser{}}
	_ = []Encoder{jsonEncoder{}, yamlEncoder{}, reprEncoder{}}
)

func init() {
	RegisterParser(FORMAT_JSON, jsonParser{})
	RegisterParser(FORMAT_YAML, yamlParser{})

	RegisterEncoder(FORMAT_JSON, jsonEncoder{})
	RegisterEncoder(FORMAT_YAML, yamlEncoder{})
	RegisterEncoder(FORMAT_REPR, reprEncoder{})
}

type Parser interface {
	Validate(s string) bool
	Parse(s string) (core.Value, error)
}

type Encoder interface {
	Encode(v core.Value) ([]byte, error)
}

func RegisterParser(format Format, p Parser) {
	if _, ok := parsers[format]; ok {
		panic(errors.New("a parser is already registered for format " + string(format)))
	}
	parsers[format] = p
}

func RegisterEncoder(format Format, e Encoder) {
	if _, ok := encoders[format]; ok {
		panic(errors.New("an encoder is already registered for format " + string(format)))
	}
	encoders[format] = e
}

func GetParser(format Format) (Parser, bool) {
	p, ok := parsers[format]
	return p, ok
}

func GetEncoder(format Format) (Encoder, bool) {
	e, ok := encoders[format]
	return e, ok
}

// Decode parses s according to format.
func Decode(format Format, s string) (core.Value, error) {
	p, ok := GetParser(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q cannot be decoded", ErrUnknownFormat, format)
	}
	return p.Parse(s)
}

// Encode returns the representation of v in the given format.
func Encode(format Format, v core.Value) ([]byte, error) {
	e, ok := GetEncoder(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q cannot be encoded", ErrUnknownFormat, format)
	}
	return e.Encode(v)
}

// DecodingFormats returns the sorted list of formats that can be decoded.
func DecodingFormats() []Format {
	return sortedFormats(parsers)
}

// EncodingFormats returns the sorted list of formats that can be encoded.
func EncodingFormats() []Format {
	return sortedFormats(encoders)
}

func sortedFormats[V any](m map[Format]V) []Format {
	formats := make([]Format, 0, len(m))
	for format := range m {
		formats = append(formats, format)
	}
	slices.Sort(formats)
	return formats
}

type reprEncoder struct {
}

func (reprEncoder) Encode(v core.Value) ([]byte, error) {
	return []byte(core.Repr(v)), nil
}
