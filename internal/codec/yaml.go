package codec

import (
	"errors"
	"fmt"
	"math"

	"github.com/Destroid1669/MyLibrary/internal/core"
	"github.com/goccy/go-yaml"
	yamlAst "github.com/goccy/go-yaml/ast"
	yamlLex "github.com/goccy/go-yaml/lexer"
	yamlParse "github.com/goccy/go-yaml/parser"
)

var (
	ErrUnsupportedYamlNodeType = errors.New("unsupported YAML node type")
)

type yamlParser struct {
}

func (yamlParser) Validate(s string) bool {
	tokens := yamlLex.Tokenize(s)
	_, err := yamlParse.Parse(tokens, yamlParse.ParseComments)
	return err == nil
}

// Parse parses a YAML stream, a stream with a single document is converted to the value of the document,
// a stream with several documents is converted to a list of values.
func (yamlParser) Parse(s string) (core.Value, error) {
	tokens := yamlLex.Tokenize(s)
	file, err := yamlParse.Parse(tokens, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	documents, err := ConvertYamlFile(file)
	if err != nil {
		return nil, err
	}

	switch len(documents) {
	case 0:
		return core.Nil, nil
	case 1:
		return documents[0], nil
	default:
		return core.NewList(documents...), nil
	}
}

// ConvertYamlFile converts each document of f to a value.
func ConvertYamlFile(f *yamlAst.File) ([]core.Value, error) {
	values := make([]core.Value, 0, len(f.Docs))
	for _, doc := range f.Docs {
		v, err := ConvertYamlNode(doc)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// ConvertYamlNode converts a YAML AST node to a value, mappings become dicts and sequences become lists.
// Anchors, aliases and merge keys are not supported.
func ConvertYamlNode(n yamlAst.Node) (core.Value, error) {
	if n == nil {
		return core.Nil, nil
	}

	switch n.Type() {
	case yamlAst.DocumentType:
		return ConvertYamlNode(n.(*yamlAst.DocumentNode).Body)
	case yamlAst.NullType:
		return core.Nil, nil
	case yamlAst.BoolType:
		return core.Bool(n.(*yamlAst.BoolNode).Value), nil
	case yamlAst.IntegerType:
		//int64 or uint64
		return core.ValueFromGo(n.(*yamlAst.IntegerNode).Value)
	case yamlAst.FloatType:
		return core.Float(n.(*yamlAst.FloatNode).Value), nil
	case yamlAst.InfinityType:
		return core.Float(n.(*yamlAst.InfinityNode).Value), nil
	case yamlAst.NanType:
		return core.Float(math.NaN()), nil
	case yamlAst.StringType:
		return core.Str(n.(*yamlAst.StringNode).Value), nil
	case yamlAst.LiteralType:
		return core.Str(n.(*yamlAst.LiteralNode).Value.Value), nil
	case yamlAst.TagType:
		return ConvertYamlNode(n.(*yamlAst.TagNode).Value)
	case yamlAst.MappingType:
		dict := core.NewDict()
		for _, item := range n.(*yamlAst.MappingNode).Values {
			if err := setMappingValue(dict, item); err != nil {
				return nil, err
			}
		}
		return dict, nil
	case yamlAst.MappingValueType:
		dict := core.NewDict()
		if err := setMappingValue(dict, n.(*yamlAst.MappingValueNode)); err != nil {
			return nil, err
		}
		return dict, nil
	case yamlAst.SequenceType:
		items := n.(*yamlAst.SequenceNode).Values
		values := make([]core.Value, len(items))

		for i, item := range items {
			v, err := ConvertYamlNode(item)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return core.NewList(values...), nil
	}

	return nil, fmt.Errorf("%w: %s at YAML path %s", ErrUnsupportedYamlNodeType, n.Type(), n.GetPath())
}

func setMappingValue(dict *core.Dict, item *yamlAst.MappingValueNode) error {
	if item.Key.Type() == yamlAst.MergeKeyType {
		return fmt.Errorf("%w: merge key at YAML path %s", ErrUnsupportedYamlNodeType, item.GetPath())
	}

	var key string
	if str, ok := item.Key.(*yamlAst.StringNode); ok {
		key = str.Value
	} else {
		key = item.Key.String()
	}

	v, err := ConvertYamlNode(item.Value)
	if err != nil {
		return err
	}
	dict.Set(core.Str(key), v)
	return nil
}

type yamlEncoder struct {
}

func (yamlEncoder) Encode(v core.Value) ([]byte, error) {
	return EncodeYAML(v)
}

// EncodeYAML returns the YAML encoding of v, tuples are encoded as sequences and dict keys keep their order.
func EncodeYAML(v core.Value) ([]byte, error) {
	yamlValue, err := toYAMLCompatible(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(yamlValue)
}

func toYAMLCompatible(v core.Value) (any, error) {
	return core.ToGo(v, core.GoConversion{
		Dict: func(keys []core.Str, values []any) any {
			mapSlice := make(yaml.MapSlice, len(keys))
			for i, key := range keys {
				mapSlice[i] = yaml.MapItem{Key: string(key), Value: values[i]}
			}
			return mapSlice
		},
	})
}
