package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
)

// ParseError reports a syntax problem in the input text. Line is 1-based and
// computed by counting newlines up to the failing byte offset.
type ParseError struct {
	Line   int
	Offset int64
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("JSON parse error at line %d: %s", e.Line, e.Msg)
}

// Parse turns JSON text into a document tree. The input must contain exactly
// one root value; duplicate keys within an object and trailing content after
// the root are syntax errors.
func Parse(data []byte) (*Value, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	root, err := readValue(dec)
	if err != nil {
		return nil, parseErrorAt(data, dec, err)
	}
	if dec.More() {
		return nil, parseErrorAt(data, dec, errors.New("unexpected content after top-level value"))
	}
	return root, nil
}

func readValue(dec *gojson.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New("unexpected end of input")
		}
		return nil, err
	}
	return valueFromToken(dec, tok)
}

func valueFromToken(dec *gojson.Decoder, tok any) (*Value, error) {
	switch t := tok.(type) {
	case gojson.Delim:
		switch t {
		case '{':
			return readObject(dec)
		case '[':
			return readArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case string:
		return String(t), nil
	case gojson.Number:
		return Number(t.String()), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func readObject(dec *gojson.Decoder) (*Value, error) {
	obj := Object()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		if _, dup := obj.Find(key); dup {
			return nil, fmt.Errorf("duplicate object key %q", key)
		}
		val, err := readValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, val)
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func readArray(dec *gojson.Decoder) (*Value, error) {
	arr := Array()
	for dec.More() {
		val, err := readValue(dec)
		if err != nil {
			return nil, err
		}
		arr.Append(val)
	}
	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

func parseErrorAt(data []byte, dec *gojson.Decoder, err error) *ParseError {
	offset := dec.InputOffset()
	var syn *gojson.SyntaxError
	if errors.As(err, &syn) {
		offset = syn.Offset
	}
	return &ParseError{Line: lineAt(data, offset), Offset: offset, Msg: err.Error()}
}

func lineAt(data []byte, offset int64) int {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	if offset < 0 {
		offset = 0
	}
	return 1 + bytes.Count(data[:offset], []byte{'\n'})
}
