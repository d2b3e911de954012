package document

import (
	"io"

	gojson "github.com/goccy/go-json"
)

const indentStep = "    "

// Write pretty-prints a document tree to w with four-space indentation. Any
// write failure from the sink is returned as-is; partial output may have been
// emitted by then.
func Write(w io.Writer, v *Value) error {
	if err := writeValue(w, v, ""); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func writeValue(w io.Writer, v *Value, indent string) error {
	if v == nil {
		_, err := io.WriteString(w, "null")
		return err
	}
	switch v.kind {
	case KindNull:
		_, err := io.WriteString(w, "null")
		return err
	case KindBool:
		s := "false"
		if v.boolean {
			s = "true"
		}
		_, err := io.WriteString(w, s)
		return err
	case KindNumber:
		_, err := io.WriteString(w, v.text)
		return err
	case KindString:
		return writeString(w, v.text)
	case KindArray:
		return writeArray(w, v, indent)
	case KindObject:
		return writeObject(w, v, indent)
	default:
		_, err := io.WriteString(w, "null")
		return err
	}
}

func writeString(w io.Writer, s string) error {
	quoted, err := gojson.Marshal(s)
	if err != nil {
		return err
	}
	_, err = w.Write(quoted)
	return err
}

func writeObject(w io.Writer, v *Value, indent string) error {
	if len(v.members) == 0 {
		_, err := io.WriteString(w, "{}")
		return err
	}
	if _, err := io.WriteString(w, "{\n"); err != nil {
		return err
	}
	inner := indent + indentStep
	for i, m := range v.members {
		if _, err := io.WriteString(w, inner); err != nil {
			return err
		}
		if err := writeString(w, m.Key); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ": "); err != nil {
			return err
		}
		if err := writeValue(w, m.Value, inner); err != nil {
			return err
		}
		sep := ",\n"
		if i == len(v.members)-1 {
			sep = "\n"
		}
		if _, err := io.WriteString(w, sep); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, indent+"}")
	return err
}

func writeArray(w io.Writer, v *Value, indent string) error {
	if len(v.items) == 0 {
		_, err := io.WriteString(w, "[]")
		return err
	}
	if _, err := io.WriteString(w, "[\n"); err != nil {
		return err
	}
	inner := indent + indentStep
	for i, item := range v.items {
		if _, err := io.WriteString(w, inner); err != nil {
			return err
		}
		if err := writeValue(w, item, inner); err != nil {
			return err
		}
		sep := ",\n"
		if i == len(v.items)-1 {
			sep = "\n"
		}
		if _, err := io.WriteString(w, sep); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, indent+"]")
	return err
}
