package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Value holds an arbitrary JSON scalar or container exactly as it appeared in
// the manifest. The zero Value means the key was absent; an explicit null is
// present and renders as "None".
type Value struct {
	raw json.RawMessage
}

// UnmarshalJSON keeps a copy of the raw bytes.
func (v *Value) UnmarshalJSON(data []byte) error {
	v.raw = append(v.raw[:0], data...)
	return nil
}

// MarshalJSON returns the raw bytes, or null for an absent value.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsZero() {
		return []byte("null"), nil
	}
	return v.raw, nil
}

// NewValue builds a Value from raw JSON text.
func NewValue(raw string) Value {
	return Value{raw: json.RawMessage(raw)}
}

// IsZero reports whether the key was absent from the manifest.
func (v Value) IsZero() bool {
	return len(v.raw) == 0
}

// Raw returns the JSON text of the value.
func (v Value) Raw() json.RawMessage {
	return v.raw
}

// String renders the value the way the extension's ReadMe has always shown
// settings: strings verbatim, booleans as True/False, null as None, and
// containers in list/dict notation with single-quoted strings.
func (v Value) String() string {
	if v.IsZero() {
		return ""
	}
	dec := json.NewDecoder(bytes.NewReader(v.raw))
	dec.UseNumber()
	s, err := formatValue(dec, true)
	if err != nil {
		return string(v.raw)
	}
	return s
}

func formatValue(dec *json.Decoder, top bool) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			var parts []string
			for dec.More() {
				s, err := formatValue(dec, false)
				if err != nil {
					return "", err
				}
				parts = append(parts, s)
			}
			if _, err := dec.Token(); err != nil {
				return "", err
			}
			return "[" + strings.Join(parts, ", ") + "]", nil
		case '{':
			var parts []string
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return "", err
				}
				key, _ := keyTok.(string)
				s, err := formatValue(dec, false)
				if err != nil {
					return "", err
				}
				parts = append(parts, quote(key)+": "+s)
			}
			if _, err := dec.Token(); err != nil {
				return "", err
			}
			return "{" + strings.Join(parts, ", ") + "}", nil
		}
		return "", fmt.Errorf("unexpected delimiter %q", t)
	case string:
		if top {
			return t, nil
		}
		return quote(t), nil
	case json.Number:
		return formatNumber(t), nil
	case bool:
		if t {
			return "True", nil
		}
		return "False", nil
	case nil:
		return "None", nil
	}
	return "", fmt.Errorf("unexpected token %v", tok)
}

// formatNumber prints integers as written and floats in shortest
// round-trip form, always with a fractional part or an exponent.
func formatNumber(n json.Number) string {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	abs := math.Abs(f)
	if f == 0 || (abs >= 1e-4 && abs < 1e16) {
		out := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(out, ".") {
			out += ".0"
		}
		return out
	}
	return strconv.FormatFloat(f, 'e', -1, 64)
}

// quote renders s the way a Python string repr does: single quotes unless s
// contains a single quote and no double quote, with non-printable characters
// escaped so a table cell never spans lines.
func quote(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var sb strings.Builder
	sb.WriteByte(q)
	for _, r := range s {
		switch {
		case r == '\\' || r == rune(q):
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r < 0x100 && !unicode.IsPrint(r):
			fmt.Fprintf(&sb, `\x%02x`, r)
		case !unicode.IsPrint(r) && r < 0x10000:
			fmt.Fprintf(&sb, `\u%04x`, r)
		case !unicode.IsPrint(r):
			fmt.Fprintf(&sb, `\U%08x`, r)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte(q)
	return sb.String()
}
