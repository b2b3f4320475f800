package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// Wire format constants. Changing any of them invalidates every cursor already
// handed out to clients.
const (
	// Delimiter separates the fields of a page-state tuple.
	Delimiter = "||"
	// KeyDelimiter separates the parts of a composite key (office/name) inside one field.
	KeyDelimiter = "/"
	// NullField marks an absent field. A field holding the literal "null" decodes as absent.
	NullField = "null"
)

const escapeChar = '\\'

var encoding = base64.RawURLEncoding

// ErrInvalidCursor is the category of every cursor decoding failure.
var ErrInvalidCursor = errors.New("invalid cursor")

// CursorError describes why a cursor was rejected.
// errors.Is(err, ErrInvalidCursor) holds for every CursorError.
type CursorError struct {
	Reason string
	Err    error
}

func (e *CursorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid cursor: %s: %v", e.Reason, e.Err)
	}
	return "invalid cursor: " + e.Reason
}

func (e *CursorError) Unwrap() error {
	return e.Err
}

func (e *CursorError) Is(target error) bool {
	return target == ErrInvalidCursor
}

func invalidCursor(reason string, err error) error {
	return &CursorError{Reason: reason, Err: err}
}

// InvalidCursor reports a cursor that decoded but whose fields do not fit the
// resource it was sent to.
func InvalidCursor(reason string, err error) error {
	return invalidCursor(reason, err)
}

// EncodeCursor joins the fields with Delimiter and returns the opaque token.
// Pipes and backslashes inside a field are escaped so splitting stays unambiguous.
func EncodeCursor(fields ...string) (string, error) {
	if len(fields) == 0 {
		return "", errors.New("cursor requires at least one field")
	}

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString(Delimiter)
		}
		escapeField(&b, f)
	}

	return encoding.EncodeToString([]byte(b.String())), nil
}

// DecodeCursor reverses EncodeCursor and checks the field count against arity.
// An empty token is not a cursor; callers treat it as "first page" before calling.
func DecodeCursor(token string, arity int) ([]string, error) {
	if token == "" {
		return nil, invalidCursor("empty cursor", nil)
	}

	raw, err := decodeBase64(token)
	if err != nil {
		return nil, invalidCursor("malformed encoding", err)
	}

	parts := strings.Split(string(raw), Delimiter)
	if len(parts) != arity {
		return nil, invalidCursor(
			fmt.Sprintf("expected %d fields, got %d; verify the page value came from this endpoint", arity, len(parts)), nil)
	}

	for i, p := range parts {
		field, err := unescapeField(p)
		if err != nil {
			return nil, invalidCursor(fmt.Sprintf("field %d", i), err)
		}
		parts[i] = field
	}

	return parts, nil
}

// decodeBase64 accepts the URL-safe alphabet used for encoding and the standard
// padded alphabet of older tokens.
func decodeBase64(token string) ([]byte, error) {
	trimmed := strings.TrimRight(token, "=")
	if strings.ContainsAny(trimmed, "+/") {
		return base64.RawStdEncoding.DecodeString(trimmed)
	}
	return encoding.DecodeString(trimmed)
}

// escapeField works on bytes so invalid UTF-8 survives the round trip.
func escapeField(b *strings.Builder, f string) {
	for i := 0; i < len(f); i++ {
		switch c := f[i]; c {
		case escapeChar:
			b.WriteString(`\\`)
		case '|':
			b.WriteString(`\p`)
		default:
			b.WriteByte(c)
		}
	}
}

func unescapeField(f string) (string, error) {
	if !strings.ContainsAny(f, `\|`) {
		return f, nil
	}

	var b strings.Builder
	for i := 0; i < len(f); i++ {
		c := f[i]
		switch c {
		case '|':
			return "", errors.New("unescaped delimiter character")
		case escapeChar:
			if i+1 >= len(f) {
				return "", errors.New("dangling escape")
			}
			i++
			switch f[i] {
			case escapeChar:
				b.WriteByte(escapeChar)
			case 'p':
				b.WriteByte('|')
			default:
				return "", fmt.Errorf("unknown escape %q", f[i])
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// JoinKey builds a composite key such as "SPK/Black Butte". The leading part must
// not contain KeyDelimiter; the last part may.
func JoinKey(head, tail string) (string, error) {
	if strings.Contains(head, KeyDelimiter) {
		return "", fmt.Errorf("key part %q must not contain %q", head, KeyDelimiter)
	}
	return head + KeyDelimiter + tail, nil
}

// SplitKey reverses JoinKey.
func SplitKey(key string) (head, tail string, err error) {
	head, tail, ok := strings.Cut(key, KeyDelimiter)
	if !ok || head == "" {
		return "", "", invalidCursor(fmt.Sprintf("composite key %q lacks %q", key, KeyDelimiter), nil)
	}
	return head, tail, nil
}
