// Package jslit converts JavaScript object literals into strict JSON.
//
// Map pages embed their data as JS assignments rather than JSON documents,
// so the literals routinely carry unquoted keys, single-quoted strings and
// trailing commas. Normalize rewrites such a literal into bytes that
// encoding/json accepts, leaving strict JSON input untouched. It is a
// tolerant rewriter, not a JavaScript engine: expressions, function calls
// and identifier references other than the JSON keywords are rejected.
package jslit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Normalize rewrites a JavaScript object or array literal into strict JSON.
// Input may carry trailing text after the literal (such as the `;` ending
// the assignment); everything after the first complete value is ignored.
func Normalize(src string) ([]byte, error) {
	s := &scanner{src: src}
	if err := s.skipSpace(); err != nil {
		return nil, err
	}
	if s.eof() {
		return nil, fmt.Errorf("empty literal")
	}
	if err := s.value(); err != nil {
		return nil, err
	}
	return s.out.Bytes(), nil
}

// Decode normalizes a JavaScript literal and unmarshals the result into v.
func Decode(src string, v any) error {
	data, err := Normalize(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

type scanner struct {
	src string
	pos int
	out bytes.Buffer
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	return s.src[s.pos]
}

func (s *scanner) errf(format string, args ...any) error {
	return fmt.Errorf(format+" at offset %d", append(args, s.pos)...)
}

// skipSpace consumes whitespace and JS comments.
func (s *scanner) skipSpace() error {
	for !s.eof() {
		switch c := s.peek(); {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v':
			s.pos++
		case c == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '/':
			for !s.eof() && s.peek() != '\n' {
				s.pos++
			}
		case c == '/' && s.pos+1 < len(s.src) && s.src[s.pos+1] == '*':
			end := indexFrom(s.src, "*/", s.pos+2)
			if end < 0 {
				return s.errf("unterminated comment")
			}
			s.pos = end + 2
		default:
			return nil
		}
	}
	return nil
}

func indexFrom(s, substr string, from int) int {
	idx := bytes.Index([]byte(s[from:]), []byte(substr))
	if idx < 0 {
		return -1
	}
	return from + idx
}

func (s *scanner) value() error {
	if s.eof() {
		return s.errf("unexpected end of literal")
	}
	switch c := s.peek(); {
	case c == '{':
		return s.object()
	case c == '[':
		return s.array()
	case c == '"' || c == '\'' || c == '`':
		return s.stringLit(c)
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return s.number()
	case isIdentStart(c):
		return s.word()
	default:
		return s.errf("unexpected character %q", c)
	}
}

func (s *scanner) object() error {
	s.pos++ // consume '{'
	s.out.WriteByte('{')
	if err := s.skipSpace(); err != nil {
		return err
	}
	if !s.eof() && s.peek() == '}' {
		s.pos++
		s.out.WriteByte('}')
		return nil
	}
	for {
		if err := s.key(); err != nil {
			return err
		}
		if err := s.skipSpace(); err != nil {
			return err
		}
		if s.eof() || s.peek() != ':' {
			return s.errf("expected ':' after object key")
		}
		s.pos++
		s.out.WriteByte(':')
		if err := s.skipSpace(); err != nil {
			return err
		}
		if err := s.value(); err != nil {
			return err
		}
		if err := s.skipSpace(); err != nil {
			return err
		}
		if s.eof() {
			return s.errf("unterminated object")
		}
		switch s.peek() {
		case ',':
			s.pos++
			if err := s.skipSpace(); err != nil {
				return err
			}
			// Tolerate a trailing comma before the closing brace.
			if !s.eof() && s.peek() == '}' {
				s.pos++
				s.out.WriteByte('}')
				return nil
			}
			s.out.WriteByte(',')
		case '}':
			s.pos++
			s.out.WriteByte('}')
			return nil
		default:
			return s.errf("expected ',' or '}' in object, found %q", s.peek())
		}
	}
}

func (s *scanner) array() error {
	s.pos++ // consume '['
	s.out.WriteByte('[')
	if err := s.skipSpace(); err != nil {
		return err
	}
	if !s.eof() && s.peek() == ']' {
		s.pos++
		s.out.WriteByte(']')
		return nil
	}
	for {
		if err := s.value(); err != nil {
			return err
		}
		if err := s.skipSpace(); err != nil {
			return err
		}
		if s.eof() {
			return s.errf("unterminated array")
		}
		switch s.peek() {
		case ',':
			s.pos++
			if err := s.skipSpace(); err != nil {
				return err
			}
			if !s.eof() && s.peek() == ']' {
				s.pos++
				s.out.WriteByte(']')
				return nil
			}
			s.out.WriteByte(',')
		case ']':
			s.pos++
			s.out.WriteByte(']')
			return nil
		default:
			return s.errf("expected ',' or ']' in array, found %q", s.peek())
		}
	}
}

// key emits an object key as a JSON string whether it was quoted, a bare
// identifier, or a numeric key.
func (s *scanner) key() error {
	if s.eof() {
		return s.errf("unexpected end of literal")
	}
	switch c := s.peek(); {
	case c == '"' || c == '\'' || c == '`':
		return s.stringLit(c)
	case isIdentStart(c):
		start := s.pos
		for !s.eof() && isIdentPart(s.peek()) {
			s.pos++
		}
		s.out.WriteByte('"')
		s.out.WriteString(s.src[start:s.pos])
		s.out.WriteByte('"')
		return nil
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		s.out.WriteByte('"')
		if err := s.number(); err != nil {
			return err
		}
		s.out.WriteByte('"')
		return nil
	default:
		return s.errf("unexpected character %q in object key", c)
	}
}

// stringLit rewrites a single-, double- or backtick-quoted string into a
// double-quoted JSON string.
func (s *scanner) stringLit(quote byte) error {
	s.pos++ // consume opening quote
	s.out.WriteByte('"')
	for {
		if s.eof() {
			return s.errf("unterminated string")
		}
		c := s.peek()
		switch {
		case c == quote:
			s.pos++
			s.out.WriteByte('"')
			return nil
		case c == '\\':
			if err := s.escape(); err != nil {
				return err
			}
		case c == '"':
			s.pos++
			s.out.WriteString(`\"`)
		case c == '\n':
			s.pos++
			s.out.WriteString(`\n`)
		case c == '\r':
			s.pos++
			s.out.WriteString(`\r`)
		case c == '\t':
			s.pos++
			s.out.WriteString(`\t`)
		case c < 0x20:
			s.pos++
			fmt.Fprintf(&s.out, `\u%04x`, c)
		default:
			s.pos++
			s.out.WriteByte(c)
		}
	}
}

// escape consumes a backslash escape and emits its JSON equivalent.
func (s *scanner) escape() error {
	s.pos++ // consume '\'
	if s.eof() {
		return s.errf("unterminated escape")
	}
	c := s.peek()
	s.pos++
	switch c {
	case '\\', '/', 'b', 'f', 'n', 'r', 't':
		s.out.WriteByte('\\')
		s.out.WriteByte(c)
	case '"':
		s.out.WriteString(`\"`)
	case 'u':
		if s.pos+4 > len(s.src) || !isHex(s.src[s.pos:s.pos+4]) {
			return s.errf("invalid unicode escape")
		}
		s.out.WriteString(`\u`)
		s.out.WriteString(s.src[s.pos : s.pos+4])
		s.pos += 4
	case 'x':
		if s.pos+2 > len(s.src) || !isHex(s.src[s.pos:s.pos+2]) {
			return s.errf("invalid hex escape")
		}
		fmt.Fprintf(&s.out, `\u00%s`, s.src[s.pos:s.pos+2])
		s.pos += 2
	case '0':
		s.out.WriteString(`\u0000`)
	case '\n':
		// Line continuation: contributes nothing.
	default:
		// JS treats \q as a plain q; the quote character itself is the
		// common case ( \' inside a single-quoted string ).
		if c == '"' {
			s.out.WriteString(`\"`)
		} else {
			s.out.WriteByte(c)
		}
	}
	return nil
}

// number rewrites a JS numeric literal into JSON form: leading '+' and
// bare leading/trailing dots are cleaned up, hex literals become decimal.
func (s *scanner) number() error {
	neg := false
	switch s.peek() {
	case '-':
		neg = true
		s.pos++
	case '+':
		s.pos++
	}
	if s.eof() {
		return s.errf("unexpected end of number")
	}
	// Signed Infinity / NaN reach this path.
	if isIdentStart(s.peek()) {
		return s.word()
	}
	if s.peek() == '0' && s.pos+1 < len(s.src) && (s.src[s.pos+1] == 'x' || s.src[s.pos+1] == 'X') {
		s.pos += 2
		start := s.pos
		for !s.eof() && isHexDigit(s.peek()) {
			s.pos++
		}
		if s.pos == start {
			return s.errf("invalid hex literal")
		}
		v, err := strconv.ParseUint(s.src[start:s.pos], 16, 64)
		if err != nil {
			return s.errf("invalid hex literal %q", s.src[start:s.pos])
		}
		if neg {
			s.out.WriteByte('-')
		}
		s.out.WriteString(strconv.FormatUint(v, 10))
		return nil
	}

	intPart := s.digits()
	fracPart := ""
	if !s.eof() && s.peek() == '.' {
		s.pos++
		fracPart = s.digits()
	}
	if intPart == "" && fracPart == "" {
		return s.errf("invalid number")
	}
	exp := ""
	if !s.eof() && (s.peek() == 'e' || s.peek() == 'E') {
		mark := s.pos
		s.pos++
		expSign := ""
		if !s.eof() && (s.peek() == '+' || s.peek() == '-') {
			expSign = string(s.peek())
			s.pos++
		}
		expDigits := s.digits()
		if expDigits == "" {
			// Not an exponent after all.
			s.pos = mark
		} else {
			exp = "e" + expSign + expDigits
		}
	}

	if neg {
		s.out.WriteByte('-')
	}
	if intPart == "" {
		intPart = "0"
	}
	s.out.WriteString(intPart)
	if fracPart != "" {
		s.out.WriteByte('.')
		s.out.WriteString(fracPart)
	}
	s.out.WriteString(exp)
	return nil
}

func (s *scanner) digits() string {
	start := s.pos
	for !s.eof() && s.peek() >= '0' && s.peek() <= '9' {
		s.pos++
	}
	return s.src[start:s.pos]
}

// word handles the bare identifiers that may appear in value position.
func (s *scanner) word() error {
	start := s.pos
	for !s.eof() && isIdentPart(s.peek()) {
		s.pos++
	}
	switch ident := s.src[start:s.pos]; ident {
	case "true", "false", "null":
		s.out.WriteString(ident)
	case "undefined", "NaN", "Infinity":
		// No JSON counterpart; null is the closest value.
		s.out.WriteString("null")
	default:
		return s.errf("unexpected identifier %q", ident)
	}
	return nil
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}
