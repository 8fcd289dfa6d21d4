package texttag

import (
	"fmt"
	"unicode/utf8"

	"github.com/delaneyj/toolbelt/bytebufferpool"
)

// DecodeString converts a packed string to text form with the built-in
// tables.
func DecodeString(b []byte) (string, error) {
	return defaultCodec.DecodeString(b)
}

// EncodeString converts text form to a packed string with the built-in
// tables.
func EncodeString(s string) ([]byte, error) {
	return defaultCodec.EncodeString(s)
}

// DecodeString converts a packed string to text form. Each position is
// first tried as a tag; otherwise the byte is a literal mapped through the
// codec's charset.
func (cd *Codec) DecodeString(b []byte) (string, error) {
	out := getRuneSlice(len(b) + len(b)/2)
	defer func() { putRuneSlice(out) }()

	c := NewCursor(len(b))
	for !c.Done() && c.Pos < len(b) {
		start := c.Pos
		if t, ok := cd.ReadBinary(b, &c); ok {
			var err error
			if out, err = cd.AppendText(out, t); err != nil {
				return "", fmt.Errorf("byte %d: %w", start, err)
			}
			continue
		}
		out = append(out, cd.charset.DecodeByte(b[c.Pos]))
		c.Pos++
		c.Quota--
	}
	return string(out), nil
}

// EncodeString converts text form to a packed string. Each position is
// first tried as a bracketed tag; otherwise the character is a literal.
// Literals outside the charset fail with a *LiteralError, as do literals
// whose byte is a tag code (wrapping ErrReservedLiteral).
func (cd *Codec) EncodeString(s string) ([]byte, error) {
	chars := getRuneSlice(utf8.RuneCountInString(s))
	for _, r := range s {
		chars = append(chars, r)
	}
	defer func() { putRuneSlice(chars) }()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	var tmp [2]byte
	c := NewCursor(len(chars))
	for !c.Done() && c.Pos < len(chars) {
		if t, ok := cd.ReadText(chars, &c); ok {
			buf.Write(AppendBinary(tmp[:0], t))
			continue
		}
		r := chars[c.Pos]
		lit, ok := cd.charset.EncodeRune(r)
		if !ok {
			return nil, &LiteralError{Pos: c.Pos, Rune: r}
		}
		if TagCode(lit).Known() {
			return nil, &LiteralError{Pos: c.Pos, Rune: r, Err: ErrReservedLiteral}
		}
		buf.WriteByte(lit)
		c.Pos++
		c.Quota--
	}
	out := append([]byte{}, buf.Bytes()...)
	return out, nil
}
