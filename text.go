package texttag

import (
	"strings"
	"unicode/utf8"
)

const (
	tagOpen  = '{'
	tagClose = '}'
	tagSep   = ' '
)

// FormatTag renders t in text form with the built-in tables.
func FormatTag(t Tag) (string, error) {
	return defaultCodec.FormatTag(t)
}

// FormatTag renders t as {Name} or {Name Param}. A tag table without a
// name for t's code fails with ErrUnnamedCode.
func (cd *Codec) FormatTag(t Tag) (string, error) {
	name, err := cd.symbols.tagName(t.Code())
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(MaxTagLength)
	sb.WriteByte(tagOpen)
	sb.WriteString(name)
	if p, ok := t.Param(); ok {
		kind, _ := t.Code().ParamKind()
		sb.WriteByte(tagSep)
		sb.WriteString(cd.symbols.paramText(kind, p))
	}
	sb.WriteByte(tagClose)
	s := sb.String()
	if n := utf8.RuneCountInString(s); n > MaxTagLength {
		return "", &TagTooLongError{Rendered: s, Length: n}
	}
	return s, nil
}

// AppendText appends the text form of t to dst. On error dst is returned
// unchanged.
func AppendText(dst []rune, t Tag) ([]rune, error) {
	return defaultCodec.AppendText(dst, t)
}

// AppendText appends the text form of t to dst. On error dst is returned
// unchanged.
func (cd *Codec) AppendText(dst []rune, t Tag) ([]rune, error) {
	s, err := cd.FormatTag(t)
	if err != nil {
		return dst, err
	}
	for _, r := range s {
		dst = append(dst, r)
	}
	return dst, nil
}

// ReadText reads a bracketed tag at c.Pos with the built-in tables.
func ReadText(chars []rune, c *Cursor) (Tag, bool) {
	return defaultCodec.ReadText(chars, c)
}

// ReadText reads a bracketed tag at c.Pos. On success the cursor moves past
// the closing brace and the quota drops by the length of the bracketed
// run. Anything else, including braces that happen to occur in plain text,
// reports ok false with c unchanged.
func (cd *Codec) ReadText(chars []rune, c *Cursor) (t Tag, ok bool) {
	if c.Pos < 0 || c.Pos >= len(chars) || chars[c.Pos] != tagOpen {
		return nil, false
	}
	end := indexRune(chars[c.Pos+1:], tagClose)
	if end <= 0 {
		return nil, false
	}
	span := chars[c.Pos+1 : c.Pos+1+end]

	saved := *c
	defer func() {
		if !ok {
			*c = saved
		}
	}()
	c.Quota -= len(span) + 2
	c.Pos += len(span) + 2

	name, param := span, []rune(nil)
	if i := indexRune(span, tagSep); i >= 0 {
		name, param = span[:i], span[i+1:]
	}
	code, found := cd.symbols.Tags.Code(string(name))
	if !found {
		return nil, false
	}
	kind, known := TagCode(code).ParamKind()
	if !known {
		return nil, false
	}
	if kind == ParamNone {
		return NewTag(TagCode(code), 0)
	}
	p, found := cd.symbols.resolveParam(kind, string(param))
	if !found {
		return nil, false
	}
	return NewTag(TagCode(code), p)
}

func indexRune(s []rune, r rune) int {
	for i, c := range s {
		if c == r {
			return i
		}
	}
	return -1
}
