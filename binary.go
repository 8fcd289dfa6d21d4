package texttag

// AppendBinary appends the wire form of t: the code byte, then the
// parameter byte when t has one.
func AppendBinary(dst []byte, t Tag) []byte {
	dst = append(dst, byte(t.Code()))
	if p, ok := t.Param(); ok {
		dst = append(dst, p)
	}
	return dst
}

// RenderBinary returns the wire form of t.
func RenderBinary(t Tag) []byte {
	return AppendBinary(make([]byte, 0, 2), t)
}

// ReadBinary reads a tag at c.Pos. On success the cursor moves past the
// tag and the quota drops by 1 for parameterless tags and by 2 otherwise.
// When no tag starts at c.Pos, ok is false and c is unchanged; the caller
// consumes the byte as a literal.
func ReadBinary(b []byte, c *Cursor) (Tag, bool) {
	return defaultCodec.ReadBinary(b, c)
}

// ReadBinary reads a tag at c.Pos. The wire form does not depend on the
// symbol tables.
func (cd *Codec) ReadBinary(b []byte, c *Cursor) (Tag, bool) {
	if c.Pos < 0 || c.Pos >= len(b) {
		return nil, false
	}
	saved := *c

	// Charge two units up front and refund one for a parameterless code,
	// matching the containing format's bookkeeping.
	code := TagCode(b[c.Pos])
	c.Pos++
	c.Quota -= 2

	kind, ok := code.ParamKind()
	if !ok {
		*c = saved
		return nil, false
	}
	if kind == ParamNone {
		c.Quota++
		t, _ := NewTag(code, 0)
		return t, true
	}
	if c.Pos >= len(b) {
		*c = saved
		return nil, false
	}
	param := b[c.Pos]
	c.Pos++
	t, _ := NewTag(code, param)
	return t, true
}
