package texttag

import "strconv"

// MaxTagLength is the longest text rendering of a tag, braces included.
const MaxTagLength = 32

// TagCode is the wire byte identifying a tag kind.
type TagCode uint8

const (
	CodeQuestion    TagCode = 0x01
	CodeItalic      TagCode = 0x02
	CodeMany        TagCode = 0x03
	CodeArticle     TagCode = 0x04
	CodeEnd         TagCode = 0x05
	CodeArticleMany TagCode = 0x06
	CodeLineBreak   TagCode = 0x07
	CodePageBreak   TagCode = 0x08
	CodeVar         TagCode = 0x09
	CodeIcon        TagCode = 0x0A
	CodeText        TagCode = 0x0B
	CodeKey         TagCode = 0x0C
)

// ParamKind describes the parameter that follows a tag code.
type ParamKind uint8

const (
	ParamNone ParamKind = iota
	ParamInt
	ParamText
	ParamKey
)

func (k ParamKind) String() string {
	switch k {
	case ParamNone:
		return "none"
	case ParamInt:
		return "int"
	case ParamText:
		return "text"
	case ParamKey:
		return "key"
	default:
		return "ParamKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// ParamKind returns the parameter kind of c. ok is false for bytes that
// are not tag codes.
func (c TagCode) ParamKind() (kind ParamKind, ok bool) {
	switch c {
	case CodeQuestion, CodeItalic, CodeMany, CodeArticle, CodeEnd,
		CodeArticleMany, CodeLineBreak, CodePageBreak:
		return ParamNone, true
	case CodeVar, CodeIcon:
		return ParamInt, true
	case CodeText:
		return ParamText, true
	case CodeKey:
		return ParamKey, true
	default:
		return ParamNone, false
	}
}

// Known reports whether c is a tag code.
func (c TagCode) Known() bool {
	_, ok := c.ParamKind()
	return ok
}

// String returns the built-in name of c.
func (c TagCode) String() string {
	if name, ok := defaultTags.Name(byte(c)); ok {
		return name
	}
	return "TagCode(" + strconv.Itoa(int(c)) + ")"
}

// Codes returns every tag code in wire order.
func Codes() []TagCode {
	out := make([]TagCode, 0, int(CodeKey-CodeQuestion)+1)
	for c := CodeQuestion; c <= CodeKey; c++ {
		out = append(out, c)
	}
	return out
}

// TextRef names a nested text inserted by a Text tag.
type TextRef uint8

// KeyRef names a controller key shown by a Key tag.
type KeyRef uint8

// Tag is an inline marker. The concrete type fixes the parameter kind, so
// a tag can never carry a parameter its code does not declare.
type Tag interface {
	Code() TagCode
	// Param returns the wire byte of the parameter; ok is false for
	// parameterless tags.
	Param() (b byte, ok bool)
	isTag()
}

type (
	Question    struct{}
	Italic      struct{}
	Many        struct{}
	Article     struct{}
	End         struct{}
	ArticleMany struct{}
	LineBreak   struct{}
	PageBreak   struct{}

	// Var refers to a runtime variable slot.
	Var struct{ Index uint8 }
	// Icon refers to an icon glyph.
	Icon struct{ Index uint8 }
	// Text inserts a named nested text.
	Text struct{ Ref TextRef }
	// Key shows a controller key.
	Key struct{ Button KeyRef }
)

func (Question) Code() TagCode    { return CodeQuestion }
func (Italic) Code() TagCode      { return CodeItalic }
func (Many) Code() TagCode        { return CodeMany }
func (Article) Code() TagCode     { return CodeArticle }
func (End) Code() TagCode         { return CodeEnd }
func (ArticleMany) Code() TagCode { return CodeArticleMany }
func (LineBreak) Code() TagCode   { return CodeLineBreak }
func (PageBreak) Code() TagCode   { return CodePageBreak }
func (Var) Code() TagCode         { return CodeVar }
func (Icon) Code() TagCode        { return CodeIcon }
func (Text) Code() TagCode        { return CodeText }
func (Key) Code() TagCode         { return CodeKey }

func (Question) Param() (byte, bool)    { return 0, false }
func (Italic) Param() (byte, bool)      { return 0, false }
func (Many) Param() (byte, bool)        { return 0, false }
func (Article) Param() (byte, bool)     { return 0, false }
func (End) Param() (byte, bool)         { return 0, false }
func (ArticleMany) Param() (byte, bool) { return 0, false }
func (LineBreak) Param() (byte, bool)   { return 0, false }
func (PageBreak) Param() (byte, bool)   { return 0, false }
func (t Var) Param() (byte, bool)       { return t.Index, true }
func (t Icon) Param() (byte, bool)      { return t.Index, true }
func (t Text) Param() (byte, bool)      { return byte(t.Ref), true }
func (t Key) Param() (byte, bool)       { return byte(t.Button), true }

func (Question) isTag()    {}
func (Italic) isTag()      {}
func (Many) isTag()        {}
func (Article) isTag()     {}
func (End) isTag()         {}
func (ArticleMany) isTag() {}
func (LineBreak) isTag()   {}
func (PageBreak) isTag()   {}
func (Var) isTag()         {}
func (Icon) isTag()        {}
func (Text) isTag()        {}
func (Key) isTag()         {}

// NewTag builds the tag for a wire pair. param is ignored for
// parameterless codes. ok is false when code is not a tag code.
func NewTag(code TagCode, param byte) (Tag, bool) {
	switch code {
	case CodeQuestion:
		return Question{}, true
	case CodeItalic:
		return Italic{}, true
	case CodeMany:
		return Many{}, true
	case CodeArticle:
		return Article{}, true
	case CodeEnd:
		return End{}, true
	case CodeArticleMany:
		return ArticleMany{}, true
	case CodeLineBreak:
		return LineBreak{}, true
	case CodePageBreak:
		return PageBreak{}, true
	case CodeVar:
		return Var{Index: param}, true
	case CodeIcon:
		return Icon{Index: param}, true
	case CodeText:
		return Text{Ref: TextRef(param)}, true
	case CodeKey:
		return Key{Button: KeyRef(param)}, true
	default:
		return nil, false
	}
}

// BinaryLen returns the encoded size of t in bytes.
func BinaryLen(t Tag) int {
	if _, ok := t.Param(); ok {
		return 2
	}
	return 1
}
