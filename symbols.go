package texttag

import (
	"fmt"
	"sort"
	"strconv"
)

// Lookup resolves names of one vocabulary. Matching is exact and
// case-sensitive.
type Lookup interface {
	Code(name string) (byte, bool)
	Name(code byte) (string, bool)
}

// Symbol is one entry of a vocabulary.
type Symbol struct {
	Name string
	Code byte
}

// Vocabulary is an immutable bidirectional name table.
type Vocabulary struct {
	byName map[string]byte
	byCode map[byte]string
}

// NewVocabulary builds a table from symbols. Empty names, names made only of
// digits, names containing a space or a brace, and duplicate names or codes
// are rejected.
func NewVocabulary(symbols []Symbol) (*Vocabulary, error) {
	v := &Vocabulary{
		byName: make(map[string]byte, len(symbols)),
		byCode: make(map[byte]string, len(symbols)),
	}
	for _, s := range symbols {
		if err := validSymbolName(s.Name); err != nil {
			return nil, err
		}
		if _, dup := v.byName[s.Name]; dup {
			return nil, fmt.Errorf("duplicate symbol name %q", s.Name)
		}
		if prev, dup := v.byCode[s.Code]; dup {
			return nil, fmt.Errorf("duplicate symbol code 0x%02X (%q, %q)", s.Code, prev, s.Name)
		}
		v.byName[s.Name] = s.Code
		v.byCode[s.Code] = s.Name
	}
	return v, nil
}

func mustVocabulary(symbols []Symbol) *Vocabulary {
	v, err := NewVocabulary(symbols)
	if err != nil {
		panic("texttag: " + err.Error())
	}
	return v
}

func validSymbolName(name string) error {
	if name == "" {
		return fmt.Errorf("empty symbol name")
	}
	for _, r := range name {
		switch r {
		case ' ', '{', '}':
			return fmt.Errorf("symbol name %q contains %q", name, r)
		}
	}
	// Digits are the text form of unnamed parameter values.
	if isDigits(name) {
		return fmt.Errorf("symbol name %q is all digits", name)
	}
	return nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// Code returns the code named name.
func (v *Vocabulary) Code(name string) (byte, bool) {
	c, ok := v.byName[name]
	return c, ok
}

// Name returns the name of code.
func (v *Vocabulary) Name(code byte) (string, bool) {
	n, ok := v.byCode[code]
	return n, ok
}

// Symbols returns the entries sorted by code.
func (v *Vocabulary) Symbols() []Symbol {
	out := make([]Symbol, 0, len(v.byCode))
	for c, n := range v.byCode {
		out = append(out, Symbol{Name: n, Code: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Rename derives a table where the entries named in names (old name to
// new name) are renamed. Unknown old names are an error.
func (v *Vocabulary) Rename(names map[string]string) (*Vocabulary, error) {
	for old := range names {
		if _, ok := v.byName[old]; !ok {
			return nil, fmt.Errorf("unknown symbol %q", old)
		}
	}
	symbols := v.Symbols()
	for i := range symbols {
		if renamed, ok := names[symbols[i].Name]; ok {
			symbols[i].Name = renamed
		}
	}
	return NewVocabulary(symbols)
}

// Symbols groups the lookups the codec resolves against.
type Symbols struct {
	Tags  Lookup
	Texts Lookup
	Keys  Lookup
}

var (
	defaultTags = mustVocabulary([]Symbol{
		{"Question", byte(CodeQuestion)},
		{"Italic", byte(CodeItalic)},
		{"Many", byte(CodeMany)},
		{"Article", byte(CodeArticle)},
		{"End", byte(CodeEnd)},
		{"ArticleMany", byte(CodeArticleMany)},
		{"LineBreak", byte(CodeLineBreak)},
		{"PageBreak", byte(CodePageBreak)},
		{"Var", byte(CodeVar)},
		{"Icon", byte(CodeIcon)},
		{"Text", byte(CodeText)},
		{"Key", byte(CodeKey)},
	})

	defaultTexts = mustVocabulary([]Symbol{
		{"Speaker", 0x00},
		{"Leader", 0x01},
		{"Member1", 0x02},
		{"Member2", 0x03},
		{"Member3", 0x04},
		{"Target", 0x05},
		{"Item", 0x06},
		{"Weapon", 0x07},
		{"Accessory", 0x08},
		{"Ability", 0x09},
		{"Location", 0x0A},
		{"Enemy", 0x0B},
		{"Mission", 0x0C},
		{"Gil", 0x0D},
	})

	defaultKeys = mustVocabulary([]Symbol{
		{"Confirm", 0x00},
		{"Cancel", 0x01},
		{"Menu", 0x02},
		{"Map", 0x03},
		{"Paradigm", 0x04},
		{"Skip", 0x05},
		{"L1", 0x06},
		{"R1", 0x07},
		{"L2", 0x08},
		{"R2", 0x09},
		{"LeftStick", 0x0A},
		{"RightStick", 0x0B},
		{"DPadUp", 0x0C},
		{"DPadDown", 0x0D},
		{"DPadLeft", 0x0E},
		{"DPadRight", 0x0F},
		{"Start", 0x10},
		{"Select", 0x11},
	})
)

// DefaultSymbols returns the built-in tables.
func DefaultSymbols() Symbols {
	return Symbols{Tags: defaultTags, Texts: defaultTexts, Keys: defaultKeys}
}

// DefaultVocabulary returns the built-in table for kind; ParamNone selects
// the tag code table. ParamInt has no table.
func DefaultVocabulary(kind ParamKind) (*Vocabulary, bool) {
	switch kind {
	case ParamNone:
		return defaultTags, true
	case ParamText:
		return defaultTexts, true
	case ParamKey:
		return defaultKeys, true
	default:
		return nil, false
	}
}

// Renames holds per-vocabulary name overrides, old name to new name.
type Renames struct {
	Tags  map[string]string
	Texts map[string]string
	Keys  map[string]string
}

// Rename derives symbols from the built-in tables with the given names
// replaced.
func Rename(r Renames) (Symbols, error) {
	tags, err := defaultTags.Rename(r.Tags)
	if err != nil {
		return Symbols{}, fmt.Errorf("tags: %w", err)
	}
	texts, err := defaultTexts.Rename(r.Texts)
	if err != nil {
		return Symbols{}, fmt.Errorf("texts: %w", err)
	}
	keys, err := defaultKeys.Rename(r.Keys)
	if err != nil {
		return Symbols{}, fmt.Errorf("keys: %w", err)
	}
	return Symbols{Tags: tags, Texts: texts, Keys: keys}, nil
}

func (s Symbols) params(kind ParamKind) Lookup {
	switch kind {
	case ParamText:
		return s.Texts
	case ParamKey:
		return s.Keys
	default:
		return nil
	}
}

func (s Symbols) tagName(c TagCode) (string, error) {
	if name, ok := s.Tags.Name(byte(c)); ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: 0x%02X", ErrUnnamedCode, byte(c))
}

// paramText renders a parameter: a name for named vocabularies when the
// value has one, decimal digits otherwise.
func (s Symbols) paramText(kind ParamKind, b byte) string {
	if l := s.params(kind); l != nil {
		if name, ok := l.Name(b); ok {
			return name
		}
	}
	return strconv.Itoa(int(b))
}

// resolveParam is the inverse of paramText. Decimal digits are accepted for
// a named vocabulary only when the value has no name.
func (s Symbols) resolveParam(kind ParamKind, text string) (byte, bool) {
	if kind == ParamInt {
		return parseByte(text)
	}
	l := s.params(kind)
	if l == nil {
		return 0, false
	}
	if b, ok := l.Code(text); ok {
		return b, true
	}
	b, ok := parseByte(text)
	if !ok {
		return 0, false
	}
	if _, named := l.Name(b); named {
		return 0, false
	}
	return b, true
}

// parseByte accepts unsigned base-10 digits only: no sign, no whitespace.
func parseByte(s string) (byte, bool) {
	if !isDigits(s) {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, false
	}
	return byte(n), true
}
