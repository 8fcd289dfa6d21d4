package texttag

import (
	"errors"
	"strings"
	"testing"
)

func TestReadTextRoundTrip(t *testing.T) {
	for _, tag := range sampleTags() {
		s, err := FormatTag(tag)
		if err != nil {
			t.Fatalf("FormatTag(%#v): %v", tag, err)
		}
		chars := []rune(s)
		c := Cursor{Quota: 50}
		got, ok := ReadText(chars, &c)
		if !ok || got != tag {
			t.Fatalf("ReadText(%q) = %#v, %v; want %#v", s, got, ok, tag)
		}
		if c.Pos != len(chars) {
			t.Fatalf("%q: pos = %d, want %d", s, c.Pos, len(chars))
		}
		if want := 50 - len(chars); c.Quota != want {
			t.Fatalf("%q: quota = %d, want %d", s, c.Quota, want)
		}
	}
}

func TestFormatTag(t *testing.T) {
	cases := []struct {
		tag  Tag
		want string
	}{
		{End{}, "{End}"},
		{ArticleMany{}, "{ArticleMany}"},
		{Icon{Index: 3}, "{Icon 3}"},
		{Var{Index: 0}, "{Var 0}"},
		{Text{Ref: 0x06}, "{Text Item}"},
		{Text{Ref: 200}, "{Text 200}"},
		{Key{Button: 0x0B}, "{Key RightStick}"},
	}
	for _, tc := range cases {
		got, err := FormatTag(tc.tag)
		if err != nil {
			t.Fatalf("FormatTag(%#v): %v", tc.tag, err)
		}
		if got != tc.want {
			t.Fatalf("FormatTag(%#v) = %q, want %q", tc.tag, got, tc.want)
		}
	}
}

func TestReadTextScenarios(t *testing.T) {
	cases := []struct {
		in   string
		pos  int
		want Tag
		// consumed is both the cursor advance and the quota charge.
		consumed int
	}{
		{in: "{Icon 3}", want: Icon{Index: 3}, consumed: 8},
		{in: "{Icon 003}", want: Icon{Index: 3}, consumed: 10},
		{in: "{Icon 255}", want: Icon{Index: 255}, consumed: 10},
		{in: "{End}", want: End{}, consumed: 5},
		{in: "{End junk}", want: End{}, consumed: 10},
		{in: "{End }", want: End{}, consumed: 6},
		{in: "Hi {Var 1}!", pos: 3, want: Var{Index: 1}, consumed: 7},
		{in: "{Key Confirm}", want: Key{Button: 0x00}, consumed: 13},
		{in: "{Key 200}", want: Key{Button: 200}, consumed: 9},
		{in: "{Text Gil} more", want: Text{Ref: 0x0D}, consumed: 10},
		{in: "{End}{End}", want: End{}, consumed: 5},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			c := Cursor{Pos: tc.pos, Quota: 20}
			got, ok := ReadText([]rune(tc.in), &c)
			if !ok || got != tc.want {
				t.Fatalf("got %#v, %v; want %#v", got, ok, tc.want)
			}
			if c.Pos != tc.pos+tc.consumed || c.Quota != 20-tc.consumed {
				t.Fatalf("cursor = %+v, want pos %d quota %d", c, tc.pos+tc.consumed, 20-tc.consumed)
			}
		})
	}
}

func TestReadTextNoTag(t *testing.T) {
	cases := []struct {
		in  string
		pos int
	}{
		{in: "{Icon}"},
		{in: "{Bogus}"},
		{in: "{end}"},
		{in: "{End"},
		{in: "{Icon 3"},
		{in: "{}"},
		{in: "{"},
		{in: ""},
		{in: "End}"},
		{in: "{ End}"},
		{in: "{Icon 256}"},
		{in: "{Icon -1}"},
		{in: "{Icon +3}"},
		{in: "{Icon  3}"},
		{in: "{Icon 3 }"},
		{in: "{Icon 0x3}"},
		{in: "{Icon ３}"},
		{in: "{Key 0}"},
		{in: "{Key confirm}"},
		{in: "{Text}"},
		{in: "{Text Nobody}"},
		{in: "{Icon {End}"},
		{in: "x{End}"},
		{in: "{End}", pos: 5},
		{in: "{End}", pos: -2},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			c := Cursor{Pos: tc.pos, Quota: 3}
			before := c
			if got, ok := ReadText([]rune(tc.in), &c); ok {
				t.Fatalf("got %#v, want no tag", got)
			}
			if c != before {
				t.Fatalf("cursor changed: %+v -> %+v", before, c)
			}
		})
	}
}

func TestReadTextCustomSymbols(t *testing.T) {
	symbols, err := Rename(Renames{
		Tags: map[string]string{"Icon": "Symbole"},
		Keys: map[string]string{"Confirm": "Valider"},
	})
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	cd := NewCodec(WithSymbols(symbols))

	c := Cursor{Quota: 20}
	got, ok := cd.ReadText([]rune("{Symbole 4}"), &c)
	if !ok || got != (Icon{Index: 4}) {
		t.Fatalf("got %#v, %v", got, ok)
	}
	c = Cursor{Quota: 20}
	if got, ok := cd.ReadText([]rune("{Icon 4}"), &c); ok {
		t.Fatalf("old name resolved to %#v", got)
	}
	s, err := cd.FormatTag(Key{Button: 0x00})
	if err != nil || s != "{Key Valider}" {
		t.Fatalf("FormatTag = %q, %v", s, err)
	}
}

func TestAppendTextTooLong(t *testing.T) {
	fits := strings.Repeat("K", MaxTagLength-len("{Key }"))
	long := strings.Repeat("L", MaxTagLength-len("{Key }")+1)
	symbols, err := Rename(Renames{Keys: map[string]string{"Confirm": fits, "Cancel": long}})
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	cd := NewCodec(WithSymbols(symbols))

	dst, err := cd.AppendText([]rune("ab"), Key{Button: 0x00})
	if err != nil {
		t.Fatalf("AppendText at limit: %v", err)
	}
	if len(dst) != 2+MaxTagLength {
		t.Fatalf("len = %d, want %d", len(dst), 2+MaxTagLength)
	}

	prefix := []rune("ab")
	dst, err = cd.AppendText(prefix, Key{Button: 0x01})
	var tooLong *TagTooLongError
	if !errors.As(err, &tooLong) {
		t.Fatalf("err = %v, want *TagTooLongError", err)
	}
	if tooLong.Length != MaxTagLength+1 {
		t.Fatalf("Length = %d", tooLong.Length)
	}
	if string(dst) != "ab" {
		t.Fatalf("dst = %q, want unchanged", string(dst))
	}
}

type partialLookup struct{ *Vocabulary }

func (l partialLookup) Name(code byte) (string, bool) {
	if TagCode(code) == CodeIcon {
		return "", false
	}
	return l.Vocabulary.Name(code)
}

func TestFormatTagUnnamedCode(t *testing.T) {
	tags, _ := DefaultVocabulary(ParamNone)
	cd := NewCodec(WithSymbols(Symbols{Tags: partialLookup{tags}}))

	if _, err := cd.FormatTag(Icon{Index: 3}); !errors.Is(err, ErrUnnamedCode) {
		t.Fatalf("err = %v, want ErrUnnamedCode", err)
	}
	dst, err := cd.AppendText([]rune("ab"), Icon{Index: 3})
	if err == nil || string(dst) != "ab" {
		t.Fatalf("AppendText = %q, %v", string(dst), err)
	}
	if _, err := cd.DecodeString([]byte{0x0A, 0x03}); !errors.Is(err, ErrUnnamedCode) {
		t.Fatalf("decode err = %v, want ErrUnnamedCode", err)
	}
	if s, err := cd.FormatTag(End{}); err != nil || s != "{End}" {
		t.Fatalf("FormatTag(End) = %q, %v", s, err)
	}
}
