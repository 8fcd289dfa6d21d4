package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	texttag "github.com/starfederation/texttag-go"
	"github.com/starfederation/texttag-go/catalog"
)

func testEnv() (*env, *bytes.Buffer) {
	var out bytes.Buffer
	return &env{codec: texttag.Default(), log: zerolog.Nop(), stdout: &out}, &out
}

func TestDecodeEncodeCommands(t *testing.T) {
	e, out := testEnv()
	if err := (&decodeCmd{Hex: []string{"48 69", "0A03", "05"}}).Run(e); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := out.String(); got != "Hi{Icon 3}{End}\n" {
		t.Fatalf("decode output = %q", got)
	}
	out.Reset()
	if err := (&encodeCmd{Text: "Hi{Icon 3}{End}"}).Run(e); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := out.String(); got != "48 69 0A 03 05\n" {
		t.Fatalf("encode output = %q", got)
	}
}

func TestDecodeCommandBadHex(t *testing.T) {
	e, _ := testEnv()
	if err := (&decodeCmd{Hex: []string{"zz"}}).Run(e); err == nil {
		t.Fatalf("expected hex error")
	}
}

func TestPackExportImport(t *testing.T) {
	dir := t.TempDir()
	recordsPath := filepath.Join(dir, "in.json")
	catPath := filepath.Join(dir, "strings.cbor")
	in := `[{"id":"greeting","text":"Hello {Text Leader}{End}"}]`
	if err := os.WriteFile(recordsPath, []byte(in), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	e, out := testEnv()
	if err := (&packCmd{Records: recordsPath, Output: catPath}).Run(e); err != nil {
		t.Fatalf("pack: %v", err)
	}
	if err := (&exportCmd{Catalog: catPath}).Run(e); err != nil {
		t.Fatalf("export: %v", err)
	}
	records, err := catalog.ReadJSON(out.Bytes())
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if len(records) != 1 || records[0].Text != "Hello {Text Leader}{End}" {
		t.Fatalf("records = %+v", records)
	}

	records[0].Text = "Salut {Text Leader}{End}"
	var buf bytes.Buffer
	if err := catalog.WriteJSON(&buf, records); err != nil {
		t.Fatalf("write json: %v", err)
	}
	if err := os.WriteFile(recordsPath, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := (&importCmd{Catalog: catPath, Records: recordsPath}).Run(e); err != nil {
		t.Fatalf("import: %v", err)
	}
	cat, err := loadCatalog(catPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	data, _ := cat.Get("greeting")
	want := append([]byte("Salut "), 0x0B, 0x01, 0x05)
	if !bytes.Equal(data, want) {
		t.Fatalf("greeting = % X, want % X", data, want)
	}
}

func TestVocabCommand(t *testing.T) {
	e, out := testEnv()
	if err := (&vocabCmd{}).Run(e); err != nil {
		t.Fatalf("vocab: %v", err)
	}
	for _, want := range []string{"0x0A  Icon", "int", "[key]", "0x06  L1", "0x0D  Gil"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after <= 0 {
		return 0, errors.New("disk full")
	}
	w.after--
	return len(p), nil
}

func TestVocabCommandWriteError(t *testing.T) {
	for _, after := range []int{0, 12, 13} {
		e := &env{codec: texttag.Default(), log: zerolog.Nop(), stdout: &failingWriter{after: after}}
		if err := (&vocabCmd{}).Run(e); err == nil {
			t.Fatalf("after %d writes: expected error", after)
		}
	}
}
