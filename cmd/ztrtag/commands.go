package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	texttag "github.com/starfederation/texttag-go"
	"github.com/starfederation/texttag-go/catalog"
)

type decodeCmd struct {
	Hex []string `arg:"" help:"Packed bytes in hex; spaces between bytes are allowed."`
}

func (c *decodeCmd) Run(e *env) error {
	raw, err := hex.DecodeString(strings.Join(strings.Fields(strings.Join(c.Hex, " ")), ""))
	if err != nil {
		return fmt.Errorf("hex: %w", err)
	}
	s, err := e.codec.DecodeString(raw)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.stdout, s)
	return err
}

type encodeCmd struct {
	Text string `arg:"" help:"Text form, for example \"Press {Key Confirm}{End}\"."`
}

func (c *encodeCmd) Run(e *env) error {
	b, err := e.codec.EncodeString(c.Text)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(e.stdout, "% X\n", b)
	return err
}

type exportCmd struct {
	Catalog string `arg:"" help:"Catalog snapshot." type:"existingfile"`
	Output  string `help:"Write JSON here instead of stdout." short:"o" type:"path"`
}

func (c *exportCmd) Run(e *env) error {
	cat, err := loadCatalog(c.Catalog)
	if err != nil {
		return err
	}
	records, err := cat.Export(e.codec)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := catalog.WriteJSON(&buf, records); err != nil {
		return err
	}
	e.log.Info().Int("records", len(records)).Str("catalog", c.Catalog).Msg("exported")
	if c.Output == "" {
		_, err = e.stdout.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(c.Output, buf.Bytes(), 0o644)
}

type importCmd struct {
	Catalog string `arg:"" help:"Catalog snapshot." type:"existingfile"`
	Records string `arg:"" help:"JSON records." type:"existingfile"`
	Output  string `help:"Write the catalog here instead of in place." short:"o" type:"path"`
	Force   bool   `help:"Apply records whose source entry changed since export."`
}

func (c *importCmd) Run(e *env) error {
	cat, err := loadCatalog(c.Catalog)
	if err != nil {
		return err
	}
	records, err := readRecords(c.Records)
	if err != nil {
		return err
	}
	report, err := cat.Import(e.codec, records, catalog.ImportOptions{Force: c.Force})
	if err != nil {
		return err
	}
	for _, id := range report.Stale {
		e.log.Warn().Str("entry", id).Msg("skipped: entry changed since export")
	}
	for _, id := range report.Unknown {
		e.log.Warn().Str("entry", id).Msg("skipped: unknown entry")
	}
	out := c.Output
	if out == "" {
		out = c.Catalog
	}
	if err := saveCatalog(out, cat); err != nil {
		return err
	}
	e.log.Info().Str("catalog", out).Stringer("report", report).Msg("imported")
	return nil
}

type packCmd struct {
	Records string `arg:"" help:"JSON records." type:"existingfile"`
	Output  string `help:"Catalog snapshot to write." short:"o" required:"" type:"path"`
}

func (c *packCmd) Run(e *env) error {
	records, err := readRecords(c.Records)
	if err != nil {
		return err
	}
	cat := catalog.New()
	for _, rec := range records {
		b, err := e.codec.EncodeString(rec.Text)
		if err != nil {
			return fmt.Errorf("record %q: %w", rec.ID, err)
		}
		if err := cat.Add(rec.ID, b); err != nil {
			return err
		}
	}
	if err := saveCatalog(c.Output, cat); err != nil {
		return err
	}
	e.log.Info().Int("entries", cat.Len()).Str("catalog", c.Output).Msg("packed")
	return nil
}

type vocabCmd struct{}

func (c *vocabCmd) Run(e *env) error {
	symbols := e.codec.Symbols()
	for _, code := range texttag.Codes() {
		name, _ := symbols.Tags.Name(byte(code))
		kind, _ := code.ParamKind()
		if _, err := fmt.Fprintf(e.stdout, "0x%02X  %-12s %s\n", byte(code), name, kind); err != nil {
			return err
		}
	}
	for _, group := range []struct {
		title  string
		lookup texttag.Lookup
	}{
		{"text", symbols.Texts},
		{"key", symbols.Keys},
	} {
		if _, err := fmt.Fprintf(e.stdout, "\n[%s]\n", group.title); err != nil {
			return err
		}
		for b := 0; b < 256; b++ {
			name, ok := group.lookup.Name(byte(b))
			if !ok {
				continue
			}
			if _, err := fmt.Fprintf(e.stdout, "0x%02X  %s\n", b, name); err != nil {
				return err
			}
		}
	}
	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return catalog.Unmarshal(data)
}

func saveCatalog(path string, cat *catalog.Catalog) error {
	data, err := catalog.Marshal(cat)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readRecords(path string) ([]catalog.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	records, err := catalog.ReadJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
