// Package catalog holds a table of packed strings and moves it to and from
// the editable text form used for translation.
package catalog

import (
	"bytes"
	"fmt"
	"strconv"

	texttag "github.com/starfederation/texttag-go"
	"github.com/zeebo/xxh3"
)

// Entry is one packed string.
type Entry struct {
	ID   string `cbor:"id"`
	Data []byte `cbor:"data"`
}

// Catalog is an ordered table of entries with unique IDs.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{index: make(map[string]int)}
}

// Add appends an entry. IDs must be non-empty and unique.
func (c *Catalog) Add(id string, data []byte) error {
	if id == "" {
		return fmt.Errorf("entry id is empty")
	}
	if _, dup := c.index[id]; dup {
		return fmt.Errorf("duplicate entry id %q", id)
	}
	c.index[id] = len(c.entries)
	c.entries = append(c.entries, Entry{ID: id, Data: append([]byte{}, data...)})
	return nil
}

// Get returns the packed bytes of id.
func (c *Catalog) Get(id string) ([]byte, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return c.entries[i].Data, true
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the entries in insertion order. The slice must not be
// modified.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Hash fingerprints packed bytes so an import can detect entries that
// changed after export.
func Hash(data []byte) string {
	return fmt.Sprintf("%016x", xxh3.Hash(data))
}

// Record is the editable form of an entry.
type Record struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Hash string `json:"hash,omitempty"`
}

// Export converts every entry to text form.
func (c *Catalog) Export(cd *texttag.Codec) ([]Record, error) {
	out := make([]Record, 0, len(c.entries))
	for _, e := range c.entries {
		text, err := cd.DecodeString(e.Data)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.ID, err)
		}
		out = append(out, Record{ID: e.ID, Text: text, Hash: Hash(e.Data)})
	}
	return out, nil
}

// ImportOptions controls Import.
type ImportOptions struct {
	// Force applies records whose hash no longer matches the entry.
	Force bool
}

// ImportReport counts what Import did with each record.
type ImportReport struct {
	Updated   int
	Unchanged int
	Stale     []string
	Unknown   []string
}

func (r ImportReport) String() string {
	return "updated=" + strconv.Itoa(r.Updated) +
		" unchanged=" + strconv.Itoa(r.Unchanged) +
		" stale=" + strconv.Itoa(len(r.Stale)) +
		" unknown=" + strconv.Itoa(len(r.Unknown))
}

// Import encodes records back into the catalog. Records for unknown IDs are
// skipped, as are records exported from bytes that have since changed
// unless opts.Force is set. Nothing is written if any record fails to
// encode.
func (c *Catalog) Import(cd *texttag.Codec, records []Record, opts ImportOptions) (ImportReport, error) {
	var report ImportReport
	staged := make(map[int][]byte, len(records))
	for _, rec := range records {
		i, ok := c.index[rec.ID]
		if !ok {
			report.Unknown = append(report.Unknown, rec.ID)
			continue
		}
		cur := c.entries[i].Data
		if rec.Hash != "" && rec.Hash != Hash(cur) && !opts.Force {
			report.Stale = append(report.Stale, rec.ID)
			continue
		}
		enc, err := cd.EncodeString(rec.Text)
		if err != nil {
			return ImportReport{}, fmt.Errorf("record %q: %w", rec.ID, err)
		}
		if bytes.Equal(enc, cur) {
			report.Unchanged++
			delete(staged, i)
			continue
		}
		staged[i] = enc
	}
	for i, enc := range staged {
		c.entries[i].Data = enc
	}
	report.Updated = len(staged)
	return report, nil
}
