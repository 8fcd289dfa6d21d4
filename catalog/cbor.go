package catalog

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

const snapshotVersion = 1

// encMode writes Core Deterministic Encoding so equal catalogs produce
// identical snapshots.
var encMode cbor.EncMode

var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("catalog: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("catalog: CBOR decoder initialization failed: " + err.Error())
	}
}

type snapshot struct {
	Version int     `cbor:"v"`
	Entries []Entry `cbor:"entries"`
}

// Marshal encodes c as a CBOR snapshot.
func Marshal(c *Catalog) ([]byte, error) {
	entries := c.entries
	if entries == nil {
		entries = []Entry{}
	}
	return encMode.Marshal(snapshot{Version: snapshotVersion, Entries: entries})
}

// Unmarshal decodes a snapshot written by Marshal.
func Unmarshal(data []byte) (*Catalog, error) {
	var s snapshot
	if err := decMode.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported catalog version %d", s.Version)
	}
	c := New()
	for _, e := range s.Entries {
		if err := c.Add(e.ID, e.Data); err != nil {
			return nil, err
		}
	}
	return c, nil
}
