package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/minio/simdjson-go"
)

// WriteJSON writes records as an indented JSON array.
func WriteJSON(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// ReadJSON parses a JSON array of records. Unknown fields are ignored.
func ReadJSON(data []byte) ([]Record, error) {
	if !simdjson.SupportedCPU() {
		return readJSONStd(data)
	}
	parsed, err := simdjson.Parse(data, nil)
	if err != nil {
		return nil, err
	}
	it := parsed.Iter()
	if it.Advance() != simdjson.TypeRoot {
		return nil, fmt.Errorf("json root not found")
	}
	typ, root, err := it.Root(nil)
	if err != nil {
		return nil, err
	}
	if typ != simdjson.TypeArray {
		return nil, fmt.Errorf("json root is %v, want array", typ)
	}
	arr, err := root.Array(nil)
	if err != nil {
		return nil, err
	}
	var out []Record
	iter := arr.Iter()
	for {
		t := iter.Advance()
		if t == simdjson.TypeNone {
			break
		}
		if t != simdjson.TypeObject {
			return nil, fmt.Errorf("record %d is %v, want object", len(out), t)
		}
		obj, err := iter.Object(nil)
		if err != nil {
			return nil, err
		}
		var rec Record
		var fieldErr error
		err = obj.ForEach(func(key []byte, elem simdjson.Iter) {
			if fieldErr != nil {
				return
			}
			var dst *string
			switch string(key) {
			case "id":
				dst = &rec.ID
			case "text":
				dst = &rec.Text
			case "hash":
				dst = &rec.Hash
			default:
				return
			}
			// encoding/json leaves a string empty for null; match it.
			if elem.Type() == simdjson.TypeNull {
				*dst = ""
				return
			}
			if elem.Type() != simdjson.TypeString {
				fieldErr = fmt.Errorf("record %d: field %q is %v, want string", len(out), key, elem.Type())
				return
			}
			*dst, fieldErr = elem.String()
		}, nil)
		if err != nil {
			return nil, err
		}
		if fieldErr != nil {
			return nil, fieldErr
		}
		if err := checkRecord(len(out), rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func readJSONStd(data []byte) ([]Record, error) {
	var out []Record
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	for i, rec := range out {
		if err := checkRecord(i, rec); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func checkRecord(i int, rec Record) error {
	if rec.ID == "" {
		return fmt.Errorf("record %d: missing id", i)
	}
	return nil
}
