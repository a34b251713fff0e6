package donation

import (
	"archive/zip"
	"fmt"
	"io"
	"maps"

	"github.com/tidwall/gjson"
)

// Extract decodes every classified entry and accumulates rows into one table
// per data type. Each row gains an "id" column and, when the entry carries
// one, a "timestamp" column.
//
// A metadata entry whose archive file is missing, whose body is not valid
// JSON, or whose decoder fails aborts the whole run: the classifier proved
// the entry existed, so any of these is a data-integrity fault. No guarantee
// is made about accumulated tables on error.
func Extract(zr *zip.Reader, meta []FileMetadata, specs []Spec) (map[string]*Table, error) {
	byName := make(map[string]Spec, len(specs))
	for _, spec := range specs {
		byName[spec.Name] = spec
	}
	entries := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		entries[f.Name] = f
	}

	builders := map[string]*Builder{}
	for _, m := range meta {
		spec, ok := byName[m.Platform]
		if !ok {
			return nil, fmt.Errorf("no spec registered for platform %q", m.Platform)
		}

		body, err := readEntry(entries, m.Name)
		if err != nil {
			return nil, err
		}
		if !gjson.ValidBytes(body) {
			return nil, fmt.Errorf("archive entry %q: invalid JSON", m.Name)
		}

		frags, err := spec.Decode(body)
		if err != nil {
			return nil, fmt.Errorf("archive entry %q: %w", m.Name, err)
		}

		for _, frag := range frags {
			b := builders[frag.Table]
			if b == nil {
				b = NewBuilder(frag.Table)
				builders[frag.Table] = b
			}

			columns := append([]string{}, frag.Columns...)
			columns = append(columns, "id")
			if m.Timestamp != "" {
				columns = append(columns, "timestamp")
			}

			rows := make([]Row, len(frag.Rows))
			for i, row := range frag.Rows {
				tagged := maps.Clone(row)
				tagged["id"] = m.ID
				if m.Timestamp != "" {
					tagged["timestamp"] = m.Timestamp
				}
				rows[i] = tagged
			}
			b.Append(columns, rows)
		}
	}

	tables := make(map[string]*Table, len(builders))
	for name, b := range builders {
		tables[name] = b.Finalize()
	}
	return tables, nil
}

func readEntry(entries map[string]*zip.File, name string) ([]byte, error) {
	entry, ok := entries[name]
	if !ok {
		return nil, fmt.Errorf("archive entry %q vanished between classification and extraction", name)
	}
	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open archive entry %q: %w", name, err)
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive entry %q: %w", name, err)
	}
	return body, nil
}
