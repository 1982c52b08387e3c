package recordstore

import (
	"errors"
	"fmt"
)

// IDColumn is the first column of every schema.
const IDColumn = "ID"

// Record maps column names to their string values.
type Record map[string]string

// Clone returns an independent copy of r.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ID returns the record's identifier.
func (r Record) ID() string { return r[IDColumn] }

// Schema is the ordered column list of a store.
type Schema struct {
	name    string
	columns []string
}

// NewSchema builds a schema whose first column is ID followed by columns.
func NewSchema(name string, columns ...string) (Schema, error) {
	if name == "" {
		return Schema{}, errors.New("recordstore: schema name is required")
	}
	cols := make([]string, 0, len(columns)+1)
	cols = append(cols, IDColumn)
	seen := map[string]struct{}{IDColumn: {}}
	for _, c := range columns {
		if c == "" {
			return Schema{}, fmt.Errorf("recordstore: schema %s has an empty column name", name)
		}
		if _, dup := seen[c]; dup {
			return Schema{}, fmt.Errorf("recordstore: schema %s repeats column %q", name, c)
		}
		seen[c] = struct{}{}
		cols = append(cols, c)
	}
	return Schema{name: name, columns: cols}, nil
}

// MustSchema is NewSchema for package-level schema declarations.
func MustSchema(name string, columns ...string) Schema {
	s, err := NewSchema(name, columns...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Schema) Name() string { return s.name }

// Columns returns a copy of the ordered column list, ID first.
func (s Schema) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Has reports whether column belongs to the schema.
func (s Schema) Has(column string) bool {
	for _, c := range s.columns {
		if c == column {
			return true
		}
	}
	return false
}

// normalize returns a record holding exactly the schema's columns.
func (s Schema) normalize(r Record) Record {
	out := make(Record, len(s.columns))
	for _, c := range s.columns {
		out[c] = r[c]
	}
	return out
}

func (s Schema) row(r Record) []string {
	row := make([]string, len(s.columns))
	for i, c := range s.columns {
		row[i] = r[c]
	}
	return row
}
