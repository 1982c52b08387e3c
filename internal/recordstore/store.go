package recordstore

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/renameio/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Predicate selects records for UpdateWhere and ClearWhere.
type Predicate func(Record) bool

// Transform mutates a matched record in place. Changes to ID are discarded.
type Transform func(Record)

// Observer is notified after every store operation.
type Observer func(store, op string, elapsed time.Duration, err error)

type Option func(*Store)

// WithLogger replaces the default logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) { s.log = log }
}

func WithObserver(o Observer) Option {
	return func(s *Store) { s.observe = o }
}

// WithIDGenerator overrides UUID generation. Tests only.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// Store is a CSV file holding records of one schema. All operations are
// serialised by a per-store mutex held across the whole read-modify-write.
type Store struct {
	path    string
	schema  Schema
	log     logrus.FieldLogger
	observe Observer
	newID   func() string

	mu    sync.Mutex
	ready bool
}

// New returns a store for path. The file is created lazily by the first
// operation, or eagerly by EnsureInitialized.
func New(path string, schema Schema, opts ...Option) *Store {
	s := &Store{
		path:   path,
		schema: schema,
		log:    logrus.StandardLogger(),
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("store", schema.Name())
	return s
}

func (s *Store) Path() string   { return s.path }
func (s *Store) Schema() Schema { return s.schema }

// EnsureInitialized writes a header-only file when none exists. An existing
// file is left untouched.
func (s *Store) EnsureInitialized() (err error) {
	defer s.track("ensure", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLocked()
}

// List returns every non-blank record in file order.
func (s *Store) List() (records []Record, err error) {
	defer s.track("list", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLocked(); err != nil {
		return nil, err
	}
	return s.readLocked()
}

// Get returns the first record with the given ID.
func (s *Store) Get(id string) (Record, bool, error) {
	records, err := s.List()
	if err != nil {
		return nil, false, err
	}
	for _, r := range records {
		if r.ID() == id {
			return r, true, nil
		}
	}
	return nil, false, nil
}

// Append writes fields as a new last row and returns its fresh ID. Unknown
// keys are ignored and missing columns are written empty.
func (s *Store) Append(fields Record) (id string, err error) {
	defer s.track("append", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLocked(); err != nil {
		return "", err
	}

	rec := s.schema.normalize(fields)
	rec[IDColumn] = s.newID()

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_APPEND, 0)
	if err != nil {
		return "", storageFault("open", s.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", storageFault("stat", s.path, err)
	}

	var buf bytes.Buffer
	if info.Size() > 0 {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, info.Size()-1); err != nil {
			return "", storageFault("read", s.path, err)
		}
		if last[0] != '\n' {
			buf.WriteByte('\n')
		}
	}

	w := csv.NewWriter(&buf)
	if info.Size() == 0 {
		_ = w.Write(s.schema.columns)
	}
	_ = w.Write(s.schema.row(rec))
	w.Flush()
	if err := w.Error(); err != nil {
		return "", storageFault("encode", s.path, err)
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		return "", storageFault("append", s.path, err)
	}
	if err := f.Close(); err != nil {
		return "", storageFault("close", s.path, err)
	}

	s.log.WithField("id", rec.ID()).Debug("record appended")
	return rec.ID(), nil
}

// UpdateWhere applies transform to every record matching match and rewrites
// the file, even when nothing matched. It returns how many records changed.
func (s *Store) UpdateWhere(match Predicate, transform Transform) (n int, err error) {
	defer s.track("update", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLocked(); err != nil {
		return 0, err
	}

	records, err := s.readLocked()
	if err != nil {
		return 0, err
	}
	for i, r := range records {
		if !match(r) {
			continue
		}
		updated := r.Clone()
		transform(updated)
		updated = s.schema.normalize(updated)
		updated[IDColumn] = r.ID()
		records[i] = updated
		n++
	}

	if err := s.writeAllLocked(records); err != nil {
		return 0, err
	}
	s.log.WithField("updated", n).Debug("records updated")
	return n, nil
}

// DeleteByID removes every record carrying id and reports whether anything
// was removed.
func (s *Store) DeleteByID(id string) (removed bool, err error) {
	defer s.track("delete", time.Now(), &err)

	n, err := s.removeWhere(ByID(id))
	return n > 0, err
}

// ClearWhere removes every record matching match and returns the count.
func (s *Store) ClearWhere(match Predicate) (n int, err error) {
	defer s.track("clear", time.Now(), &err)

	return s.removeWhere(match)
}

// WriteTo copies the backing file to w.
func (s *Store) WriteTo(w io.Writer) (n int64, err error) {
	defer s.track("export", time.Now(), &err)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLocked(); err != nil {
		return 0, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return 0, storageFault("open", s.path, err)
	}
	defer f.Close()

	n, err = io.Copy(w, f)
	if err != nil {
		return n, storageFault("read", s.path, err)
	}
	return n, nil
}

func (s *Store) removeWhere(match Predicate) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLocked(); err != nil {
		return 0, err
	}

	records, err := s.readLocked()
	if err != nil {
		return 0, err
	}
	kept := records[:0]
	for _, r := range records {
		if !match(r) {
			kept = append(kept, r)
		}
	}
	removed := len(records) - len(kept)

	if err := s.writeAllLocked(kept); err != nil {
		return 0, err
	}
	s.log.WithField("removed", removed).Debug("records removed")
	return removed, nil
}

func (s *Store) ensureLocked() error {
	if s.ready {
		return nil
	}

	_, err := os.Stat(s.path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		if err := s.createLocked(); err != nil {
			return err
		}
	default:
		return storageFault("stat", s.path, err)
	}

	s.ready = true
	return nil
}

func (s *Store) createLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return storageFault("mkdir", filepath.Dir(s.path), err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return storageFault("create", s.path, err)
	}

	w := csv.NewWriter(f)
	_ = w.Write(s.schema.columns)
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return storageFault("write", s.path, err)
	}
	if err := f.Close(); err != nil {
		return storageFault("close", s.path, err)
	}

	s.log.WithField("path", s.path).Info("store initialized")
	return nil
}

func (s *Store) readLocked() ([]Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, storageFault("open", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records := []Record{}
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return records, nil
	}
	if err != nil {
		return nil, storageFault("read", s.path, err)
	}
	if len(header) > 0 {
		header[0] = trimBOM(header[0])
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, storageFault("read", s.path, err)
		}
		if blank(row) {
			continue
		}

		rec := make(Record, len(s.schema.columns))
		for _, col := range s.schema.columns {
			if i, ok := index[col]; ok && i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *Store) writeAllLocked(records []Record) error {
	pf, err := renameio.NewPendingFile(s.path, renameio.WithPermissions(0o644))
	if err != nil {
		return storageFault("create temp", s.path, err)
	}
	defer pf.Cleanup()

	w := csv.NewWriter(pf)
	_ = w.Write(s.schema.columns)
	for _, r := range records {
		_ = w.Write(s.schema.row(r))
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return storageFault("write", s.path, err)
	}

	if err := pf.CloseAtomicallyReplace(); err != nil {
		return storageFault("rename", s.path, err)
	}
	return nil
}

func (s *Store) track(op string, start time.Time, err *error) {
	if s.observe == nil {
		return
	}
	s.observe(s.schema.Name(), op, time.Since(start), *err)
}

func blank(row []string) bool {
	for _, field := range row {
		if field != "" {
			return false
		}
	}
	return true
}

func trimBOM(s string) string {
	const bom = "\uFEFF"
	if len(s) >= len(bom) && s[:len(bom)] == bom {
		return s[len(bom):]
	}
	return s
}
