package document

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/school"
)

// DefaultKey is the key every document is stored under.
const DefaultKey = "mockData"

var newID = func() string { return uuid.New().String() }

// Store owns the dataset. Every mutation reads, modifies and writes back the whole document.
type Store struct {
	mu      sync.Mutex
	backend Backend
	log     core.Logger
	key     string
	loc     *time.Location
	seed    func() school.Document
}

type Option func(*Store)

// WithKey stores the document under `key`.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLocation sets the location calendar dates are compared in.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithSeed replaces the default dataset.
func WithSeed(seed func() school.Document) Option {
	return func(s *Store) {
		if seed != nil {
			s.seed = seed
		}
	}
}

func NewStore(backend Backend, log core.Logger, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		log:     log,
		key:     DefaultKey,
		loc:     time.Local,
		seed:    Seed,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Key() string              { return s.key }
func (s *Store) Location() *time.Location { return s.loc }

// Load returns the persisted document, or the default dataset when nothing usable is stored.
func (s *Store) Load(ctx context.Context) (school.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Replace persists `doc` as the whole dataset.
func (s *Store) Replace(ctx context.Context, doc school.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replace(ctx, doc)
}

// Initialize persists the default dataset if nothing is stored yet, and reports whether it did.
func (s *Store) Initialize(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.backend.Get(ctx, s.key)
	switch {
	case err == nil:
		return false, nil
	case errors.Cause(err) != ErrNotFound:
		return false, errors.Wrap(err, "reading document")
	}
	if err := s.replace(ctx, s.seed()); err != nil {
		return false, err
	}
	return true, nil
}

// Reset overwrites the stored dataset with the default one.
func (s *Store) Reset(ctx context.Context) error {
	return s.Replace(ctx, s.seed())
}

// UpsertAttendance replaces the records sharing a course, student and calendar date
// with the incoming ones. Within `records`, the last record for a key wins.
func (s *Store) UpsertAttendance(ctx context.Context, records []school.AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}
	return s.mutate(ctx, func(doc *school.Document) {
		idx := make(map[school.AttendanceKey]int, len(records))
		incoming := make([]school.AttendanceRecord, 0, len(records))
		for _, rec := range records {
			if rec.ID == "" {
				rec.ID = newID()
			}
			k := rec.Key(s.loc)
			if i, ok := idx[k]; ok {
				incoming[i] = rec
				continue
			}
			idx[k] = len(incoming)
			incoming = append(incoming, rec)
		}

		kept := make([]school.AttendanceRecord, 0, len(doc.Attendance)+len(incoming))
		for _, rec := range doc.Attendance {
			if _, ok := idx[rec.Key(s.loc)]; !ok {
				kept = append(kept, rec)
			}
		}
		doc.Attendance = append(kept, incoming...)
	})
}

// UpsertResults replaces the results sharing an assessment and student with the incoming ones.
// Within `results`, the last result for a key wins.
func (s *Store) UpsertResults(ctx context.Context, results []school.Result) error {
	if len(results) == 0 {
		return nil
	}
	return s.mutate(ctx, func(doc *school.Document) {
		idx := make(map[school.ResultKey]int, len(results))
		incoming := make([]school.Result, 0, len(results))
		for _, res := range results {
			k := res.Key()
			if i, ok := idx[k]; ok {
				incoming[i] = res
				continue
			}
			idx[k] = len(incoming)
			incoming = append(incoming, res)
		}

		kept := make([]school.Result, 0, len(doc.Results)+len(incoming))
		for _, res := range doc.Results {
			if _, ok := idx[res.Key()]; !ok {
				kept = append(kept, res)
			}
		}
		doc.Results = append(kept, incoming...)
	})
}

// UpsertAssessment replaces the assessment with the same ID, or appends it.
// An assessment without ID is given one.
func (s *Store) UpsertAssessment(ctx context.Context, a school.Assessment) (school.Assessment, error) {
	if a.ID == "" {
		a.ID = newID()
	}
	err := s.mutate(ctx, func(doc *school.Document) {
		for i := range doc.Assessments {
			if doc.Assessments[i].ID == a.ID {
				doc.Assessments[i] = a
				return
			}
		}
		doc.Assessments = append(doc.Assessments, a)
	})
	if err != nil {
		return school.Assessment{}, err
	}
	return a, nil
}

// UpdateUser replaces the stored user with the same ID.
func (s *Store) UpdateUser(ctx context.Context, usr school.User) error {
	var found bool
	err := s.mutate(ctx, func(doc *school.Document) {
		for i := range doc.Users {
			if doc.Users[i].ID == usr.ID {
				doc.Users[i] = usr
				found = true
				return
			}
		}
	})
	if err != nil {
		return err
	}
	if !found {
		return errors.Wrapf(ErrNotFound, "user %s", usr.ID)
	}
	return nil
}

// mutate applies fn to a freshly loaded document and persists the result.
// The mutated copy is dropped if persisting fails.
func (s *Store) mutate(ctx context.Context, fn func(doc *school.Document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	doc = doc.Clone()
	fn(&doc)
	return s.replace(ctx, doc)
}

func (s *Store) load(ctx context.Context) (school.Document, error) {
	data, err := s.backend.Get(ctx, s.key)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return s.seed(), nil
		}
		return school.Document{}, errors.Wrap(err, "reading document")
	}

	var doc school.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Error("malformed document, falling back to defaults", err, map[string]interface{}{"key": s.key})
		return s.seed(), nil
	}
	if doc.Version == 0 {
		doc.Version = school.DocumentVersion
	}
	return doc, nil
}

func (s *Store) replace(ctx context.Context, doc school.Document) error {
	if doc.Version == 0 {
		doc.Version = school.DocumentVersion
	}
	data, err := json.Marshal(utcDates(doc))
	if err != nil {
		return errors.Wrap(err, "encoding document")
	}
	if err := s.backend.Set(ctx, s.key, data); err != nil {
		ioErr := &IOError{Key: s.key, Err: err}
		s.log.Error("document write rejected", ioErr)
		return ioErr
	}
	return nil
}

// utcDates returns a copy of `doc` with its dates in UTC, the zone they are read back in.
func utcDates(doc school.Document) school.Document {
	doc = doc.Clone()
	for i := range doc.Assessments {
		doc.Assessments[i].Date = doc.Assessments[i].Date.UTC()
	}
	for i := range doc.Attendance {
		doc.Attendance[i].Date = doc.Attendance[i].Date.UTC()
	}
	return doc
}
