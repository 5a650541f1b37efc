// Package store owns the canonical ledger. Every mutation swaps in a fresh
// ledger value and hands the complete new state to the snapshot collaborator;
// no other package writes ledger state.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/acc-api/internal/models"
	"github.com/noah-isme/acc-api/pkg/snapshot"
)

// IDGenerator mints unique entity ids. The store only relies on uniqueness,
// not on any particular format.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator is the default id generator.
type UUIDGenerator struct{}

// NewID returns a random UUID string.
func (UUIDGenerator) NewID() string { return uuid.NewString() }

// Store is the sole mutator of canonical ledger state. Reads hand out deep
// copies; operations that reference a missing id are silent no-ops, reported
// only through their ok return.
type Store struct {
	mu        sync.RWMutex
	ledger    models.Ledger
	snapshots snapshot.Store
	ids       IDGenerator
	logger    *zap.Logger
	now       func() time.Time
}

// Option customises store construction.
type Option func(*Store)

// WithIDGenerator overrides the default UUID generator.
func WithIDGenerator(ids IDGenerator) Option {
	return func(s *Store) { s.ids = ids }
}

// WithClock overrides the wall clock; used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New loads the persisted snapshot, falling back to the seed ledger when the
// snapshot is absent or cannot be decoded, and returns a ready store.
func New(ctx context.Context, snapshots snapshot.Store, logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		snapshots: snapshots,
		ids:       UUIDGenerator{},
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	loaded, err := snapshots.Load(ctx)
	switch {
	case err != nil:
		logger.Warn("snapshot load failed, seeding default ledger", zap.Error(err))
		s.ledger = models.SeedLedger(s.now())
	case loaded == nil:
		logger.Info("no snapshot found, seeding default ledger")
		s.ledger = models.SeedLedger(s.now())
	default:
		s.ledger = *loaded
	}
	return s
}

// Ledger returns a deep copy of the full canonical state.
func (s *Store) Ledger() models.Ledger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.Clone()
}

// Courses returns copies of all live courses.
func (s *Store) Courses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Course, len(s.ledger.Courses))
	for i, c := range s.ledger.Courses {
		out[i] = c.Clone()
	}
	return out
}

// Course returns a copy of one live course.
func (s *Store) Course(id string) (models.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.ledger.CourseByID(id)
	if !ok {
		return models.Course{}, false
	}
	return c.Clone(), true
}

// Items returns copies of live graded items, optionally scoped to a course.
func (s *Store) Items(courseID string) []models.GradedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.GradedItem
	for _, item := range s.ledger.Items {
		if courseID != "" && item.CourseID != courseID {
			continue
		}
		out = append(out, item.Clone())
	}
	return out
}

// Item returns a copy of one live graded item.
func (s *Store) Item(id string) (models.GradedItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.ledger.ItemByID(id)
	if !ok {
		return models.GradedItem{}, false
	}
	return item.Clone(), true
}

// Trash returns copies of all trash records.
func (s *Store) Trash() []models.TrashRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TrashRecord, len(s.ledger.Trash))
	for i, t := range s.ledger.Trash {
		out[i] = t.Clone()
	}
	return out
}

// AddCourse appends a course under a freshly minted id.
func (s *Store) AddCourse(course models.Course) models.Course {
	s.mu.Lock()
	course = course.Clone()
	course.ID = s.ids.NewID()
	next := s.ledger.Clone()
	next.Courses = append(next.Courses, course)
	s.ledger = next
	s.mu.Unlock()

	s.persist()
	return course
}

// UpdateCourse merges patch fields into the course. Missing ids are no-ops.
func (s *Store) UpdateCourse(id string, patch models.CoursePatch) (models.Course, bool) {
	s.mu.Lock()
	next := s.ledger.Clone()
	var updated models.Course
	found := false
	for i, c := range next.Courses {
		if c.ID == id {
			next.Courses[i] = c.ApplyPatch(patch)
			updated = next.Courses[i].Clone()
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return models.Course{}, false
	}
	s.ledger = next
	s.mu.Unlock()

	s.persist()
	return updated, true
}

// DeleteCourse soft-deletes the course together with all of its graded items
// into a single trash record. The captured bundle is one consistent snapshot:
// no item of the course stays live and none is duplicated.
func (s *Store) DeleteCourse(id string) (models.TrashRecord, bool) {
	s.mu.Lock()
	course, ok := s.ledger.CourseByID(id)
	if !ok {
		s.mu.Unlock()
		return models.TrashRecord{}, false
	}

	next := s.ledger.Clone()
	kept := next.Courses[:0]
	for _, c := range next.Courses {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	next.Courses = kept

	var bundled []models.GradedItem
	liveItems := next.Items[:0]
	for _, item := range next.Items {
		if item.CourseID == id {
			bundled = append(bundled, item)
		} else {
			liveItems = append(liveItems, item)
		}
	}
	next.Items = liveItems

	record := models.TrashRecord{
		ID:        s.ids.NewID(),
		Kind:      models.TrashKindCourse,
		Course:    &models.CourseBundle{Course: course.Clone(), Items: bundled},
		DeletedAt: s.now(),
	}
	next.Trash = append(next.Trash, record)
	s.ledger = next
	s.mu.Unlock()

	s.persist()
	return record.Clone(), true
}

// AddItem appends a graded item under a freshly minted id. The item must
// reference a live course; otherwise the call is a no-op.
func (s *Store) AddItem(item models.GradedItem) (models.GradedItem, bool) {
	s.mu.Lock()
	if _, ok := s.ledger.CourseByID(item.CourseID); !ok {
		s.mu.Unlock()
		return models.GradedItem{}, false
	}
	item = item.Clone()
	item.ID = s.ids.NewID()
	next := s.ledger.Clone()
	next.Items = append(next.Items, item)
	s.ledger = next
	s.mu.Unlock()

	s.persist()
	return item, true
}

// UpdateItem merges patch fields into the graded item. Missing ids are no-ops.
func (s *Store) UpdateItem(id string, patch models.GradedItemPatch) (models.GradedItem, bool) {
	s.mu.Lock()
	next := s.ledger.Clone()
	var updated models.GradedItem
	found := false
	for i, item := range next.Items {
		if item.ID == id {
			next.Items[i] = item.ApplyPatch(patch)
			updated = next.Items[i].Clone()
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return models.GradedItem{}, false
	}
	s.ledger = next
	s.mu.Unlock()

	s.persist()
	return updated, true
}

// DeleteItem soft-deletes a single graded item into its own trash record.
func (s *Store) DeleteItem(id string) (models.TrashRecord, bool) {
	s.mu.Lock()
	item, ok := s.ledger.ItemByID(id)
	if !ok {
		s.mu.Unlock()
		return models.TrashRecord{}, false
	}

	next := s.ledger.Clone()
	kept := next.Items[:0]
	for _, it := range next.Items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	next.Items = kept

	captured := item.Clone()
	record := models.TrashRecord{
		ID:        s.ids.NewID(),
		Kind:      models.TrashKindGradedItem,
		Item:      &captured,
		DeletedAt: s.now(),
	}
	next.Trash = append(next.Trash, record)
	s.ledger = next
	s.mu.Unlock()

	s.persist()
	return record.Clone(), true
}

// Restore re-inserts a trash record's payload into the live collections with
// ids preserved exactly, then drops the record. Restoring an item whose
// course was separately deleted yields an orphaned item; the ledger tolerates
// that, display layers filter it.
func (s *Store) Restore(trashID string) bool {
	s.mu.Lock()
	record, ok := s.ledger.TrashByID(trashID)
	if !ok {
		s.mu.Unlock()
		return false
	}

	next := s.ledger.Clone()
	kept := next.Trash[:0]
	for _, t := range next.Trash {
		if t.ID != trashID {
			kept = append(kept, t)
		}
	}
	next.Trash = kept

	switch record.Kind {
	case models.TrashKindCourse:
		next.Courses = append(next.Courses, record.Course.Course.Clone())
		for _, item := range record.Course.Items {
			next.Items = append(next.Items, item.Clone())
		}
	case models.TrashKindGradedItem:
		next.Items = append(next.Items, record.Item.Clone())
	}
	s.ledger = next
	s.mu.Unlock()

	s.persist()
	return true
}

// EmptyTrash irrevocably clears all trash records.
func (s *Store) EmptyTrash() {
	s.mu.Lock()
	next := s.ledger.Clone()
	next.Trash = []models.TrashRecord{}
	s.ledger = next
	s.mu.Unlock()

	s.persist()
}

// ImportBatch appends one course and its items under fresh ids, rebinding
// each item to the new course id.
func (s *Store) ImportBatch(course models.Course, items []models.GradedItem) (models.Course, []models.GradedItem) {
	s.mu.Lock()
	course = course.Clone()
	course.ID = s.ids.NewID()

	imported := make([]models.GradedItem, len(items))
	for i, item := range items {
		item = item.Clone()
		item.ID = s.ids.NewID()
		item.CourseID = course.ID
		imported[i] = item
	}

	next := s.ledger.Clone()
	next.Courses = append(next.Courses, course)
	next.Items = append(next.Items, imported...)
	s.ledger = next
	s.mu.Unlock()

	s.persist()
	return course, imported
}

// ReplaceSnapshot swaps in a whole new ledger; used for backup restore. The
// payload is taken as-is beyond structural shape.
func (s *Store) ReplaceSnapshot(ledger models.Ledger) {
	s.mu.Lock()
	s.ledger = ledger.Clone()
	s.mu.Unlock()

	s.persist()
}

// SetTermWindow updates the term start/end timestamps.
func (s *Store) SetTermWindow(start, end *time.Time) {
	s.mu.Lock()
	next := s.ledger.Clone()
	next.TermStart = start
	next.TermEnd = end
	s.ledger = next
	s.mu.Unlock()

	s.persist()
}

// persist hands the current state to the snapshot collaborator. Failures are
// logged and dropped: the in-memory ledger stays the source of truth and the
// mutation is never rolled back.
func (s *Store) persist() {
	ledger := s.Ledger()
	if err := s.snapshots.Save(context.Background(), ledger); err != nil {
		s.logger.Error("snapshot save failed, keeping in-memory state", zap.Error(err))
	}
}
