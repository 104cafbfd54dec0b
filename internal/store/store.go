// Package store implements the CMS document store: seeding, the
// single write path with backup rotation, the entity mutation API,
// and export/import/reset/restore.
//
// The store is a single-operator tool. Mutations are serialized with
// a mutex inside one process; two processes pointed at the same data
// directory remain last-writer-wins at full-document granularity,
// which is a documented scope boundary.
package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	apperrors "github.com/yuhsien/floormat-cms/internal/errors"
	"github.com/yuhsien/floormat-cms/internal/kv"
	"github.com/yuhsien/floormat-cms/internal/logging"
	"github.com/yuhsien/floormat-cms/internal/models"
	"github.com/yuhsien/floormat-cms/internal/seed"
)

const (
	// MainKey is the key the live document is persisted under.
	MainKey = "cms-data"
	// BackupKey holds the document state one write-generation behind
	// MainKey (single-level undo).
	BackupKey = "cms-data-backup"
	// JournalKey holds the capped write journal.
	JournalKey = "cms-journal"
)

// Journal operation and entity names.
const (
	OpAdd     = "add"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpSeed    = "seed"
	OpImport  = "import"
	OpReset   = "reset"
	OpRestore = "restore"

	EntityProject  = "project"
	EntityProduct  = "product"
	EntityVideo    = "video"
	EntitySettings = "settings"
	EntityDocument = "document"
)

// Options are the policy knobs the admin panel left implicit.
type Options struct {
	// StrictUpdates makes update/delete of a missing entity id fail
	// with a NOT_FOUND error. Off by default: a missing id is a
	// silent no-op.
	StrictUpdates bool

	// ValidateOnWrite runs the structural validators before add and
	// update operations, rejecting invalid entities at the API
	// boundary. Off by default: validation is advisory and left to
	// callers.
	ValidateOnWrite bool

	// JournalLimit caps the persisted write journal. Zero means
	// DefaultJournalLimit.
	JournalLimit int
}

// DefaultJournalLimit caps the write journal when Options.JournalLimit
// is zero.
const DefaultJournalLimit = 200

// Store holds the live document and funnels every mutation through
// one write path.
type Store struct {
	mu   sync.Mutex
	kv   kv.Store
	doc  models.Document
	opts Options
}

// Open loads the persisted document from kvs, seeding the bundled
// defaults when the main key is absent or corrupt. Callers always
// receive a store holding a well-formed document.
func Open(kvs kv.Store, opts Options) (*Store, error) {
	s := &Store{kv: kvs, opts: opts}

	raw, ok, err := kvs.Get(MainKey)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, "failed to read document", err)
	}
	if ok {
		var doc models.Document
		if err := json.Unmarshal([]byte(raw), &doc); err == nil {
			s.doc = doc
			return s, nil
		}
		logging.Warn("persisted document is corrupt, reseeding", map[string]interface{}{
			"key": MainKey,
		})
	}

	s.doc = seed.Document()
	if err := s.write(s.doc, OpSeed, EntityDocument, ""); err != nil {
		return nil, err
	}
	logging.Info("seeded default document", map[string]interface{}{
		"projects": len(s.doc.Projects),
		"products": len(s.doc.Products),
	})
	return s, nil
}

// Document returns a copy of the live document. Mutating the copy
// never affects persisted state.
func (s *Store) Document() models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// write is the single write path used by every mutating operation:
// rotate the current main value into the backup slot, stamp the
// timestamp, persist, then record a journal entry.
// Callers must hold s.mu.
func (s *Store) write(doc models.Document, op, entity, entityID string) error {
	prev, ok, err := s.kv.Get(MainKey)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, "failed to read current document", err)
	}
	if ok {
		if err := s.kv.Set(BackupKey, prev); err != nil {
			return apperrors.Wrap(apperrors.ErrStorage, "failed to rotate backup", err)
		}
	}

	doc.LastUpdated = time.Now().UTC().Format(models.TimeLayout)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, "failed to serialize document", err)
	}
	if err := s.kv.Set(MainKey, string(data)); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, "failed to persist document", err)
	}

	s.doc = doc
	s.appendJournal(op, entity, entityID)
	return nil
}

// newEntityID mirrors the admin panel's time-based ids: millisecond
// wall clock, unique in practice for a single operator but not
// guaranteed.
func newEntityID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func validationError(entity string, msgs []string) error {
	return apperrors.New(apperrors.ErrValidation,
		fmt.Sprintf("invalid %s: %s", entity, strings.Join(msgs, "; ")))
}

// =====================================================
// Project Operations
// =====================================================

// AddProject appends p to the projects collection. A blank id is
// filled with a time-based id before the write.
func (s *Store) AddProject(p models.Project) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = newEntityID()
	}
	if s.opts.ValidateOnWrite {
		if msgs := models.ValidateProject(p); len(msgs) > 0 {
			return s.doc.Clone(), validationError(EntityProject, msgs)
		}
	}

	doc := s.doc.Clone()
	doc.Projects = append(doc.Projects, p)
	if err := s.write(doc, OpAdd, EntityProject, p.ID); err != nil {
		return s.doc.Clone(), err
	}
	return s.doc.Clone(), nil
}

// UpdateProject shallow-merges patch into the project with the given
// id. A missing id is a silent no-op unless strict updates are on;
// the document is still written through, since every save is
// unconditional.
func (s *Store) UpdateProject(id string, patch models.ProjectPatch) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.doc.Clone()
	idx := -1
	for i := range doc.Projects {
		if doc.Projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 && s.opts.StrictUpdates {
		return s.doc.Clone(), apperrors.New(apperrors.ErrNotFound,
			fmt.Sprintf("project %q not found", id))
	}
	if idx >= 0 {
		merged := patch.Apply(doc.Projects[idx])
		if s.opts.ValidateOnWrite {
			if msgs := models.ValidateProject(merged); len(msgs) > 0 {
				return s.doc.Clone(), validationError(EntityProject, msgs)
			}
		}
		doc.Projects[idx] = merged
	}

	if err := s.write(doc, OpUpdate, EntityProject, id); err != nil {
		return s.doc.Clone(), err
	}
	return s.doc.Clone(), nil
}

// DeleteProject removes the project with the given id. A missing id
// is a silent no-op unless strict updates are on.
func (s *Store) DeleteProject(id string) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.doc.Clone()
	kept := doc.Projects[:0]
	found := false
	for _, p := range doc.Projects {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found && s.opts.StrictUpdates {
		return s.doc.Clone(), apperrors.New(apperrors.ErrNotFound,
			fmt.Sprintf("project %q not found", id))
	}
	doc.Projects = kept

	if err := s.write(doc, OpDelete, EntityProject, id); err != nil {
		return s.doc.Clone(), err
	}
	return s.doc.Clone(), nil
}

// =====================================================
// Product Operations
// =====================================================

// AddProduct appends p to the products collection. A blank id is
// filled with a time-based id before the write.
func (s *Store) AddProduct(p models.Product) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = newEntityID()
	}
	if s.opts.ValidateOnWrite {
		if msgs := models.ValidateProduct(p); len(msgs) > 0 {
			return s.doc.Clone(), validationError(EntityProduct, msgs)
		}
	}

	doc := s.doc.Clone()
	doc.Products = append(doc.Products, p)
	if err := s.write(doc, OpAdd, EntityProduct, p.ID); err != nil {
		return s.doc.Clone(), err
	}
	return s.doc.Clone(), nil
}

// UpdateProduct shallow-merges patch into the product with the given
// id, with the same missing-id semantics as UpdateProject.
func (s *Store) UpdateProduct(id string, patch models.ProductPatch) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.doc.Clone()
	idx := -1
	for i := range doc.Products {
		if doc.Products[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 && s.opts.StrictUpdates {
		return s.doc.Clone(), apperrors.New(apperrors.ErrNotFound,
			fmt.Sprintf("product %q not found", id))
	}
	if idx >= 0 {
		merged := patch.Apply(doc.Products[idx])
		if s.opts.ValidateOnWrite {
			if msgs := models.ValidateProduct(merged); len(msgs) > 0 {
				return s.doc.Clone(), validationError(EntityProduct, msgs)
			}
		}
		doc.Products[idx] = merged
	}

	if err := s.write(doc, OpUpdate, EntityProduct, id); err != nil {
		return s.doc.Clone(), err
	}
	return s.doc.Clone(), nil
}

// DeleteProduct removes the product with the given id, with the same
// missing-id semantics as DeleteProject.
func (s *Store) DeleteProduct(id string) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.doc.Clone()
	kept := doc.Products[:0]
	found := false
	for _, p := range doc.Products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found && s.opts.StrictUpdates {
		return s.doc.Clone(), apperrors.New(apperrors.ErrNotFound,
			fmt.Sprintf("product %q not found", id))
	}
	doc.Products = kept

	if err := s.write(doc, OpDelete, EntityProduct, id); err != nil {
		return s.doc.Clone(), err
	}
	return s.doc.Clone(), nil
}

// =====================================================
// Video Operations
// =====================================================

// AddVideo appends v to the video collection. A blank id is filled
// with a time-based id before the write. Project/product references
// are not checked; a video may point at an id that no longer exists.
func (s *Store) AddVideo(v models.Video) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v.ID == "" {
		v.ID = newEntityID()
	}

	doc := s.doc.Clone()
	doc.YouTubeVideos = append(doc.YouTubeVideos, v)
	if err := s.write(doc, OpAdd, EntityVideo, v.ID); err != nil {
		return s.doc.Clone(), err
	}
	return s.doc.Clone(), nil
}

// UpdateVideo shallow-merges patch into the video with the given id,
// with the same missing-id semantics as UpdateProject.
func (s *Store) UpdateVideo(id string, patch models.VideoPatch) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.doc.Clone()
	idx := -1
	for i := range doc.YouTubeVideos {
		if doc.YouTubeVideos[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 && s.opts.StrictUpdates {
		return s.doc.Clone(), apperrors.New(apperrors.ErrNotFound,
			fmt.Sprintf("video %q not found", id))
	}
	if idx >= 0 {
		doc.YouTubeVideos[idx] = patch.Apply(doc.YouTubeVideos[idx])
	}

	if err := s.write(doc, OpUpdate, EntityVideo, id); err != nil {
		return s.doc.Clone(), err
	}
	return s.doc.Clone(), nil
}

// DeleteVideo removes the video with the given id, with the same
// missing-id semantics as DeleteProject.
func (s *Store) DeleteVideo(id string) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.doc.Clone()
	kept := doc.YouTubeVideos[:0]
	found := false
	for _, v := range doc.YouTubeVideos {
		if v.ID == id {
			found = true
			continue
		}
		kept = append(kept, v)
	}
	if !found && s.opts.StrictUpdates {
		return s.doc.Clone(), apperrors.New(apperrors.ErrNotFound,
			fmt.Sprintf("video %q not found", id))
	}
	doc.YouTubeVideos = kept

	if err := s.write(doc, OpDelete, EntityVideo, id); err != nil {
		return s.doc.Clone(), err
	}
	return s.doc.Clone(), nil
}

// =====================================================
// Settings
// =====================================================

// UpdateSettings replaces the singleton settings record.
func (s *Store) UpdateSettings(settings models.Settings) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.doc.Clone()
	doc.Settings = settings
	if err := s.write(doc, OpUpdate, EntitySettings, ""); err != nil {
		return s.doc.Clone(), err
	}
	return s.doc.Clone(), nil
}
