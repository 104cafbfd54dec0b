// Package store implements the CMS document store.
package store

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"time"

	apperrors "github.com/yuhsien/floormat-cms/internal/errors"
	"github.com/yuhsien/floormat-cms/internal/logging"
	"github.com/yuhsien/floormat-cms/internal/models"
	"github.com/yuhsien/floormat-cms/internal/seed"
)

// ExportFilename is the suggested filename for exported documents.
const ExportFilename = "cms-data.json"

// ExportResult describes a completed file export.
type ExportResult struct {
	Path       string
	SizeBytes  int64
	Checksum   string // SHA-256 of the exported JSON
	ExportedAt time.Time
}

// Export returns the live document as pretty-printed JSON, the exact
// bytes a file export ships.
func (s *Store) Export() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrStorage, "failed to serialize document", err)
	}
	return string(data), nil
}

// ExportToFile writes the exported document to path (ExportFilename
// in the working directory when path is empty).
func (s *Store) ExportToFile(path string) (*ExportResult, error) {
	text, err := s.Export()
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = ExportFilename
	}

	data := []byte(text)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, "failed to write export file", err)
	}

	result := &ExportResult{
		Path:       path,
		SizeBytes:  int64(len(data)),
		Checksum:   fmt.Sprintf("%x", sha256.Sum256(data)),
		ExportedAt: time.Now(),
	}
	logging.Info("exported document", map[string]interface{}{
		"path":     result.Path,
		"bytes":    result.SizeBytes,
		"checksum": result.Checksum,
	})
	return result, nil
}

// Import parses jsonText as a full replacement document and persists
// it through the write path. It fails with a PARSE_ERROR for text
// that is not JSON, and an INVALID_STRUCTURE error for JSON lacking
// the mandatory projects/products collections. On failure the live
// document is untouched.
func (s *Store) Import(jsonText string) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw := []byte(jsonText)
	if !json.Valid(raw) {
		return s.doc.Clone(), apperrors.New(apperrors.ErrParse, "import data is not valid JSON")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return s.doc.Clone(), apperrors.New(apperrors.ErrStructure, "import root is not an object")
	}
	for _, name := range []string{"projects", "products"} {
		msg, ok := fields[name]
		if !ok {
			return s.doc.Clone(), apperrors.New(apperrors.ErrStructure,
				fmt.Sprintf("missing mandatory %q collection", name))
		}
		var arr []json.RawMessage
		if err := json.Unmarshal(msg, &arr); err != nil {
			return s.doc.Clone(), apperrors.New(apperrors.ErrStructure,
				fmt.Sprintf("%q is not an array", name))
		}
	}

	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return s.doc.Clone(), apperrors.Wrap(apperrors.ErrStructure, "import does not match the document shape", err)
	}
	if doc.Version == "" {
		doc.Version = models.SchemaVersion
	}

	if err := s.write(doc, OpImport, EntityDocument, ""); err != nil {
		return s.doc.Clone(), err
	}
	logging.Info("imported document", map[string]interface{}{
		"projects": len(s.doc.Projects),
		"products": len(s.doc.Products),
	})
	return s.doc.Clone(), nil
}

// Reset discards both the main and backup slots and re-seeds the
// bundled defaults. The backup slot stays empty until the next
// mutation.
func (s *Store) Reset() (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Remove(MainKey); err != nil {
		return s.doc.Clone(), apperrors.Wrap(apperrors.ErrStorage, "failed to clear document", err)
	}
	if err := s.kv.Remove(BackupKey); err != nil {
		return s.doc.Clone(), apperrors.Wrap(apperrors.ErrStorage, "failed to clear backup", err)
	}

	doc := seed.Document()
	if err := s.write(doc, OpReset, EntityDocument, ""); err != nil {
		return s.doc.Clone(), err
	}
	logging.Info("reset document to seed content")
	return s.doc.Clone(), nil
}

// RestoreBackup promotes the backup slot to the live document and
// returns it. An absent backup returns (nil, nil) without modifying
// anything; that is an expected steady state, not an error.
func (s *Store) RestoreBackup() (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.kv.Get(BackupKey)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, "failed to read backup", err)
	}
	if !ok {
		return nil, nil
	}

	var doc models.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrParse, "backup document is corrupt", err)
	}

	// The backup is copied verbatim; its timestamp is preserved.
	if err := s.kv.Set(MainKey, raw); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, "failed to restore backup", err)
	}
	s.doc = doc
	s.appendJournal(OpRestore, EntityDocument, "")
	logging.Info("restored backup document")

	restored := doc.Clone()
	return &restored, nil
}
