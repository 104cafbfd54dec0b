// Package store tests for export/import/reset/restore.
package store

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	apperrors "github.com/yuhsien/floormat-cms/internal/errors"
	"github.com/yuhsien/floormat-cms/internal/kv"
	"github.com/yuhsien/floormat-cms/internal/seed"
)

// =====================================================
// Export Tests
// =====================================================

// TestExport_prettyPrinted verifies the export is indented JSON of
// the live document.
func TestExport_prettyPrinted(t *testing.T) {
	s, _ := openTestStore(t)

	text, err := s.Export()
	if err != nil {
		t.Fatalf("Export() failed: %v", err)
	}
	if !strings.Contains(text, "\n  \"projects\"") {
		t.Error("export is not pretty-printed with 2-space indent")
	}
	if !json.Valid([]byte(text)) {
		t.Error("export is not valid JSON")
	}
}

// TestExportToFile verifies the file write, size, and checksum.
func TestExportToFile(t *testing.T) {
	s, _ := openTestStore(t)
	path := filepath.Join(t.TempDir(), ExportFilename)

	result, err := s.ExportToFile(path)
	if err != nil {
		t.Fatalf("ExportToFile() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export file failed: %v", err)
	}
	if result.SizeBytes != int64(len(data)) {
		t.Errorf("SizeBytes = %d, want %d", result.SizeBytes, len(data))
	}
	if want := fmt.Sprintf("%x", sha256.Sum256(data)); result.Checksum != want {
		t.Errorf("Checksum = %s, want %s", result.Checksum, want)
	}
}

// TestExportImport_roundTrip verifies importing an export yields a
// document with identical content.
func TestExportImport_roundTrip(t *testing.T) {
	s, _ := openTestStore(t)
	if _, err := s.AddProject(testProject("p1")); err != nil {
		t.Fatalf("AddProject() failed: %v", err)
	}
	before := s.Document()

	text, err := s.Export()
	if err != nil {
		t.Fatalf("Export() failed: %v", err)
	}

	// Import into a fresh store to prove the file alone carries the
	// full state.
	other, err := Open(kv.NewMemoryStore(), Options{})
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	imported, err := other.Import(text)
	if err != nil {
		t.Fatalf("Import() failed: %v", err)
	}

	if !reflect.DeepEqual(imported.Projects, before.Projects) {
		t.Error("imported projects differ from exported state")
	}
	if !reflect.DeepEqual(imported.Products, before.Products) {
		t.Error("imported products differ from exported state")
	}
	if !reflect.DeepEqual(imported.YouTubeVideos, before.YouTubeVideos) {
		t.Error("imported videos differ from exported state")
	}
	if imported.Settings != before.Settings {
		t.Error("imported settings differ from exported state")
	}
	if imported.Version != before.Version {
		t.Errorf("imported version = %q, want %q", imported.Version, before.Version)
	}
}

// =====================================================
// Import Tests
// =====================================================

// TestImport_rejectsInvalidJSON verifies non-JSON input fails with a
// parse error and alters nothing.
func TestImport_rejectsInvalidJSON(t *testing.T) {
	s, m := openTestStore(t)
	persisted, _, _ := m.Get(MainKey)

	_, err := s.Import("{definitely not json")
	if !apperrors.Is(err, apperrors.ErrParse) {
		t.Errorf("Import() = %v, want PARSE_ERROR", err)
	}

	after, _, _ := m.Get(MainKey)
	if after != persisted {
		t.Error("failed import altered the persisted document")
	}
}

// TestImport_rejectsMalformedStructure verifies valid JSON without
// the mandatory collections fails with a structural error, distinct
// from the parse error, and alters nothing.
func TestImport_rejectsMalformedStructure(t *testing.T) {
	s, m := openTestStore(t)
	persisted, _, _ := m.Get(MainKey)

	cases := []struct {
		name  string
		input string
	}{
		{"missing both collections", `{"foo": 1}`},
		{"missing products", `{"projects": []}`},
		{"projects not an array", `{"projects": {}, "products": []}`},
		{"root not an object", `[1, 2, 3]`},
	}
	for _, tc := range cases {
		_, err := s.Import(tc.input)
		if !apperrors.Is(err, apperrors.ErrStructure) {
			t.Errorf("%s: Import() = %v, want INVALID_STRUCTURE", tc.name, err)
		}
		if apperrors.Is(err, apperrors.ErrParse) {
			t.Errorf("%s: structural failure reported as parse failure", tc.name)
		}
	}

	after, _, _ := m.Get(MainKey)
	if after != persisted {
		t.Error("failed imports altered the persisted document")
	}
}

// TestImport_minimalDocument verifies an object carrying just the two
// mandatory collections is accepted as a full replacement.
func TestImport_minimalDocument(t *testing.T) {
	s, _ := openTestStore(t)

	doc, err := s.Import(`{"projects": [], "products": []}`)
	if err != nil {
		t.Fatalf("Import() failed: %v", err)
	}
	if len(doc.Projects) != 0 || len(doc.Products) != 0 {
		t.Errorf("import was merged, not replaced: %d projects, %d products",
			len(doc.Projects), len(doc.Products))
	}
	if doc.Version == "" {
		t.Error("import did not default the schema version")
	}
	if doc.LastUpdated == "" {
		t.Error("import did not stamp LastUpdated")
	}
}

// =====================================================
// Reset Tests
// =====================================================

// TestReset_clearsBothSlots verifies reset discards the backup and
// reproduces the seed content.
func TestReset_clearsBothSlots(t *testing.T) {
	s, m := openTestStore(t)
	if _, err := s.AddProject(testProject("p1")); err != nil {
		t.Fatalf("AddProject() failed: %v", err)
	}

	doc, err := s.Reset()
	if err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	restored, err := s.RestoreBackup()
	if err != nil {
		t.Fatalf("RestoreBackup() failed: %v", err)
	}
	if restored != nil {
		t.Error("backup still present after Reset()")
	}
	if _, ok, _ := m.Get(BackupKey); ok {
		t.Error("backup key still stored after Reset()")
	}

	if len(doc.Projects) != len(seed.Projects()) {
		t.Errorf("Projects = %d after reset, want seed content", len(doc.Projects))
	}
	for i, p := range doc.Projects {
		if p.ID != seed.Projects()[i].ID {
			t.Errorf("Projects[%d].ID = %q, want %q", i, p.ID, seed.Projects()[i].ID)
		}
	}

	// A subsequent Open sees the reseeded document.
	reopened, err := Open(m, Options{})
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if !reflect.DeepEqual(reopened.Document(), s.Document()) {
		t.Error("reopened document differs from reset state")
	}
}

// =====================================================
// Restore Tests
// =====================================================

// TestRestoreBackup_absent verifies an absent backup returns
// (nil, nil) and modifies nothing.
func TestRestoreBackup_absent(t *testing.T) {
	s, m := openTestStore(t)
	before := s.Document()
	persisted, _, _ := m.Get(MainKey)

	restored, err := s.RestoreBackup()
	if err != nil {
		t.Fatalf("RestoreBackup() failed: %v", err)
	}
	if restored != nil {
		t.Errorf("RestoreBackup() = %+v, want nil for absent backup", restored)
	}

	if !reflect.DeepEqual(s.Document(), before) {
		t.Error("RestoreBackup() of absent backup modified the document")
	}
	if after, _, _ := m.Get(MainKey); after != persisted {
		t.Error("RestoreBackup() of absent backup modified the main slot")
	}
}

// TestRestoreBackup_promotesBackup verifies the backup becomes the
// live state in memory and in the main slot.
func TestRestoreBackup_promotesBackup(t *testing.T) {
	s, m := openTestStore(t)

	afterM1, err := s.AddProject(testProject("p1"))
	if err != nil {
		t.Fatalf("AddProject(p1) failed: %v", err)
	}
	if _, err := s.DeleteProject("p1"); err != nil {
		t.Fatalf("DeleteProject(p1) failed: %v", err)
	}

	restored, err := s.RestoreBackup()
	if err != nil {
		t.Fatalf("RestoreBackup() failed: %v", err)
	}
	if restored == nil {
		t.Fatal("RestoreBackup() returned absent")
	}
	if !reflect.DeepEqual(restored.Projects, afterM1.Projects) {
		t.Error("restored document is not the pre-delete state")
	}
	if !reflect.DeepEqual(s.Document().Projects, afterM1.Projects) {
		t.Error("live document was not updated by RestoreBackup()")
	}

	main, _, _ := m.Get(MainKey)
	backup, _, _ := m.Get(BackupKey)
	if main != backup {
		t.Error("main slot does not hold the promoted backup verbatim")
	}
}
