// Package models tests for the structural validators.
package models

import (
	"strings"
	"testing"
	"time"
)

// TestValidateProject_valid verifies a complete project passes.
func TestValidateProject_valid(t *testing.T) {
	if errs := ValidateProject(sampleProject()); len(errs) != 0 {
		t.Errorf("ValidateProject() = %v, want no errors", errs)
	}
}

// TestValidateProject_missingFields verifies one message per missing
// mandatory field.
func TestValidateProject_missingFields(t *testing.T) {
	errs := ValidateProject(Project{Year: 2023})

	want := []string{"id", "title", "location", "city", "description", "image"}
	if len(errs) != len(want) {
		t.Fatalf("ValidateProject() returned %d errors, want %d: %v", len(errs), len(want), errs)
	}
	for i, fragment := range want {
		if !strings.Contains(errs[i], fragment) {
			t.Errorf("errs[%d] = %q, want mention of %q", i, errs[i], fragment)
		}
	}
}

// TestValidateProject_yearBounds verifies the [2000, current year]
// window.
func TestValidateProject_yearBounds(t *testing.T) {
	p := sampleProject()

	p.Year = 1999
	if errs := ValidateProject(p); len(errs) != 1 || !strings.Contains(errs[0], "year") {
		t.Errorf("year 1999: errs = %v, want one year error", errs)
	}

	p.Year = time.Now().Year() + 1
	if errs := ValidateProject(p); len(errs) != 1 || !strings.Contains(errs[0], "year") {
		t.Errorf("future year: errs = %v, want one year error", errs)
	}

	p.Year = MinProjectYear
	if errs := ValidateProject(p); len(errs) != 0 {
		t.Errorf("year %d: errs = %v, want none", MinProjectYear, errs)
	}

	p.Year = time.Now().Year()
	if errs := ValidateProject(p); len(errs) != 0 {
		t.Errorf("current year: errs = %v, want none", errs)
	}
}

// TestValidateProject_emptyImages verifies the images check flags an
// empty sequence.
func TestValidateProject_emptyImages(t *testing.T) {
	p := sampleProject()
	p.Images = nil

	errs := ValidateProject(p)
	if len(errs) != 1 || !strings.Contains(errs[0], "image") {
		t.Errorf("ValidateProject() = %v, want one image error", errs)
	}
}

// TestValidateProject_whitespaceOnly verifies whitespace-only fields
// count as empty.
func TestValidateProject_whitespaceOnly(t *testing.T) {
	p := sampleProject()
	p.Title = "   "

	errs := ValidateProject(p)
	if len(errs) != 1 || !strings.Contains(errs[0], "title") {
		t.Errorf("ValidateProject() = %v, want one title error", errs)
	}
}

// TestValidateProduct_valid verifies a complete product passes.
func TestValidateProduct_valid(t *testing.T) {
	if errs := ValidateProduct(sampleProduct()); len(errs) != 0 {
		t.Errorf("ValidateProduct() = %v, want no errors", errs)
	}
}

// TestValidateProduct_missingFields verifies one message per missing
// mandatory field.
func TestValidateProduct_missingFields(t *testing.T) {
	errs := ValidateProduct(Product{})

	want := []string{"id", "name", "category", "description", "image"}
	if len(errs) != len(want) {
		t.Fatalf("ValidateProduct() returned %d errors, want %d: %v", len(errs), len(want), errs)
	}
	for i, fragment := range want {
		if !strings.Contains(errs[i], fragment) {
			t.Errorf("errs[%d] = %q, want mention of %q", i, errs[i], fragment)
		}
	}
}
