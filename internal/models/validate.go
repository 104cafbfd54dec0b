// Package models provides data model definitions for the FloorMat CMS document.
package models

import (
	"fmt"
	"strings"
	"time"
)

// MinProjectYear is the earliest year accepted for a project.
const MinProjectYear = 2000

// ValidateProject checks p structurally and returns one message per
// problem. An empty slice means valid. Validation is advisory: it
// never blocks a write unless the store is configured to enforce it.
func ValidateProject(p Project) []string {
	var errs []string
	if strings.TrimSpace(p.ID) == "" {
		errs = append(errs, "id is required")
	}
	if strings.TrimSpace(p.Title) == "" {
		errs = append(errs, "title is required")
	}
	if strings.TrimSpace(p.Location) == "" {
		errs = append(errs, "location is required")
	}
	if strings.TrimSpace(p.City) == "" {
		errs = append(errs, "city is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		errs = append(errs, "description is required")
	}
	if maxYear := time.Now().Year(); p.Year < MinProjectYear || p.Year > maxYear {
		errs = append(errs, fmt.Sprintf("year must be between %d and %d", MinProjectYear, maxYear))
	}
	if len(p.Images) == 0 {
		errs = append(errs, "at least one image is required")
	}
	return errs
}

// ValidateProduct checks p structurally and returns one message per
// problem. An empty slice means valid.
func ValidateProduct(p Product) []string {
	var errs []string
	if strings.TrimSpace(p.ID) == "" {
		errs = append(errs, "id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(p.Category) == "" {
		errs = append(errs, "category is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		errs = append(errs, "description is required")
	}
	if strings.TrimSpace(p.Image) == "" {
		errs = append(errs, "image is required")
	}
	return errs
}
