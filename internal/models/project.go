// Package models provides data model definitions for the FloorMat CMS document.
package models

// Project represents one installation case study.
type Project struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Location    string       `json:"location"`
	City        string       `json:"city"`
	District    string       `json:"district"`
	Year        int          `json:"year"`
	Images      []string     `json:"images"`
	Description string       `json:"description"`
	Tags        ProjectTags  `json:"tags"`
	Specs       ProjectSpecs `json:"specs"`
}

// ProjectTags groups the eight independent free-text label sets a
// project can be filtered by. Each set is unordered.
type ProjectTags struct {
	BuildingType     []string `json:"buildingType"`
	FloorMaterial    []string `json:"floorMaterial"`
	InstallationType []string `json:"installationType"`
	FramingType      []string `json:"framingType"`
	SurfaceMaterial  []string `json:"surfaceMaterial"`
	DrainageType     []string `json:"drainageType"`
	DesignFeature    []string `json:"designFeature"`
	Location         []string `json:"location"`
}

// ProjectSpecs holds optional free-text dimension fields.
type ProjectSpecs struct {
	Area   string `json:"area,omitempty"`
	Depth  string `json:"depth,omitempty"`
	Width  string `json:"width,omitempty"`
	Length string `json:"length,omitempty"`
}

// ProjectPatch carries the fields an update may replace. Nil fields
// leave the existing value untouched (shallow merge).
type ProjectPatch struct {
	Title       *string
	Location    *string
	City        *string
	District    *string
	Year        *int
	Images      *[]string
	Description *string
	Tags        *ProjectTags
	Specs       *ProjectSpecs
}

// Apply merges the patch into p and returns the result. The ID is
// immutable and never patched.
func (patch ProjectPatch) Apply(p Project) Project {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.City != nil {
		p.City = *patch.City
	}
	if patch.District != nil {
		p.District = *patch.District
	}
	if patch.Year != nil {
		p.Year = *patch.Year
	}
	if patch.Images != nil {
		p.Images = cloneStrings(*patch.Images)
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Tags != nil {
		p.Tags = patch.Tags.clone()
	}
	if patch.Specs != nil {
		p.Specs = *patch.Specs
	}
	return p
}

func (p Project) clone() Project {
	p.Images = cloneStrings(p.Images)
	p.Tags = p.Tags.clone()
	return p
}

func (t ProjectTags) clone() ProjectTags {
	t.BuildingType = cloneStrings(t.BuildingType)
	t.FloorMaterial = cloneStrings(t.FloorMaterial)
	t.InstallationType = cloneStrings(t.InstallationType)
	t.FramingType = cloneStrings(t.FramingType)
	t.SurfaceMaterial = cloneStrings(t.SurfaceMaterial)
	t.DrainageType = cloneStrings(t.DrainageType)
	t.DesignFeature = cloneStrings(t.DesignFeature)
	t.Location = cloneStrings(t.Location)
	return t
}
