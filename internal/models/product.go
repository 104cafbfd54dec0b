// Package models provides data model definitions for the FloorMat CMS document.
package models

// Product represents one catalog entry.
type Product struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Category       string        `json:"category"` // free text, acts as a group key
	Description    string        `json:"description"`
	Image          string        `json:"image"`
	Specifications ProductSpecs  `json:"specifications"`
	Applications   []string      `json:"applications"`
	Price          string        `json:"price,omitempty"`
}

// ProductSpecs holds a product's physical specifications.
type ProductSpecs struct {
	Material  string   `json:"material"`
	Thickness string   `json:"thickness,omitempty"`
	Width     string   `json:"width,omitempty"`
	Colors    []string `json:"colors,omitempty"`
	Features  []string `json:"features,omitempty"`
}

// ProductPatch carries the fields an update may replace. Nil fields
// leave the existing value untouched (shallow merge).
type ProductPatch struct {
	Name           *string
	Category       *string
	Description    *string
	Image          *string
	Specifications *ProductSpecs
	Applications   *[]string
	Price          *string
}

// Apply merges the patch into p and returns the result. The ID is
// immutable and never patched.
func (patch ProductPatch) Apply(p Product) Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Specifications != nil {
		p.Specifications = patch.Specifications.clone()
	}
	if patch.Applications != nil {
		p.Applications = cloneStrings(*patch.Applications)
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	return p
}

func (p Product) clone() Product {
	p.Specifications = p.Specifications.clone()
	p.Applications = cloneStrings(p.Applications)
	return p
}

func (s ProductSpecs) clone() ProductSpecs {
	s.Colors = cloneStrings(s.Colors)
	s.Features = cloneStrings(s.Features)
	return s
}
