// Package models provides data model definitions for the FloorMat CMS document.
package models

import "time"

// SchemaVersion is the document schema version stamped on freshly
// seeded documents. The field is informational; no migration is keyed
// off it.
const SchemaVersion = "1.0.0"

// TimeLayout is the timestamp format used for Document.LastUpdated.
const TimeLayout = time.RFC3339Nano

// Document is the single persisted aggregate holding all CMS-managed
// content. Collection order is display order on the listing pages.
type Document struct {
	LastUpdated   string    `json:"lastUpdated"`
	Version       string    `json:"version"`
	Projects      []Project `json:"projects"`
	Products      []Product `json:"products"`
	YouTubeVideos []Video   `json:"youtubeVideos"`
	Settings      Settings  `json:"settings"`
}

// Settings is the singleton site-wide configuration record.
type Settings struct {
	SiteName      string `json:"siteName"`
	Tagline       string `json:"tagline,omitempty"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	BusinessHours string `json:"businessHours,omitempty"`
	FacebookURL   string `json:"facebookUrl,omitempty"`
	LineID        string `json:"lineId,omitempty"`
}

// LastUpdatedTime parses LastUpdated. Returns the zero time when the
// field is empty or malformed.
func (d *Document) LastUpdatedTime() time.Time {
	t, err := time.Parse(TimeLayout, d.LastUpdated)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Clone returns a copy of the document whose collections do not alias
// the receiver's backing arrays. Nested string sets are copied too, so
// callers can hold the result without observing later mutations.
func (d Document) Clone() Document {
	out := d
	if d.Projects != nil {
		out.Projects = make([]Project, len(d.Projects))
		for i, p := range d.Projects {
			out.Projects[i] = p.clone()
		}
	}
	if d.Products != nil {
		out.Products = make([]Product, len(d.Products))
		for i, p := range d.Products {
			out.Products[i] = p.clone()
		}
	}
	if d.YouTubeVideos != nil {
		out.YouTubeVideos = append([]Video(nil), d.YouTubeVideos...)
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
