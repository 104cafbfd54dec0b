// Package models provides data model definitions for the FloorMat CMS document.
package models

// Video references an externally hosted video. Only the platform ID
// and metadata are stored, never video data. ProjectID/ProductID are
// plain string references; nothing enforces that the target exists.
type Video struct {
	ID          string `json:"id"`
	YouTubeID   string `json:"youtubeId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ProjectID   string `json:"projectId,omitempty"`
	ProductID   string `json:"productId,omitempty"`
}

// VideoPatch carries the fields an update may replace. Nil fields
// leave the existing value untouched.
type VideoPatch struct {
	YouTubeID   *string
	Title       *string
	Description *string
	ProjectID   *string
	ProductID   *string
}

// Apply merges the patch into v and returns the result.
func (patch VideoPatch) Apply(v Video) Video {
	if patch.YouTubeID != nil {
		v.YouTubeID = *patch.YouTubeID
	}
	if patch.Title != nil {
		v.Title = *patch.Title
	}
	if patch.Description != nil {
		v.Description = *patch.Description
	}
	if patch.ProjectID != nil {
		v.ProjectID = *patch.ProjectID
	}
	if patch.ProductID != nil {
		v.ProductID = *patch.ProductID
	}
	return v
}
