package models

import "time"

type MediaSource string

const (
	SourceUpload    MediaSource = "upload"
	SourceInstagram MediaSource = "instagram"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

type GalleryItem struct {
	ID         string      `bson:"_id,omitempty" json:"id,omitempty"`
	URL        string      `bson:"url" json:"url"` // URI or inline data URI
	Thumb      string      `bson:"thumb,omitempty" json:"thumb,omitempty"`
	Caption    string      `bson:"caption" json:"caption"`
	Source     MediaSource `bson:"source" json:"source"`
	Type       MediaType   `bson:"type" json:"type"`
	EventID    string      `bson:"eventId,omitempty" json:"eventId,omitempty"`
	Approved   *bool       `bson:"approved,omitempty" json:"approved,omitempty"`
	UploadedBy string      `bson:"uploadedBy,omitempty" json:"uploadedBy,omitempty"`
	DateAdded  time.Time   `bson:"dateAdded" json:"dateAdded"`
}

// IsApproved reports effective visibility. Records from before moderation
// existed have no approved field at all; those read as approved.
func (g GalleryItem) IsApproved() bool {
	return g.Approved == nil || *g.Approved
}
