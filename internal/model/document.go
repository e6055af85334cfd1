package model

import "time"

// Source records where an uploaded document came from. It is descriptive only.
type Source string

const (
	SourceComputer    Source = "computer"
	SourceGoogleDrive Source = "google-drive"
	SourceImage       Source = "image"
	SourceVideo       Source = "video"
)

// Sources lists every upload origin in the order the landing page offers them.
var Sources = []Source{SourceComputer, SourceGoogleDrive, SourceImage, SourceVideo}

// Valid reports whether s is one of the known upload origins.
func (s Source) Valid() bool {
	for _, known := range Sources {
		if s == known {
			return true
		}
	}
	return false
}

// Document is one uploaded study artifact. Documents are never modified after
// creation; the JSON field names are the persisted snapshot format.
type Document struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Content   string    `json:"content"`
	DateAdded time.Time `json:"dateAdded"`
	Source    Source    `json:"source"`
}
