package document

import (
	"strings"
	"time"
)

// Category is derived from the mime type, never supplied by the caller.
type Category string

const (
	CategoryImages    Category = "images"
	CategoryPDF       Category = "pdf"
	CategoryDocuments Category = "documents"
	CategoryVideos    Category = "videos"
	CategoryAudio     Category = "audio"
	CategoryOther     Category = "other"
)

// CategoryFromMimeType buckets a mime type into a display category.
// Unrecognized types land in Other.
func CategoryFromMimeType(mimeType string) Category {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return CategoryImages
	case mimeType == "application/pdf":
		return CategoryPDF
	case strings.HasPrefix(mimeType, "text/"),
		strings.Contains(mimeType, "document"),
		strings.Contains(mimeType, "word"),
		strings.Contains(mimeType, "excel"),
		strings.Contains(mimeType, "powerpoint"):
		return CategoryDocuments
	case strings.HasPrefix(mimeType, "video/"):
		return CategoryVideos
	case strings.HasPrefix(mimeType, "audio/"):
		return CategoryAudio
	default:
		return CategoryOther
	}
}

// Document is the display shape handed to forms and lists.
type Document struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name" validate:"required"`
	Size        int64     `json:"size"`
	MimeType    string    `json:"mimeType"`
	Category    Category  `json:"category"`
	FolderID    string    `json:"folderId"`
	Tags        []string  `json:"tags"`
	Description string    `json:"description"`
	Favorite    bool      `json:"favorite"`
	Version     int       `json:"version"`
	BlobRef     string    `json:"blobRef"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

type Folder struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name" validate:"required"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}
