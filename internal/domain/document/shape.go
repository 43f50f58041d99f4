package document

import "time"

// StorageRecord mirrors the documents table row.
type StorageRecord struct {
	ID          string    `json:"id,omitempty"`
	OwnerID     string    `json:"owner_id,omitempty"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	MimeType    string    `json:"mime_type"`
	Category    string    `json:"category"`
	FolderID    string    `json:"folder_id"`
	Tags        []string  `json:"tags"`
	Description string    `json:"description"`
	Favorite    bool      `json:"favorite"`
	Version     int       `json:"version"`
	BlobRef     string    `json:"blob_ref"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// FolderRecord mirrors the folders table row.
type FolderRecord struct {
	ID        string    `json:"id,omitempty"`
	OwnerID   string    `json:"owner_id,omitempty"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// FromStorage maps a stored row to the display shape. The category is
// re-derived from the mime type so stale stored values never leak out.
func FromStorage(r StorageRecord) Document {
	return Document{
		ID:          r.ID,
		Name:        r.Name,
		Size:        r.Size,
		MimeType:    r.MimeType,
		Category:    CategoryFromMimeType(r.MimeType),
		FolderID:    r.FolderID,
		Tags:        emptyIfNil(r.Tags),
		Description: r.Description,
		Favorite:    r.Favorite,
		Version:     r.Version,
		BlobRef:     r.BlobRef,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func ToStorage(d Document) StorageRecord {
	return StorageRecord{
		ID:          d.ID,
		Name:        d.Name,
		Size:        d.Size,
		MimeType:    d.MimeType,
		Category:    string(CategoryFromMimeType(d.MimeType)),
		FolderID:    d.FolderID,
		Tags:        emptyIfNil(d.Tags),
		Description: d.Description,
		Favorite:    d.Favorite,
		Version:     d.Version,
		BlobRef:     d.BlobRef,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func FolderFromStorage(r FolderRecord) Folder {
	return Folder{
		ID:        r.ID,
		Name:      r.Name,
		Color:     r.Color,
		CreatedAt: r.CreatedAt,
	}
}

func FolderToStorage(f Folder) FolderRecord {
	return FolderRecord{
		ID:        f.ID,
		Name:      f.Name,
		Color:     f.Color,
		CreatedAt: f.CreatedAt,
	}
}

func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
