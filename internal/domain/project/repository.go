package project

import "context"

// Repository is the owner-scoped persistence contract for projects.
// List returns rows ordered by creation time descending.
type Repository interface {
	List(ctx context.Context, ownerID string) ([]StorageRecord, error)
	Get(ctx context.Context, ownerID, id string) (*StorageRecord, error)
	Insert(ctx context.Context, rec *StorageRecord) (string, error)
	Update(ctx context.Context, rec *StorageRecord) error
	Delete(ctx context.Context, ownerID, id string) error
}
