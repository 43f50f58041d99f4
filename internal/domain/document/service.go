package document

import (
	"context"
	"errors"
	"fmt"

	"opsboard/internal/domain/form"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, ownerID string, filter Filter, sortKey string) ([]Document, error)
	Get(ctx context.Context, ownerID, id string) (*Document, error)
	Save(ctx context.Context, ownerID string, draft Document) (*Document, error)
	Delete(ctx context.Context, ownerID, id string) error

	ListFolders(ctx context.Context, ownerID string) ([]Folder, error)
	CreateFolder(ctx context.Context, ownerID string, draft Folder) (*Folder, error)
	DeleteFolder(ctx context.Context, ownerID, id string) error
}

type Service struct {
	repo    Repository
	folders FolderRepository
	log     *slog.Logger
}

func NewService(repo Repository, folders FolderRepository, log *slog.Logger) Servicer {
	return &Service{
		repo:    repo,
		folders: folders,
		log:     log.With("component", "document_service"),
	}
}

func (s *Service) List(ctx context.Context, ownerID string, filter Filter, sortKey string) ([]Document, error) {
	rows, err := s.repo.List(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list documents", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list documents: %w", err)
	}

	docs := make([]Document, len(rows))
	for i, r := range rows {
		docs[i] = FromStorage(r)
	}

	docs = filter.Apply(docs)
	Sort(docs, sortKey)
	return docs, nil
}

func (s *Service) Get(ctx context.Context, ownerID, id string) (*Document, error) {
	row, err := s.repo.Get(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get document", "document_id", id, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get document: %w", err)
	}

	d := FromStorage(*row)
	return &d, nil
}

// Save validates the draft and inserts or updates depending on whether
// it carries an id. New entries without a blob reference get one minted;
// updating bumps the version counter.
func (s *Service) Save(ctx context.Context, ownerID string, draft Document) (*Document, error) {
	if err := form.Validate(draft); err != nil {
		s.log.Debug("document draft rejected", "owner_id", ownerID, "error", err)
		return nil, err
	}

	rec := ToStorage(draft)
	rec.OwnerID = ownerID

	if rec.ID == "" {
		rec.Version = 1
		if rec.BlobRef == "" {
			rec.BlobRef = uuid.NewString()
		}
		id, err := s.repo.Insert(ctx, &rec)
		if err != nil {
			s.log.Error("failed to insert document", "owner_id", ownerID, "error", err)
			return nil, fmt.Errorf("insert document: %w", err)
		}
		rec.ID = id
		s.log.Info("document created", "document_id", id, "owner_id", ownerID)
	} else {
		rec.Version++
		if err := s.repo.Update(ctx, &rec); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrNotFound
			}
			s.log.Error("failed to update document", "document_id", rec.ID, "owner_id", ownerID, "error", err)
			return nil, fmt.Errorf("update document: %w", err)
		}
		s.log.Info("document updated", "document_id", rec.ID, "owner_id", ownerID, "version", rec.Version)
	}

	return s.Get(ctx, ownerID, rec.ID)
}

func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete document", "document_id", id, "owner_id", ownerID, "error", err)
		return fmt.Errorf("delete document: %w", err)
	}

	s.log.Info("document deleted", "document_id", id, "owner_id", ownerID)
	return nil
}

func (s *Service) ListFolders(ctx context.Context, ownerID string) ([]Folder, error) {
	rows, err := s.folders.List(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list folders", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list folders: %w", err)
	}

	out := make([]Folder, len(rows))
	for i, r := range rows {
		out[i] = FolderFromStorage(r)
	}
	return out, nil
}

func (s *Service) CreateFolder(ctx context.Context, ownerID string, draft Folder) (*Folder, error) {
	if err := form.Validate(draft); err != nil {
		s.log.Debug("folder draft rejected", "owner_id", ownerID, "error", err)
		return nil, err
	}

	rec := FolderToStorage(draft)
	rec.OwnerID = ownerID

	id, err := s.folders.Insert(ctx, &rec)
	if err != nil {
		s.log.Error("failed to insert folder", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("insert folder: %w", err)
	}
	rec.ID = id
	s.log.Info("folder created", "folder_id", id, "owner_id", ownerID)

	f := FolderFromStorage(rec)
	return &f, nil
}

func (s *Service) DeleteFolder(ctx context.Context, ownerID, id string) error {
	if err := s.folders.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, ErrFolderNotFound) {
			return ErrFolderNotFound
		}
		s.log.Error("failed to delete folder", "folder_id", id, "owner_id", ownerID, "error", err)
		return fmt.Errorf("delete folder: %w", err)
	}

	s.log.Info("folder deleted", "folder_id", id, "owner_id", ownerID)
	return nil
}
