package repositories

import (
	"context"

	"teamdocs/internal/domain/models"
)

// FolderRepository defines data access for folders
type FolderRepository interface {
	// GetByID returns a folder of teamID or ErrNotFound
	GetByID(ctx context.Context, id, teamID string) (*models.Folder, error)
}
