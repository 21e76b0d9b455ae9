package docsystem

import (
	"context"
	"fmt"

	"teamdocs/internal/domain/repositories"
)

// ResourceValidator checks that referenced resources belong to the team
// an operation is scoped to
type ResourceValidator struct {
	folderRepo repositories.FolderRepository
}

// NewResourceValidator creates a new resource validator
func NewResourceValidator(folderRepo repositories.FolderRepository) *ResourceValidator {
	return &ResourceValidator{folderRepo: folderRepo}
}

// ValidateFolder ensures folderID exists within teamID.
// Returns nil for an empty folderID (no folder is always valid).
// Returns an error matching domain.ErrNotFound otherwise.
func (v *ResourceValidator) ValidateFolder(ctx context.Context, folderID, teamID string) error {
	if folderID == "" {
		return nil
	}

	if _, err := v.folderRepo.GetByID(ctx, folderID, teamID); err != nil {
		return fmt.Errorf("invalid folder: %w", err)
	}
	return nil
}
