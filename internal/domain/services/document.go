package services

import (
	"context"

	"teamdocs/internal/domain/models"
)

// DocumentService defines team-scoped document operations
type DocumentService interface {
	// MoveDocuments moves the requested documents of a team into a folder.
	// Returns an error matching domain.ErrNotFound when no document matched.
	MoveDocuments(ctx context.Context, req *models.MoveDocumentsRequest) (*models.MoveDocumentsResult, error)
}
