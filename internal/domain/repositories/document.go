package repositories

import "context"

// DocumentRepository defines data access for documents
type DocumentRepository interface {
	// MoveToFolder sets folder_id on every document whose id is in ids and
	// whose team is teamID. Returns the number of rows matched.
	MoveToFolder(ctx context.Context, teamID string, ids []string, folderID *string) (int64, error)
}
