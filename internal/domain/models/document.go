package models

import (
	"time"
)

type Document struct {
	ID        string    `json:"id" db:"id"`
	TeamID    string    `json:"team_id" db:"team_id"`
	FolderID  *string   `json:"folder_id" db:"folder_id"` // NULL = no folder
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// MoveDocumentsRequest moves a set of documents of one team into a folder.
// FolderID nil means "no folder"; FolderIDSet distinguishes null from absent.
// FieldErrors carries body fields that failed to decode. They are reported
// only once the caller has been authorized.
type MoveDocumentsRequest struct {
	TeamID      string            `json:"teamId"`
	UserID      string            `json:"-"`
	DocumentIDs []string          `json:"documentIds"`
	FolderID    *string           `json:"folderId"`
	FolderIDSet bool              `json:"-"`
	FieldErrors map[string]string `json:"-"`
}

// MoveDocumentsResult is the JSON body returned for a successful move
type MoveDocumentsResult struct {
	Message      string `json:"message"`
	UpdatedCount int64  `json:"updatedCount"`
}
