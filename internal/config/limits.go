package config

const (
	// MaxMoveDocumentIDs caps the id list of a single move request.
	// The whole list is sent as one array parameter to PostgreSQL.
	MaxMoveDocumentIDs = 1000

	// MaxIdentifierLength is the longest document or folder id accepted
	// from a request body.
	MaxIdentifierLength = 128
)
