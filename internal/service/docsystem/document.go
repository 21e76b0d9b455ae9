package docsystem

import (
	"context"
	"errors"
	"log/slog"

	"teamdocs/internal/config"
	"teamdocs/internal/domain"
	"teamdocs/internal/domain/models"
	"teamdocs/internal/domain/repositories"
	"teamdocs/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	moveSuccessMessage = "Document moved successfully"
	noDocumentsMessage = "No documents were updated"
)

// documentService implements services.DocumentService
type documentService struct {
	docRepo           repositories.DocumentRepository
	txManager         repositories.TransactionManager
	authorizer        services.TeamAuthorizer
	validator         *ResourceValidator
	strictFolderScope bool
	logger            *slog.Logger
}

// DocumentServiceOptions toggles optional checks of the document service
type DocumentServiceOptions struct {
	// StrictFolderScope rejects a destination folder that is not owned by
	// the documents' team.
	StrictFolderScope bool
}

// NewDocumentService creates a new document service
func NewDocumentService(
	docRepo repositories.DocumentRepository,
	txManager repositories.TransactionManager,
	authorizer services.TeamAuthorizer,
	validator *ResourceValidator,
	opts DocumentServiceOptions,
	logger *slog.Logger,
) services.DocumentService {
	return &documentService{
		docRepo:           docRepo,
		txManager:         txManager,
		authorizer:        authorizer,
		validator:         validator,
		strictFolderScope: opts.StrictFolderScope,
		logger:            logger,
	}
}

// MoveDocuments moves the team's documents listed in req into req.FolderID.
//
// The role check and the update share one transaction, so a role revoked
// concurrently either blocks until the move commits or prevents it.
// Ids of other teams' documents are skipped without error.
func (s *documentService) MoveDocuments(ctx context.Context, req *models.MoveDocumentsRequest) (*models.MoveDocumentsResult, error) {
	var updated int64

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.authorizer.Authorize(txCtx, req.UserID, req.TeamID, services.ActionMoveDocuments); err != nil {
			return err
		}

		if err := s.validateMoveRequest(req); err != nil {
			return err
		}

		if s.strictFolderScope && req.FolderID != nil {
			if err := s.validator.ValidateFolder(txCtx, *req.FolderID, req.TeamID); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					s.logger.Warn("move into folder outside team rejected",
						"team_id", req.TeamID,
						"folder_id", *req.FolderID,
						"user_id", req.UserID,
					)
					return &domain.ForbiddenError{Message: "Forbidden"}
				}
				return err
			}
		}

		n, err := s.docRepo.MoveToFolder(txCtx, req.TeamID, uniqueIDs(req.DocumentIDs), req.FolderID)
		if err != nil {
			return err
		}
		updated = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated == 0 {
		return nil, &domain.NotFoundError{Message: noDocumentsMessage}
	}

	s.logger.Info("documents moved",
		"team_id", req.TeamID,
		"user_id", req.UserID,
		"updated_count", updated,
	)

	return &models.MoveDocumentsResult{
		Message:      moveSuccessMessage,
		UpdatedCount: updated,
	}, nil
}

func (s *documentService) validateMoveRequest(req *models.MoveDocumentsRequest) error {
	if len(req.FieldErrors) > 0 {
		errs := validation.Errors{}
		for field, msg := range req.FieldErrors {
			errs[field] = errors.New(msg)
		}
		return &domain.ValidationError{Message: errs.Error()}
	}

	err := validation.ValidateStruct(req,
		validation.Field(&req.TeamID, validation.Required),
		validation.Field(&req.DocumentIDs,
			validation.Required,
			validation.Length(1, config.MaxMoveDocumentIDs),
			validation.Each(validation.Required, validation.Length(1, config.MaxIdentifierLength)),
		),
		validation.Field(&req.FolderID,
			validation.When(!req.FolderIDSet, validation.Required),
			validation.NilOrNotEmpty,
			validation.Length(1, config.MaxIdentifierLength),
		),
	)
	if err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}
	return nil
}

// uniqueIDs drops repeated ids, keeping first-seen order
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
