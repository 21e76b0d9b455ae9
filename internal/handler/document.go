package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"teamdocs/internal/auth"
	"teamdocs/internal/domain/models"
	"teamdocs/internal/domain/services"
	"teamdocs/internal/httputil"
)

// DocumentHandler handles team document HTTP requests
type DocumentHandler struct {
	docService services.DocumentService
	sessions   auth.SessionResolver
	logger     *slog.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(docService services.DocumentService, sessions auth.SessionResolver, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		sessions:   sessions,
		logger:     logger,
	}
}

// moveDocumentsBody keeps fields raw so that type mismatches are reported
// after authorization, not before.
type moveDocumentsBody struct {
	DocumentIDs json.RawMessage `json:"documentIds"`
	FolderID    json.RawMessage `json:"folderId"`
}

// toRequest decodes the raw fields, collecting per-field errors on the request
func (b *moveDocumentsBody) toRequest() *models.MoveDocumentsRequest {
	req := &models.MoveDocumentsRequest{}
	fieldErrors := map[string]string{}

	if b.DocumentIDs != nil {
		if err := json.Unmarshal(b.DocumentIDs, &req.DocumentIDs); err != nil {
			fieldErrors["documentIds"] = "must be an array of strings"
		}
	}

	if b.FolderID != nil {
		var folderID httputil.OptionalString
		if err := json.Unmarshal(b.FolderID, &folderID); err != nil {
			fieldErrors["folderId"] = "must be a string or null"
		}
		req.FolderID = folderID.Value
		req.FolderIDSet = true
	}

	if len(fieldErrors) > 0 {
		req.FieldErrors = fieldErrors
	}
	return req
}

// MoveDocuments moves documents of a team into a folder
// PATCH /api/teams/{teamId}/documents/move
//
// Registered without a method so that the 405 body and Allow header are
// produced here rather than by the mux.
func (h *DocumentHandler) MoveDocuments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		w.Header().Set("Allow", http.MethodPatch)
		httputil.RespondText(w, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s Not Allowed", r.Method))
		return
	}

	session, err := h.sessions.Resolve(r)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	if session == nil {
		httputil.RespondText(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// Only unreadable JSON is rejected here; field problems are reported by
	// the service once the caller's role has been checked.
	var (
		body    moveDocumentsBody
		req     *models.MoveDocumentsRequest
		typeErr *httputil.TypeError
	)
	switch err := httputil.ParseJSON(w, r, &body); {
	case err == nil:
		req = body.toRequest()
	case errors.As(err, &typeErr):
		req = &models.MoveDocumentsRequest{
			FieldErrors: map[string]string{"body": "must be a JSON object"},
		}
	default:
		httputil.RespondText(w, http.StatusBadRequest, err.Error())
		return
	}
	req.TeamID = r.PathValue("teamId")
	req.UserID = session.UserID

	result, err := h.docService.MoveDocuments(r.Context(), req)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}
