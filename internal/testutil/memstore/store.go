// Package memstore is an in-memory implementation of the repository
// interfaces for handler and service tests.
package memstore

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"teamdocs/internal/domain"
	"teamdocs/internal/domain/models"
	"teamdocs/internal/domain/repositories"
)

// Store holds teams, memberships, folders and documents in memory
type Store struct {
	mu          sync.Mutex
	teams       map[string]*models.Team
	memberships map[string]*models.TeamMembership // key: team/user
	folders     map[string]*models.Folder
	documents   map[string]*models.Document
	queries     int
}

// New creates an empty store
func New() *Store {
	return &Store{
		teams:       make(map[string]*models.Team),
		memberships: make(map[string]*models.TeamMembership),
		folders:     make(map[string]*models.Folder),
		documents:   make(map[string]*models.Document),
	}
}

func membershipKey(teamID, userID string) string {
	return teamID + "/" + userID
}

// AddTeam inserts a team
func (s *Store) AddTeam(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[id] = &models.Team{ID: id, Name: id, CreatedAt: time.Now()}
}

// AddMember inserts or replaces a membership
func (s *Store) AddMember(teamID, userID string, role models.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memberships[membershipKey(teamID, userID)] = &models.TeamMembership{
		TeamID: teamID, UserID: userID, Role: role, CreatedAt: time.Now(),
	}
}

// AddFolder inserts a folder
func (s *Store) AddFolder(id, teamID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.folders[id] = &models.Folder{ID: id, TeamID: teamID, Name: id}
}

// AddDocument inserts a document
func (s *Store) AddDocument(id, teamID string, folderID *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[id] = &models.Document{ID: id, TeamID: teamID, FolderID: folderID, Name: id}
}

// FolderOf returns the folder id of a document regardless of team
func (s *Store) FolderOf(documentID string) *string {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.documents[documentID]
	if !ok || doc.FolderID == nil {
		return nil
	}
	f := *doc.FolderID
	return &f
}

// Queries returns the number of repository calls made so far
func (s *Store) Queries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queries
}

// Teams returns the store as a TeamRepository
func (s *Store) Teams() repositories.TeamRepository { return teamRepo{s} }

// Documents returns the store as a DocumentRepository
func (s *Store) Documents() repositories.DocumentRepository { return documentRepo{s} }

// Folders returns the store as a FolderRepository
func (s *Store) Folders() repositories.FolderRepository { return folderRepo{s} }

// ExecTx implements repositories.TransactionManager by running fn inline
func (s *Store) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}

type teamRepo struct{ s *Store }

func (r teamRepo) HasMemberWithRole(_ context.Context, teamID, userID string, roles []models.Role) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.queries++

	if _, ok := r.s.teams[teamID]; !ok {
		return false, nil
	}
	m, ok := r.s.memberships[membershipKey(teamID, userID)]
	if !ok {
		return false, nil
	}
	return slices.Contains(roles, m.Role), nil
}

type documentRepo struct{ s *Store }

func (r documentRepo) MoveToFolder(_ context.Context, teamID string, ids []string, folderID *string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.queries++

	var count int64
	for _, id := range ids {
		doc, ok := r.s.documents[id]
		if !ok || doc.TeamID != teamID {
			continue
		}
		if folderID == nil {
			doc.FolderID = nil
		} else {
			f := *folderID
			doc.FolderID = &f
		}
		doc.UpdatedAt = time.Now()
		count++
	}
	return count, nil
}

type folderRepo struct{ s *Store }

func (r folderRepo) GetByID(_ context.Context, id, teamID string) (*models.Folder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.queries++

	folder, ok := r.s.folders[id]
	if !ok || folder.TeamID != teamID {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	copied := *folder
	return &copied, nil
}
