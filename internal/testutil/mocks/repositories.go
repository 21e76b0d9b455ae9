package mocks

import (
	"context"
	"testing"

	"teamdocs/internal/domain/models"
	"teamdocs/internal/domain/repositories"

	"github.com/stretchr/testify/mock"
)

// MockTeamRepository is a mock of repositories.TeamRepository
type MockTeamRepository struct {
	mock.Mock
}

func NewMockTeamRepository(t *testing.T) *MockTeamRepository {
	m := &MockTeamRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTeamRepository) HasMemberWithRole(ctx context.Context, teamID, userID string, roles []models.Role) (bool, error) {
	args := m.Called(ctx, teamID, userID, roles)
	return args.Bool(0), args.Error(1)
}

// MockDocumentRepository is a mock of repositories.DocumentRepository
type MockDocumentRepository struct {
	mock.Mock
}

func NewMockDocumentRepository(t *testing.T) *MockDocumentRepository {
	m := &MockDocumentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDocumentRepository) MoveToFolder(ctx context.Context, teamID string, ids []string, folderID *string) (int64, error) {
	args := m.Called(ctx, teamID, ids, folderID)
	return args.Get(0).(int64), args.Error(1)
}

// MockFolderRepository is a mock of repositories.FolderRepository
type MockFolderRepository struct {
	mock.Mock
}

func NewMockFolderRepository(t *testing.T) *MockFolderRepository {
	m := &MockFolderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockFolderRepository) GetByID(ctx context.Context, id, teamID string) (*models.Folder, error) {
	args := m.Called(ctx, id, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Folder), args.Error(1)
}

// MockTransactionManager runs fn inline, recording each call
type MockTransactionManager struct {
	mock.Mock
}

func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTransactionManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}
