package mocks

import (
	"context"
	"net/http"
	"testing"

	"teamdocs/internal/domain/models"
	"teamdocs/internal/domain/services"

	"github.com/stretchr/testify/mock"
)

// MockTeamAuthorizer is a mock of services.TeamAuthorizer
type MockTeamAuthorizer struct {
	mock.Mock
}

func NewMockTeamAuthorizer(t *testing.T) *MockTeamAuthorizer {
	m := &MockTeamAuthorizer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTeamAuthorizer) Authorize(ctx context.Context, userID, teamID string, action services.Action) error {
	args := m.Called(ctx, userID, teamID, action)
	return args.Error(0)
}

// MockDocumentService is a mock of services.DocumentService
type MockDocumentService struct {
	mock.Mock
}

func NewMockDocumentService(t *testing.T) *MockDocumentService {
	m := &MockDocumentService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDocumentService) MoveDocuments(ctx context.Context, req *models.MoveDocumentsRequest) (*models.MoveDocumentsResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MoveDocumentsResult), args.Error(1)
}

// MockSessionResolver is a mock of auth.SessionResolver
type MockSessionResolver struct {
	mock.Mock
}

func NewMockSessionResolver(t *testing.T) *MockSessionResolver {
	m := &MockSessionResolver{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSessionResolver) Resolve(r *http.Request) (*models.Session, error) {
	args := m.Called(r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}
