package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pullRequests24/internal/domain"
)

// PullRequestRepository - мок storage.PullRequestRepository
type PullRequestRepository struct {
	mock.Mock
}

func NewPullRequestRepository(t testingT) *PullRequestRepository {
	m := &PullRequestRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *PullRequestRepository) Create(ctx context.Context, pr *domain.PullRequest) error {
	ret := _m.Called(ctx, pr)
	if rf, ok := ret.Get(0).(func(context.Context, *domain.PullRequest) error); ok {
		return rf(ctx, pr)
	}
	return ret.Error(0)
}

func (_m *PullRequestRepository) Exists(ctx context.Context, userID, issueURL string) (bool, error) {
	ret := _m.Called(ctx, userID, issueURL)
	return ret.Bool(0), ret.Error(1)
}

func (_m *PullRequestRepository) GetByID(ctx context.Context, id int64) (*domain.PullRequest, error) {
	ret := _m.Called(ctx, id)
	var r0 *domain.PullRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.PullRequest)
	}
	return r0, ret.Error(1)
}

func (_m *PullRequestRepository) UpdateState(ctx context.Context, id int64, state string, commentsCount int) error {
	ret := _m.Called(ctx, id, state, commentsCount)
	return ret.Error(0)
}

func (_m *PullRequestRepository) ListByLanguage(ctx context.Context, language string) ([]domain.PullRequest, error) {
	ret := _m.Called(ctx, language)
	var r0 []domain.PullRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PullRequest)
	}
	return r0, ret.Error(1)
}

func (_m *PullRequestRepository) ListLatest(ctx context.Context, limit int) ([]domain.PullRequest, error) {
	ret := _m.Called(ctx, limit)
	var r0 []domain.PullRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PullRequest)
	}
	return r0, ret.Error(1)
}

func (_m *PullRequestRepository) ListByUser(ctx context.Context, userID string) ([]domain.PullRequest, error) {
	ret := _m.Called(ctx, userID)
	var r0 []domain.PullRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PullRequest)
	}
	return r0, ret.Error(1)
}
