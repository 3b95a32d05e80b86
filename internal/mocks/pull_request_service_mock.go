package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pullRequests24/internal/domain"
)

// PullRequestService - мок domain.PullRequestService
type PullRequestService struct {
	mock.Mock
}

func NewPullRequestService(t testingT) *PullRequestService {
	m := &PullRequestService{}
	register(&m.Mock, t)
	return m
}

func (_m *PullRequestService) CreateFromGithub(ctx context.Context, owner *domain.User, payload []byte) (*domain.PullRequest, error) {
	ret := _m.Called(ctx, owner, payload)
	var r0 *domain.PullRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.PullRequest)
	}
	return r0, ret.Error(1)
}

func (_m *PullRequestService) CheckState(ctx context.Context, pullRequestID int64) (*domain.PullRequest, error) {
	ret := _m.Called(ctx, pullRequestID)
	var r0 *domain.PullRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.PullRequest)
	}
	return r0, ret.Error(1)
}

func (_m *PullRequestService) ByLanguage(ctx context.Context, language string) ([]domain.PullRequest, error) {
	ret := _m.Called(ctx, language)
	var r0 []domain.PullRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PullRequest)
	}
	return r0, ret.Error(1)
}

func (_m *PullRequestService) Latest(ctx context.Context, limit int) ([]domain.PullRequest, error) {
	ret := _m.Called(ctx, limit)
	var r0 []domain.PullRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PullRequest)
	}
	return r0, ret.Error(1)
}

func (_m *PullRequestService) ListUserPullRequests(ctx context.Context, userID string) ([]domain.PullRequest, error) {
	ret := _m.Called(ctx, userID)
	var r0 []domain.PullRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.PullRequest)
	}
	return r0, ret.Error(1)
}

func (_m *PullRequestService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	ret := _m.Called(ctx, userID)
	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *PullRequestService) UpsertUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	ret := _m.Called(ctx, user)
	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	return r0, ret.Error(1)
}
