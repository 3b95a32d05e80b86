package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pullRequests24/internal/domain"
)

// IssueFetcher - мок domain.IssueFetcher
type IssueFetcher struct {
	mock.Mock
}

func NewIssueFetcher(t testingT) *IssueFetcher {
	m := &IssueFetcher{}
	register(&m.Mock, t)
	return m
}

func (_m *IssueFetcher) FetchIssueData(ctx context.Context, issueURL string) (*domain.IssueData, error) {
	ret := _m.Called(ctx, issueURL)
	var r0 *domain.IssueData
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.IssueData)
	}
	return r0, ret.Error(1)
}
