package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pullRequests24/internal/domain"
)

// UserRepository - мок storage.UserRepository
type UserRepository struct {
	mock.Mock
}

func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	ret := _m.Called(ctx, userID)
	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) Upsert(ctx context.Context, user *domain.User) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}
