package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pullRequests24/internal/domain"
)

// GiftRepository - мок storage.GiftRepository
type GiftRepository struct {
	mock.Mock
}

func NewGiftRepository(t testingT) *GiftRepository {
	m := &GiftRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *GiftRepository) Create(ctx context.Context, gift *domain.Gift) error {
	ret := _m.Called(ctx, gift)
	if rf, ok := ret.Get(0).(func(context.Context, *domain.Gift) error); ok {
		return rf(ctx, gift)
	}
	return ret.Error(0)
}
