package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// SocialPublisher - мок domain.SocialPublisher
type SocialPublisher struct {
	mock.Mock
}

func NewSocialPublisher(t testingT) *SocialPublisher {
	m := &SocialPublisher{}
	register(&m.Mock, t)
	return m
}

func (_m *SocialPublisher) Publish(ctx context.Context, message string) error {
	ret := _m.Called(ctx, message)
	return ret.Error(0)
}
