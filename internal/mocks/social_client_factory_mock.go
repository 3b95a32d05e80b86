package mocks

import (
	"github.com/stretchr/testify/mock"

	"pullRequests24/internal/domain"
)

// SocialClientFactory - мок domain.SocialClientFactory
type SocialClientFactory struct {
	mock.Mock
}

func NewSocialClientFactory(t testingT) *SocialClientFactory {
	m := &SocialClientFactory{}
	register(&m.Mock, t)
	return m
}

func (_m *SocialClientFactory) ForUser(creds domain.SocialCredentials) domain.SocialPublisher {
	ret := _m.Called(creds)
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(domain.SocialPublisher)
}
