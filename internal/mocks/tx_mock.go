package mocks

import (
	"github.com/stretchr/testify/mock"

	"pullRequests24/internal/storage"
)

// Tx - мок storage.Tx
type Tx struct {
	mock.Mock
}

func NewTx(t testingT) *Tx {
	m := &Tx{}
	register(&m.Mock, t)
	return m
}

func (_m *Tx) PullRequestRepo() storage.PullRequestRepository {
	ret := _m.Called()
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(storage.PullRequestRepository)
}

func (_m *Tx) UserRepo() storage.UserRepository {
	ret := _m.Called()
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(storage.UserRepository)
}

func (_m *Tx) GiftRepo() storage.GiftRepository {
	ret := _m.Called()
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).(storage.GiftRepository)
}
