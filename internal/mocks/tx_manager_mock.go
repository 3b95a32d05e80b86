package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pullRequests24/internal/storage"
)

// TxManager - мок storage.TxManager.
// Return можно передать функцию с сигнатурой Do, чтобы выполнить fn с моком Tx.
type TxManager struct {
	mock.Mock
}

func NewTxManager(t testingT) *TxManager {
	m := &TxManager{}
	register(&m.Mock, t)
	return m
}

func (_m *TxManager) Do(ctx context.Context, fn func(ctx context.Context, tx storage.Tx) error) error {
	ret := _m.Called(ctx, fn)
	if rf, ok := ret.Get(0).(func(context.Context, func(context.Context, storage.Tx) error) error); ok {
		return rf(ctx, fn)
	}
	return ret.Error(0)
}
