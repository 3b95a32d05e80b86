// Package mocks содержит testify моки интерфейсов domain и storage.
// Файлы *_mock.go соответствуют директивам go:generate mockery, вспомогательный код живёт здесь.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pullRequests24/internal/storage"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(m *mock.Mock, t testingT) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// RunIn настраивает Do на выполнение fn с переданным tx
func (_m *TxManager) RunIn(tx storage.Tx) *mock.Call {
	return _m.On("Do", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context, storage.Tx) error) error {
			return fn(ctx, tx)
		})
}
