package mocks

import "github.com/stretchr/testify/mock"

// MessageFormatter - мок domain.MessageFormatter
type MessageFormatter struct {
	mock.Mock
}

func NewMessageFormatter(t testingT) *MessageFormatter {
	m := &MessageFormatter{}
	register(&m.Mock, t)
	return m
}

func (_m *MessageFormatter) Format(key string, values map[string]any) (string, error) {
	ret := _m.Called(key, values)
	return ret.String(0), ret.Error(1)
}
