package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode - код ошибки для API
type ErrorCode string

const (
	ErrorCodePullRequestExists ErrorCode = "PR_EXISTS"
	ErrorCodeInvalidPayload    ErrorCode = "INVALID_PAYLOAD"
	ErrorCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrorCodeUpstreamError     ErrorCode = "UPSTREAM_ERROR"
	ErrorCodeInternalError     ErrorCode = "INTERNAL_ERROR"
	ErrorCodeInvalidInput      ErrorCode = "INVALID_INPUT"
)

// Error - доменная ошибка с HTTP статусом и кодом
type Error struct {
	Status  int       // HTTP status code
	Code    ErrorCode // Код ошибки для API
	Message string    // Сообщение об ошибке
	Err     error     // Wrapped error для контекста
}

// Error реализует интерфейс error
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap позволяет использовать errors.Is и errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// Is сравнивает доменные ошибки по коду, чтобы обёрнутые через WrapError
// значения совпадали с предопределёнными
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewError создаёт новую доменную ошибку
func NewError(status int, code ErrorCode, message string, err error) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Предопределённые доменные ошибки
var (
	// ErrPRExists - у пользователя уже есть PR с таким issue_url
	ErrPRExists = NewError(
		http.StatusConflict,
		ErrorCodePullRequestExists,
		"pull request already exists for this user",
		nil,
	)

	// ErrInvalidPayload - в событии GitHub нет обязательных полей
	ErrInvalidPayload = NewError(
		http.StatusBadRequest,
		ErrorCodeInvalidPayload,
		"malformed github event payload",
		nil,
	)

	// ErrResourceNotFound - ресурс не найден
	ErrResourceNotFound = NewError(
		http.StatusNotFound,
		ErrorCodeNotFound,
		"resource not found",
		nil,
	)

	// ErrUpstream - провайдер не вернул данные о PR
	ErrUpstream = NewError(
		http.StatusBadGateway,
		ErrorCodeUpstreamError,
		"failed to fetch pull request state from provider",
		nil,
	)

	// ErrInternal - внутренняя ошибка сервера
	ErrInternal = NewError(
		http.StatusInternalServerError,
		ErrorCodeInternalError,
		"internal server error",
		nil,
	)

	// ErrInvalidInput - невалидные входные данные
	ErrInvalidInput = NewError(
		http.StatusBadRequest,
		ErrorCodeInvalidInput,
		"invalid input data",
		nil,
	)
)

// IsDomainError проверяет, является ли ошибка доменной
func IsDomainError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}

// IsValidationError - дубликат PR или битое событие
func IsValidationError(err error) bool {
	return errors.Is(err, ErrPRExists) || errors.Is(err, ErrInvalidPayload)
}

// WrapError оборачивает обычную ошибку в доменную с контекстом
func WrapError(err error, status int, code ErrorCode, message string) *Error {
	return NewError(status, code, message, err)
}
