package domain

import "errors"

// 对外稳定的错误种类；传输层按种类映射 HTTP 状态码
var (
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrDuplicateIdentity   = errors.New("duplicate identity")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidInput        = errors.New("invalid input")
	ErrRegistrationFailed  = errors.New("registration failed")
)
