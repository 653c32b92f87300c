package ez

import (
	"errors"

	"canny-backend/internal/domain"
	resp "canny-backend/internal/transport/http/response"
)

// 对外的错误种类
const (
	KindUnauthenticated     = "unauthenticated"
	KindForbidden           = "forbidden"
	KindNotFound            = "not_found"
	KindDuplicateIdentity   = "duplicate_identity"
	KindConstraintViolation = "constraint_violation"
	KindInvalidCredentials  = "invalid_credentials"
	KindInvalidInput        = "invalid_input"
	KindInternal            = "internal"
)

// AErr 统一错误对象（配合 resp.Error）
type AErr struct {
	Code int
	Kind string
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func (e *AErr) Unwrap() error { return e.Err }

var kinds = []AErr{
	{Err: domain.ErrUnauthenticated, Code: resp.CodeUnauthorized, Kind: KindUnauthenticated, Msg: "missing token"},
	{Err: domain.ErrForbidden, Code: resp.CodeForbidden, Kind: KindForbidden, Msg: "invalid token"},
	{Err: domain.ErrNotFound, Code: resp.CodeNotFound, Kind: KindNotFound, Msg: "not found"},
	{Err: domain.ErrDuplicateIdentity, Code: resp.CodeBadRequest, Kind: KindDuplicateIdentity, Msg: "email already registered"},
	{Err: domain.ErrConstraintViolation, Code: resp.CodeBadRequest, Kind: KindConstraintViolation, Msg: "constraint violation"},
	{Err: domain.ErrInvalidCredentials, Code: resp.CodeUnauthorized, Kind: KindInvalidCredentials, Msg: "invalid credentials"},
	{Err: domain.ErrInvalidInput, Code: resp.CodeBadRequest, Kind: KindInvalidInput, Msg: "invalid input"},
	{Err: domain.ErrRegistrationFailed, Code: resp.CodeBadRequest, Kind: KindInvalidInput, Msg: "registration failed"},
}

// Classify 把任意错误归到稳定种类；未知错误一律按内部错误处理
func Classify(err error) *AErr {
	var ae *AErr
	if errors.As(err, &ae) {
		return ae
	}
	for i := range kinds {
		if errors.Is(err, kinds[i].Err) {
			k := kinds[i]
			k.Err = err
			return &k
		}
	}
	return &AErr{Code: resp.CodeServerError, Kind: KindInternal, Msg: "internal error", Err: err}
}
