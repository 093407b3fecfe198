package response

import "net/http"

// BusinessError 业务错误，Status 即最终返回的 HTTP 状态码
// 400 参数/唯一性错误, 401 凭证错误, 404 资源不存在, 500 存储层异常
type BusinessError struct {
	Status int
	Msg    string
	Err    error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

type ErrorOption func(*BusinessError)

func WithStatus(status int) ErrorOption {
	return func(be *BusinessError) {
		be.Status = status
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Status: http.StatusInternalServerError,
		Msg:    "business error",
		Err:    nil,
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// 常用错误类别的快捷构造

func ValidationError(msg string) *BusinessError {
	return NewBusinessError(
		WithStatus(http.StatusBadRequest),
		WithErrorMessage(msg),
	)
}

// ConflictError 唯一性冲突，与参数错误一样返回 400
func ConflictError(msg string) *BusinessError {
	return NewBusinessError(
		WithStatus(http.StatusBadRequest),
		WithErrorMessage(msg),
	)
}

func AuthError(msg string) *BusinessError {
	return NewBusinessError(
		WithStatus(http.StatusUnauthorized),
		WithErrorMessage(msg),
	)
}

func NotFoundError(msg string) *BusinessError {
	return NewBusinessError(
		WithStatus(http.StatusNotFound),
		WithErrorMessage(msg),
	)
}

func InternalError(msg string, err error) *BusinessError {
	return NewBusinessError(
		WithStatus(http.StatusInternalServerError),
		WithErrorMessage(msg),
		WithError(err),
	)
}
