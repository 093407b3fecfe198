package response

// ErrorBody 统一的错误响应体
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func NewErrorBody(msg string) ErrorBody {
	return ErrorBody{Error: msg}
}
