package serverutils

// BaseResponse is the envelope every API response is wrapped in.
type BaseResponse[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) BaseResponse[any] {
	return BaseResponse[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// ErrorResponseWithDetail carries the underlying failure next to the message.
func ErrorResponseWithDetail(code int, message, detail string) BaseResponse[any] {
	res := ErrorResponse(code, message)
	res.Error = detail
	return res
}
