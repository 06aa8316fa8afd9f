package response

type ResponseCode int

// Response 错误响应的统一格式，成功响应直接返回资源本身
type Response struct {
	Message string       `json:"message"`
	Code    ResponseCode `json:"code"`
	Data    any          `json:"data"`
}

type ResponseOptions func(*Response)

func WithMessage(message string) ResponseOptions {
	return func(r *Response) {
		r.Message = message
	}
}

func WithCode(code ResponseCode) ResponseOptions {
	return func(r *Response) {
		r.Code = code
	}
}

func WithData(data any) ResponseOptions {
	return func(r *Response) {
		r.Data = data
	}
}

func CustomResponse(opts ...ResponseOptions) Response {
	response := Response{}
	for _, opt := range opts {
		opt(&response)
	}
	return response
}

func ErrorResponse(code ResponseCode, msg string) Response {
	return Response{
		Message: msg,
		Code:    code,
		Data:    nil,
	}
}
