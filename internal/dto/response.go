package dto

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	res "terminal-terrace/medium/packages/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// SuccessResponse 成功时直接返回资源本身
func SuccessResponse(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	c.JSON(err.Status(), res.ErrorResponse(err.Code, err.Msg))
}

// FieldError 单个字段的校验失败信息
type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

// ValidationErrorResponse 处理验证错误，message 取第一个字段错误，data 列出全部字段
func ValidationErrorResponse(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		firstErr := validationErrs[0]
		jsonField := getJSONFieldName(firstErr)

		var message string
		switch firstErr.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", jsonField)
		case "email":
			message = fmt.Sprintf("%s must be a valid email", jsonField)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", jsonField, firstErr.Param())
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", jsonField, firstErr.Param())
		case "excludes":
			message = fmt.Sprintf("%s must not contain %q", jsonField, firstErr.Param())
		default:
			message = fmt.Sprintf("%s failed on %s", jsonField, firstErr.Tag())
		}

		fields := make([]FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, FieldError{
				Field: getJSONFieldName(fe),
				Tag:   fe.Tag(),
				Param: fe.Param(),
			})
		}

		c.JSON(http.StatusBadRequest, res.CustomResponse(
			res.WithCode(res.ParseError),
			res.WithMessage(message),
			res.WithData(fields),
		))
		return
	}

	// 非 validation 错误（JSON 格式错误等）
	ErrorResponse(c, res.NewBusinessError(
		res.WithErrorCode(res.ParseError),
		res.WithErrorMessage("invalid request body: "+err.Error()),
	))
}

// getJSONFieldName 请求体字段均为 camelCase，首字母小写即可还原
func getJSONFieldName(fe validator.FieldError) string {
	field := fe.Field()
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
