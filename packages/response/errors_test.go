package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessError_Status(t *testing.T) {
	tests := []struct {
		code     ResponseCode
		expected int
	}{
		{code: ParseError, expected: http.StatusBadRequest},
		{code: BadRequest, expected: http.StatusBadRequest},
		{code: InvalidParameter, expected: http.StatusUnprocessableEntity},
		{code: Duplicate, expected: http.StatusUnprocessableEntity},
		{code: Unauthorized, expected: http.StatusUnauthorized},
		{code: Forbidden, expected: http.StatusForbidden},
		{code: NotFound, expected: http.StatusNotFound},
		{code: Fail, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		err := NewBusinessError(WithErrorCode(tt.code))
		assert.Equal(t, tt.expected, err.Status(), "code %d", tt.code)
	}
}

func TestBusinessError_Wrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewBusinessError(
		WithErrorCode(Fail),
		WithErrorMessage("查询失败"),
		WithError(cause),
	)

	assert.Equal(t, "查询失败: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)

	plain := NewBusinessError()
	assert.Equal(t, "business error", plain.Error())
	assert.Equal(t, Fail, plain.Code)
}

func TestErrorResponse(t *testing.T) {
	resp := ErrorResponse(NotFound, "article not found")
	assert.Equal(t, Response{Message: "article not found", Code: NotFound}, resp)

	custom := CustomResponse(WithCode(ParseError), WithMessage("bad"), WithData([]string{"title"}))
	assert.Equal(t, ParseError, custom.Code)
	assert.Equal(t, []string{"title"}, custom.Data)
}
