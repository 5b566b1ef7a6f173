package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"pallet-service/internal/pkg/logger"
)

// FieldError 单个字段的校验错误
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// respondValidation 返回422和逐字段的错误说明
func respondValidation(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"code":   http.StatusUnprocessableEntity,
		"msg":    "请求参数校验失败",
		"errors": fieldErrors(err),
	})
}

func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, FieldError{Field: fe.Field(), Rule: fe.Tag(), Param: fe.Param()})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []FieldError{{Field: typeErr.Field, Rule: "type", Param: typeErr.Type.String()}}
	}

	return []FieldError{{Field: "body", Rule: "json", Param: err.Error()}}
}

// respondStorage 记录错误并返回500，不把内部错误透给调用方
func respondStorage(c *gin.Context, msg string, err error) {
	logger.Errorf("%s: %v", msg, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"code": http.StatusInternalServerError,
		"msg":  msg,
	})
}
