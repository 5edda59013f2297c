package util

import (
	"errors"
	"istudy_lab_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:    code,
		Message: message,
	})
}

func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Unauthorized")
}

func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, "Forbidden")
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context) {
	Error(c, http.StatusNotFound, "Resource not found")
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func ServiceUnavailable(c *gin.Context, message string) {
	c.Header("Retry-After", "1")
	Error(c, http.StatusServiceUnavailable, message)
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	InternalServerError(c)
}

// HandleError 按错误类型映射 HTTP 状态码
func HandleError(c *gin.Context, err error, unavailableMsg string) {
	var ve *ValidationError
	var nf *NotFoundError
	switch {
	case errors.As(err, &ve):
		BadRequest(c, ve.Message)
	case errors.Is(err, ErrValidation):
		BadRequest(c, err.Error())
	case errors.As(err, &nf):
		Error(c, http.StatusNotFound, nf.Message)
	case errors.Is(err, ErrNotFound):
		NotFound(c)
	case errors.Is(err, ErrStoreUnavailable):
		logger.Log.Warn("store unavailable",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		ServiceUnavailable(c, unavailableMsg)
	default:
		LogInternalError(c, err)
	}
}
