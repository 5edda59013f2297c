package util

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrValidation 参数校验失败，返回 4xx，不应自动重试
	ErrValidation = errors.New("validation failed")
	// ErrNotFound 请求的资源不存在
	ErrNotFound = errors.New("resource not found")
	// ErrStoreUnavailable 存储访问失败，整个调用可以安全重试
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError 携带可以直接返回给调用方的提示信息
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError 资源不存在，Message 直接返回给调用方
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func NewNotFoundError(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// StoreError 包装底层存储错误，op 为出错的操作名
func StoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}

// IsNotFound gorm 未找到记录
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
