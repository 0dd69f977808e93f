package shared

import (
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrorKind phân loại lỗi để handler map sang HTTP status
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// AppError là domain error dùng chung cho mọi domain
// Code ổn định (ORD001, PAY002...) để client xử lý, Message là thông báo hiển thị
type AppError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Details interface{}
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is so sánh theo Code, để errors.Is(err, ErrOrderNotFound) vẫn đúng với bản copy đã Wrap
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Wrap trả về bản copy gắn cause, không sửa sentinel gốc
func (e *AppError) Wrap(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

// WithMessage trả về bản copy với message khác
func (e *AppError) WithMessage(msg string) *AppError {
	cp := *e
	cp.Message = msg
	return &cp
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

func NewError(kind ErrorKind, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) *AppError {
	return NewError(KindValidation, code, message)
}

func Unauthorized(code, message string) *AppError {
	return NewError(KindUnauthorized, code, message)
}

func Forbidden(code, message string) *AppError {
	return NewError(KindForbidden, code, message)
}

func NotFound(code, message string) *AppError {
	return NewError(KindNotFound, code, message)
}

func Conflict(code, message string) *AppError {
	return NewError(KindConflict, code, message)
}

func Internal(code, message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Code: code, Message: message, Err: err}
}

// FieldError - một lỗi validation gắn với field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var ErrValidationFailed = Validation("VAL001", "Dữ liệu không hợp lệ")

// ValidationFailed chuyển lỗi của ozzo-validation thành AppError với danh sách field
// Lỗi khác (internal rule error) được trả nguyên
func ValidationFailed(err error) error {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		var internal validation.InternalError
		if errors.As(err, &internal) {
			return Internal("VAL500", "Validation rule failed", err)
		}
		return ErrValidationFailed.WithMessage(err.Error())
	}

	fields := FieldErrors(verrs)
	msg := ErrValidationFailed.Message
	if len(fields) > 0 {
		msg = fields[0].Message
	}
	return ErrValidationFailed.WithMessage(msg).WithDetails(fields)
}

// FieldErrors flatten validation.Errors, sắp xếp theo tên field cho ổn định
func FieldErrors(verrs validation.Errors) []FieldError {
	fields := make([]FieldError, 0, len(verrs))
	for field, ferr := range verrs {
		if ferr == nil {
			continue
		}
		fields = append(fields, FieldError{Field: field, Message: ferr.Error()})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
	return fields
}

// KindOf trả về kind của error, mặc định Internal
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
