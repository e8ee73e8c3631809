package apperrors

import "errors"

// 找不到資料：訊息即為 404 回應的 message
var (
	ErrDepartmentNotFound = errors.New("Department not found")
	ErrRoleNotFound       = errors.New("Role not found")
	ErrEventTypeNotFound  = errors.New("Event type not found")
	ErrEventNotFound      = errors.New("Event not found")
	ErrMemberNotFound     = errors.New("Member not found")
)

var (
	ErrMemberEmailTaken    = errors.New("Member has already registered with this email address")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidID           = errors.New("Invalid id")
	ErrUnknownFilterField  = errors.New("unknown filter field")
	ErrInternalServerError = errors.New("Internal server error")
)
