// internal/domain/errors.go
package domain

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrStatusConflict      = errors.New("status changed by another operation")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrOutOfDeliveryRadius = errors.New("distance exceeds delivery radius")
	ErrAdminExists         = errors.New("admin already exists")
)
