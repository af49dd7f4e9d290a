package auth

import "errors"

var (
	ErrInvalidEmployeeID = errors.New("Invalid employee_id")
	ErrInvalidPassword   = errors.New("Invalid password")
	ErrInvalidToken      = errors.New("Could not validate credentials")
)
