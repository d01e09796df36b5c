package project

import "errors"

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrInvalidEmployees   = errors.New("some IDs are not valid employees")
)
