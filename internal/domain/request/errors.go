package request

import "errors"

var (
	ErrRequestNotFound = errors.New("service request not found")
	ErrAlreadyApproved = errors.New("service request already approved")
)
