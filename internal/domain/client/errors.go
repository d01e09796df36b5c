package client

import "errors"

var (
	ErrCompanyNotFound = errors.New("client company not found")
	// ErrCompanyInUse surfaces when deleting a company that users or
	// projects still reference. No cascade policy is defined; the store's
	// foreign keys are the arbiter.
	ErrCompanyInUse = errors.New("client company is referenced by users or projects")
)
