package project

import "github.com/bizdesk/bizdesk-backend-go/internal/pkg/validator"

type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ClientID    string  `json:"clientId"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "clientId",
			Message: "clientId is required",
		})
	} else if !validator.IsValidUUID(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "clientId",
			Message: "clientId must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignProjectRequest struct {
	EmployeeIDs []string `json:"employeeIds"`
}

func (r *AssignProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeIds",
			Message: "employeeIds must not be empty",
		})
	}
	for _, id := range r.EmployeeIDs {
		if !validator.IsValidUUID(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "employeeIds",
				Message: "employeeIds must contain valid UUIDs",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProjectStatusRequest struct {
	Status Status `json:"status"`
}

func (r *UpdateProjectStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !ValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of NOT_STARTED, IN_PROGRESS, COMPLETED",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
