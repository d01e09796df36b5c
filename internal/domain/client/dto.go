package client

import "github.com/bizdesk/bizdesk-backend-go/internal/pkg/validator"

type CreateClientCompanyRequest struct {
	Name string `json:"name"`
}

func (r *CreateClientCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateClientCompanyRequest = CreateClientCompanyRequest
