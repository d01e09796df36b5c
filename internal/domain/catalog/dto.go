package catalog

import "github.com/bizdesk/bizdesk-backend-go/internal/pkg/validator"

type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       string  `json:"price"`
}

func (r *CreateServiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Price) {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price is required",
		})
	} else if !validator.IsValidPrice(r.Price) {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price must be a non-negative decimal",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateServiceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
}

func (r *UpdateServiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Price != nil && !validator.IsValidPrice(*r.Price) {
		errs = append(errs, validator.ValidationError{
			Field:   "price",
			Message: "price must be a non-negative decimal",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
