package request

import "github.com/bizdesk/bizdesk-backend-go/internal/pkg/validator"

type CreateServiceRequestRequest struct {
	ClientID  string  `json:"clientId"`
	ServiceID string  `json:"serviceId"`
	Details   *string `json:"details"`
}

func (r *CreateServiceRequestRequest) Validate() error {
	var errs validator.ValidationErrors

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
	if validator.IsEmpty(r.ServiceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "serviceId",
			Message: "serviceId is required",
		})
	} else if !validator.IsValidUUID(r.ServiceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "serviceId",
			Message: "serviceId must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
