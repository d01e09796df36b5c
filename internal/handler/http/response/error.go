package response

import (
	"errors"
	"net/http"

	"github.com/bizdesk/bizdesk-backend-go/internal/authz"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/auth"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/catalog"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/client"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/message"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/project"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/request"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/jwt"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.Messages())
		return
	}

	var forbidden *authz.ForbiddenError
	if errors.As(err, &forbidden) {
		Forbidden(w, forbidden.Reason)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrSessionInvalid):
		Unauthorized(w, "User not found or inactive")
	case errors.Is(err, auth.ErrRefreshCookieMissing),
		errors.Is(err, jwt.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "User with this email already exists")
	case errors.Is(err, user.ErrClientCompanyRequired):
		BadRequest(w, "CLIENT role requires clientCompanyId")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Client company domain errors
	case errors.Is(err, client.ErrCompanyNotFound):
		NotFound(w, "Client company not found")
	case errors.Is(err, client.ErrCompanyInUse):
		Conflict(w, "Client company is referenced by users or projects")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, project.ErrInvalidEmployees):
		BadRequest(w, "Some IDs are not valid employees")

	// Catalog domain errors
	case errors.Is(err, catalog.ErrServiceNotFound):
		NotFound(w, "Service not found")

	// Service request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Service request not found")
	case errors.Is(err, request.ErrAlreadyApproved):
		BadRequest(w, "Service request already approved")

	// Messaging domain errors
	case errors.Is(err, message.ErrReceiverNotFound):
		NotFound(w, "Receiver not found")
	case errors.Is(err, message.ErrConversationNotAllowed):
		Forbidden(w, "You are not allowed to view this conversation")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
