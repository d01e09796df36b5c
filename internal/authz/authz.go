// Package authz is the authorization engine: pure decision functions over
// facts the caller has already gathered from the store. Keeping the rules
// free of I/O makes every permission decision unit-testable independent of
// transport and persistence, and forces callers to fetch fresh state rather
// than trusting token claims.
package authz

import "github.com/bizdesk/bizdesk-backend-go/internal/domain/user"

// Actor is the authenticated identity making a request, resolved from
// current store state (not from token claims alone).
type Actor struct {
	ID              string
	Email           string
	Role            user.Role
	ClientCompanyID *string
}

// Decision is an allow/deny with a caller-facing reason on deny.
type Decision struct {
	Allowed bool
	Reason  string
}

// ForbiddenError carries a deny reason out of a service so the transport
// layer can answer 403 with the exact decision message.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return e.Reason
}

// Err converts a deny into a ForbiddenError; an allow yields nil.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &ForbiddenError{Reason: d.Reason}
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Peer is one side of a messaging pair.
type Peer struct {
	ID              string
	Role            user.Role
	ClientCompanyID *string
}

// CanMessage decides the pairwise messaging rule. sharedAssignment reports
// whether the employee in an EMPLOYEE/CLIENT pair holds at least one
// assignment on a project belonging to the client's company; it is ignored
// for every other pairing. The same rule gates message creation and
// conversation reads.
func CanMessage(sender, receiver Peer, sharedAssignment bool) Decision {
	if sender.ID == receiver.ID {
		return deny("You cannot message yourself")
	}
	if sender.Role == user.RoleAdmin || receiver.Role == user.RoleAdmin {
		return allow()
	}
	if sender.Role == user.RoleEmployee && receiver.Role == user.RoleClient {
		if receiver.ClientCompanyID == nil || !sharedAssignment {
			return deny("You are not allowed to message this user")
		}
		return allow()
	}
	if sender.Role == user.RoleClient && receiver.Role == user.RoleEmployee {
		if sender.ClientCompanyID == nil || !sharedAssignment {
			return deny("You are not allowed to message this user")
		}
		return allow()
	}
	return deny("You are not allowed to message this user")
}

// ProjectFacts is the ownership state of one project.
type ProjectFacts struct {
	ClientCompanyID     string
	AssignedEmployeeIDs []string
}

func (p ProjectFacts) isAssigned(employeeID string) bool {
	for _, id := range p.AssignedEmployeeIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

// CanViewProject: ADMIN sees all, EMPLOYEE only assigned projects, CLIENT
// only projects of their own company.
func CanViewProject(actor Actor, p ProjectFacts) Decision {
	switch actor.Role {
	case user.RoleAdmin:
		return allow()
	case user.RoleEmployee:
		if p.isAssigned(actor.ID) {
			return allow()
		}
	case user.RoleClient:
		if actor.ClientCompanyID != nil && *actor.ClientCompanyID == p.ClientCompanyID {
			return allow()
		}
	}
	return deny("You are not allowed to view this project")
}

// CanUpdateProjectStatus: ADMIN, or an employee present in the project's
// assignment list.
func CanUpdateProjectStatus(actor Actor, p ProjectFacts) Decision {
	if actor.Role == user.RoleAdmin {
		return allow()
	}
	if actor.Role == user.RoleEmployee && p.isAssigned(actor.ID) {
		return allow()
	}
	return deny("Only assigned employees or ADMIN can update project status")
}

// CanUnassign: ADMIN only, and never against the admin's own user id. The
// self check is an identity-equality guard, applied whether or not the
// assignment row exists.
func CanUnassign(actor Actor, employeeID string) Decision {
	if actor.Role != user.RoleAdmin {
		return deny("Only ADMIN can unassign employees")
	}
	if actor.ID == employeeID {
		return deny("Cannot unassign yourself")
	}
	return allow()
}

// CanListCompanyProjects gates /clients/:id/projects: CLIENT only, and the
// id must be the caller's own company link. Admins use the general project
// listing instead.
func CanListCompanyProjects(actor Actor, companyID string) Decision {
	if actor.Role != user.RoleClient {
		return deny("Only CLIENT can access this endpoint")
	}
	if actor.ClientCompanyID == nil || *actor.ClientCompanyID != companyID {
		return deny("You can only view your own company projects")
	}
	return allow()
}

// CanCreateServiceRequest: CLIENT only, for their own linked company, and
// the payload's company id must match the link exactly.
func CanCreateServiceRequest(actor Actor, payloadClientID string) Decision {
	if actor.Role != user.RoleClient {
		return deny("Only CLIENT can create service requests")
	}
	if actor.ClientCompanyID == nil {
		return deny("User must be linked to a client company")
	}
	if *actor.ClientCompanyID != payloadClientID {
		return deny("clientId must match your client company")
	}
	return allow()
}

// CanApproveServiceRequest: ADMIN only.
func CanApproveServiceRequest(actor Actor) Decision {
	if actor.Role != user.RoleAdmin {
		return deny("Only ADMIN can approve service requests")
	}
	return allow()
}
