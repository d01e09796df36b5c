package message

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizdesk/bizdesk-backend-go/internal/authz"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/message"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/project"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
)

// Display categories for chat partner groups. Admins read as "Management"
// to employees but "Support" to clients; client partners are grouped under
// their company's name.
const (
	categoryManagement  = "Management"
	categorySupport     = "Support"
	categoryProjectTeam = "Project Team"
	categoryClient      = "Client"
)

type MessageServiceImpl struct {
	message.MessageRepository
	user.UserRepository
	project.ProjectRepository
}

func NewMessageService(messageRepository message.MessageRepository, userRepository user.UserRepository, projectRepository project.ProjectRepository) message.MessageService {
	return &MessageServiceImpl{
		MessageRepository: messageRepository,
		UserRepository:    userRepository,
		ProjectRepository: projectRepository,
	}
}

// Send implements message.MessageService.
func (s *MessageServiceImpl) Send(ctx context.Context, actor authz.Actor, req message.CreateMessageRequest) (message.Message, error) {
	if err := req.Validate(); err != nil {
		return message.Message{}, err
	}

	receiver, err := s.livePeer(ctx, req.ReceiverID)
	if err != nil {
		return message.Message{}, err
	}

	decision, err := s.decideMessaging(ctx, actorPeer(actor), receiver)
	if err != nil {
		return message.Message{}, err
	}
	if err := decision.Err(); err != nil {
		return message.Message{}, err
	}

	created, err := s.MessageRepository.Create(ctx, message.Message{
		SenderID:   actor.ID,
		ReceiverID: receiver.ID,
		Content:    req.Content,
	})
	if err != nil {
		return message.Message{}, fmt.Errorf("failed to create message: %w", err)
	}
	return created, nil
}

// Conversation implements message.MessageService.
func (s *MessageServiceImpl) Conversation(ctx context.Context, actor authz.Actor, query message.ConversationQuery) (message.ConversationResponse, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 || query.Limit > 100 {
		query.Limit = 20
	}

	peer, err := s.livePeer(ctx, query.PeerID)
	if err != nil {
		return message.ConversationResponse{}, err
	}

	decision, err := s.decideMessaging(ctx, actorPeer(actor), peer)
	if err != nil {
		return message.ConversationResponse{}, err
	}
	if !decision.Allowed {
		return message.ConversationResponse{}, message.ErrConversationNotAllowed
	}

	items, total, err := s.MessageRepository.Conversation(ctx, actor.ID, peer.ID, query.Page, query.Limit)
	if err != nil {
		return message.ConversationResponse{}, fmt.Errorf("failed to load conversation: %w", err)
	}
	if items == nil {
		items = []message.Message{}
	}
	return message.ConversationResponse{
		Items: items,
		Total: total,
		Page:  query.Page,
		Limit: query.Limit,
	}, nil
}

// ChatPartners implements message.MessageService. The listing and the
// send-time rule must agree: every partner returned here passes CanMessage,
// and nobody else does.
func (s *MessageServiceImpl) ChatPartners(ctx context.Context, actor authz.Actor) ([]message.ChatPartner, error) {
	switch actor.Role {
	case user.RoleAdmin:
		return s.adminPartners(ctx, actor)
	case user.RoleEmployee:
		return s.employeePartners(ctx, actor)
	case user.RoleClient:
		return s.clientPartners(ctx, actor)
	}
	return []message.ChatPartner{}, nil
}

// adminPartners: every active user except the admin themselves.
func (s *MessageServiceImpl) adminPartners(ctx context.Context, actor authz.Actor) ([]message.ChatPartner, error) {
	users, err := s.UserRepository.ListActiveExcept(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	partners := make([]message.ChatPartner, 0, len(users))
	for i := range users {
		u := &users[i]
		category := string(u.Role)
		if u.CompanyName != nil {
			category = *u.CompanyName
		}
		partners = append(partners, message.ChatPartner{
			ID:       u.ID,
			Name:     u.Name,
			Role:     u.Role,
			Category: category,
		})
	}
	return partners, nil
}

// employeePartners: all admins, plus clients of the companies whose projects
// the employee is assigned to, grouped by company name.
func (s *MessageServiceImpl) employeePartners(ctx context.Context, actor authz.Actor) ([]message.ChatPartner, error) {
	partners, err := s.adminsAsPartners(ctx, actor.ID, categoryManagement)
	if err != nil {
		return nil, err
	}

	companyIDs, err := s.ProjectRepository.CompanyIDsForEmployee(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned companies: %w", err)
	}
	if len(companyIDs) == 0 {
		return partners, nil
	}

	clients, err := s.UserRepository.ListActiveClientsByCompanies(ctx, companyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	for i := range clients {
		c := &clients[i]
		category := categoryClient
		if c.CompanyName != nil {
			category = *c.CompanyName
		}
		partners = append(partners, message.ChatPartner{
			ID:       c.ID,
			Name:     c.Name,
			Role:     c.Role,
			Category: category,
		})
	}
	return partners, nil
}

// clientPartners: all admins, plus employees assigned to any project of the
// client's company.
func (s *MessageServiceImpl) clientPartners(ctx context.Context, actor authz.Actor) ([]message.ChatPartner, error) {
	partners, err := s.adminsAsPartners(ctx, actor.ID, categorySupport)
	if err != nil {
		return nil, err
	}
	if actor.ClientCompanyID == nil {
		return partners, nil
	}

	employees, err := s.ProjectRepository.ListEmployeesAssignedToCompany(ctx, *actor.ClientCompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned employees: %w", err)
	}
	for i := range employees {
		e := &employees[i]
		partners = append(partners, message.ChatPartner{
			ID:       e.ID,
			Name:     e.Name,
			Role:     e.Role,
			Category: categoryProjectTeam,
		})
	}
	return partners, nil
}

func (s *MessageServiceImpl) adminsAsPartners(ctx context.Context, selfID, category string) ([]message.ChatPartner, error) {
	admins, err := s.UserRepository.ListActiveByRole(ctx, user.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	partners := make([]message.ChatPartner, 0, len(admins))
	for i := range admins {
		a := &admins[i]
		if a.ID == selfID {
			continue
		}
		partners = append(partners, message.ChatPartner{
			ID:       a.ID,
			Name:     a.Name,
			Role:     a.Role,
			Category: category,
		})
	}
	return partners, nil
}

// decideMessaging gathers the shared-assignment fact for EMPLOYEE/CLIENT
// pairs and applies the pairwise rule.
func (s *MessageServiceImpl) decideMessaging(ctx context.Context, sender, receiver authz.Peer) (authz.Decision, error) {
	sharedAssignment := false

	var employeeID string
	var companyID *string
	switch {
	case sender.Role == user.RoleEmployee && receiver.Role == user.RoleClient:
		employeeID, companyID = sender.ID, receiver.ClientCompanyID
	case sender.Role == user.RoleClient && receiver.Role == user.RoleEmployee:
		employeeID, companyID = receiver.ID, sender.ClientCompanyID
	}
	if employeeID != "" && companyID != nil {
		var err error
		sharedAssignment, err = s.ProjectRepository.HasAssignmentForCompany(ctx, employeeID, *companyID)
		if err != nil {
			return authz.Decision{}, fmt.Errorf("failed to check shared assignment: %w", err)
		}
	}

	return authz.CanMessage(sender, receiver, sharedAssignment), nil
}

// livePeer loads the peer and treats a deactivated account as nonexistent.
func (s *MessageServiceImpl) livePeer(ctx context.Context, id string) (authz.Peer, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return authz.Peer{}, message.ErrReceiverNotFound
		}
		return authz.Peer{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !u.IsActive {
		return authz.Peer{}, message.ErrReceiverNotFound
	}
	return authz.Peer{ID: u.ID, Role: u.Role, ClientCompanyID: u.ClientCompanyID}, nil
}

func actorPeer(actor authz.Actor) authz.Peer {
	return authz.Peer{ID: actor.ID, Role: actor.Role, ClientCompanyID: actor.ClientCompanyID}
}
