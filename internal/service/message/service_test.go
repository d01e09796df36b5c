package message

import (
	"context"
	"testing"
	"time"

	"github.com/bizdesk/bizdesk-backend-go/internal/authz"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/message"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/project"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	companyA = "11111111-1111-4111-8111-111111111111"
	companyB = "22222222-2222-4222-8222-222222222222"
	validID  = "33333333-3333-4333-8333-333333333333"
)

type fakeUserRepo struct {
	user.UserRepository
	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) ListActiveExcept(_ context.Context, id string) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.ID != id && u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) ListActiveByRole(_ context.Context, role user.Role) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.Role == role && u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) ListActiveClientsByCompanies(_ context.Context, companyIDs []string) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.Role != user.RoleClient || !u.IsActive || u.ClientCompanyID == nil {
			continue
		}
		for _, id := range companyIDs {
			if *u.ClientCompanyID == id {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

// fakeProjectRepo models assignments as employee -> companies.
type fakeProjectRepo struct {
	project.ProjectRepository
	assignments map[string][]string
	employees   map[string]user.User
}

func (f *fakeProjectRepo) HasAssignmentForCompany(_ context.Context, employeeID, companyID string) (bool, error) {
	for _, c := range f.assignments[employeeID] {
		if c == companyID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProjectRepo) CompanyIDsForEmployee(_ context.Context, employeeID string) ([]string, error) {
	return f.assignments[employeeID], nil
}

func (f *fakeProjectRepo) ListEmployeesAssignedToCompany(_ context.Context, companyID string) ([]user.User, error) {
	var out []user.User
	for employeeID, companies := range f.assignments {
		for _, c := range companies {
			if c == companyID {
				if u, ok := f.employees[employeeID]; ok && u.IsActive {
					out = append(out, u)
				}
				break
			}
		}
	}
	return out, nil
}

type fakeMessageRepo struct {
	message.MessageRepository
	messages []message.Message
}

func (f *fakeMessageRepo) Create(_ context.Context, m message.Message) (message.Message, error) {
	m.ID = validID
	m.CreatedAt = time.Now()
	f.messages = append(f.messages, m)
	return m, nil
}

func (f *fakeMessageRepo) Conversation(_ context.Context, userID, peerID string, page, limit int) ([]message.Message, int64, error) {
	var out []message.Message
	for _, m := range f.messages {
		if (m.SenderID == userID && m.ReceiverID == peerID) || (m.SenderID == peerID && m.ReceiverID == userID) {
			out = append(out, m)
		}
	}
	return out, int64(len(out)), nil
}

// The fixture: one admin, two employees, two clients in different companies.
// emp-1 is assigned to a project of company A; emp-2 has no assignments.
func newFixture() (*fakeUserRepo, *fakeProjectRepo, *fakeMessageRepo, message.MessageService) {
	cA, cB := companyA, companyB
	users := map[string]user.User{
		"admin-1": {ID: "admin-1", Name: "Ada", Role: user.RoleAdmin, IsActive: true},
		"emp-1":   {ID: "emp-1", Name: "Eve", Role: user.RoleEmployee, IsActive: true},
		"emp-2":   {ID: "emp-2", Name: "Eli", Role: user.RoleEmployee, IsActive: true},
		"cli-a":   {ID: "cli-a", Name: "Cora", Role: user.RoleClient, IsActive: true, ClientCompanyID: &cA, CompanyName: strPtr("Acme Corp")},
		"cli-b":   {ID: "cli-b", Name: "Carl", Role: user.RoleClient, IsActive: true, ClientCompanyID: &cB, CompanyName: strPtr("Beta LLC")},
		"gone-1":  {ID: "gone-1", Name: "Gone", Role: user.RoleEmployee, IsActive: false},
	}
	userRepo := &fakeUserRepo{users: users}
	projectRepo := &fakeProjectRepo{
		assignments: map[string][]string{"emp-1": {companyA}},
		employees:   users,
	}
	messageRepo := &fakeMessageRepo{}
	svc := NewMessageService(messageRepo, userRepo, projectRepo)
	return userRepo, projectRepo, messageRepo, svc
}

func strPtr(s string) *string { return &s }

func actorFor(u user.User) authz.Actor {
	return authz.Actor{ID: u.ID, Role: u.Role, ClientCompanyID: u.ClientCompanyID}
}

func TestSendAllowedPairs(t *testing.T) {
	userRepo, _, _, svc := newFixture()
	ctx := context.Background()

	cases := []struct {
		name     string
		sender   string
		receiver string
	}{
		{"admin to employee", "admin-1", "emp-1"},
		{"admin to client", "admin-1", "cli-a"},
		{"employee to admin", "emp-2", "admin-1"},
		{"client to admin", "cli-b", "admin-1"},
		{"assigned employee to client", "emp-1", "cli-a"},
		{"client to assigned employee", "cli-a", "emp-1"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			created, err := svc.Send(ctx, actorFor(userRepo.users[tt.sender]), message.CreateMessageRequest{
				ReceiverID: tt.receiver,
				Content:    "hello",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.sender, created.SenderID)
			assert.Equal(t, tt.receiver, created.ReceiverID)
		})
	}
}

func TestSendForbiddenPairs(t *testing.T) {
	userRepo, _, _, svc := newFixture()
	ctx := context.Background()

	cases := []struct {
		name     string
		sender   string
		receiver string
	}{
		{"self", "admin-1", "admin-1"},
		{"unassigned employee to client", "emp-2", "cli-a"},
		{"assigned employee to other company's client", "emp-1", "cli-b"},
		{"client to unassigned employee", "cli-a", "emp-2"},
		{"employee to employee", "emp-1", "emp-2"},
		{"client to client", "cli-a", "cli-b"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Send(ctx, actorFor(userRepo.users[tt.sender]), message.CreateMessageRequest{
				ReceiverID: tt.receiver,
				Content:    "hello",
			})
			var forbidden *authz.ForbiddenError
			assert.ErrorAs(t, err, &forbidden)
		})
	}
}

func TestSendToDeactivatedOrUnknownReceiver(t *testing.T) {
	userRepo, _, _, svc := newFixture()
	ctx := context.Background()
	admin := actorFor(userRepo.users["admin-1"])

	_, err := svc.Send(ctx, admin, message.CreateMessageRequest{ReceiverID: "gone-1", Content: "hi"})
	assert.ErrorIs(t, err, message.ErrReceiverNotFound)

	_, err = svc.Send(ctx, admin, message.CreateMessageRequest{ReceiverID: validID, Content: "hi"})
	assert.ErrorIs(t, err, message.ErrReceiverNotFound)
}

func TestConversationAppliesMessagingRule(t *testing.T) {
	userRepo, _, _, svc := newFixture()
	ctx := context.Background()

	// Seed one exchanged message via the allowed pair.
	_, err := svc.Send(ctx, actorFor(userRepo.users["emp-1"]), message.CreateMessageRequest{
		ReceiverID: "cli-a", Content: "status update",
	})
	require.NoError(t, err)

	conv, err := svc.Conversation(ctx, actorFor(userRepo.users["cli-a"]), message.ConversationQuery{PeerID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), conv.Total)
	require.Len(t, conv.Items, 1)
	assert.Equal(t, "status update", conv.Items[0].Content)

	// An unrelated pairing cannot read history either.
	_, err = svc.Conversation(ctx, actorFor(userRepo.users["emp-2"]), message.ConversationQuery{PeerID: "cli-a"})
	assert.ErrorIs(t, err, message.ErrConversationNotAllowed)
}

// Every listed partner must pass the send rule, and every legal peer must be
// listed. The two views of "who can I talk to" cannot drift apart.
func TestChatPartnersMatchesCanMessage(t *testing.T) {
	userRepo, projectRepo, _, svc := newFixture()
	ctx := context.Background()

	for actorID, actorUser := range userRepo.users {
		if !actorUser.IsActive {
			continue
		}
		actor := actorFor(actorUser)

		partners, err := svc.ChatPartners(ctx, actor)
		require.NoError(t, err)

		listed := make(map[string]bool, len(partners))
		for _, p := range partners {
			listed[p.ID] = true
		}

		for peerID, peerUser := range userRepo.users {
			if !peerUser.IsActive || peerID == actorID {
				continue
			}
			sender := authz.Peer{ID: actor.ID, Role: actor.Role, ClientCompanyID: actor.ClientCompanyID}
			receiver := authz.Peer{ID: peerUser.ID, Role: peerUser.Role, ClientCompanyID: peerUser.ClientCompanyID}

			shared := false
			switch {
			case sender.Role == user.RoleEmployee && receiver.Role == user.RoleClient && receiver.ClientCompanyID != nil:
				shared, _ = projectRepo.HasAssignmentForCompany(ctx, sender.ID, *receiver.ClientCompanyID)
			case sender.Role == user.RoleClient && receiver.Role == user.RoleEmployee && sender.ClientCompanyID != nil:
				shared, _ = projectRepo.HasAssignmentForCompany(ctx, receiver.ID, *sender.ClientCompanyID)
			}

			allowed := authz.CanMessage(sender, receiver, shared).Allowed
			assert.Equal(t, allowed, listed[peerID], "actor %s peer %s", actorID, peerID)
		}
	}
}

func TestChatPartnerCategories(t *testing.T) {
	userRepo, _, _, svc := newFixture()
	ctx := context.Background()

	byID := func(partners []message.ChatPartner, id string) *message.ChatPartner {
		for i := range partners {
			if partners[i].ID == id {
				return &partners[i]
			}
		}
		return nil
	}

	adminPartners, err := svc.ChatPartners(ctx, actorFor(userRepo.users["admin-1"]))
	require.NoError(t, err)
	require.NotNil(t, byID(adminPartners, "emp-1"))
	assert.Equal(t, string(user.RoleEmployee), byID(adminPartners, "emp-1").Category)
	require.NotNil(t, byID(adminPartners, "cli-a"))
	assert.Equal(t, "Acme Corp", byID(adminPartners, "cli-a").Category)

	empPartners, err := svc.ChatPartners(ctx, actorFor(userRepo.users["emp-1"]))
	require.NoError(t, err)
	require.NotNil(t, byID(empPartners, "admin-1"))
	assert.Equal(t, "Management", byID(empPartners, "admin-1").Category)
	require.NotNil(t, byID(empPartners, "cli-a"))
	assert.Equal(t, "Acme Corp", byID(empPartners, "cli-a").Category)

	cliPartners, err := svc.ChatPartners(ctx, actorFor(userRepo.users["cli-a"]))
	require.NoError(t, err)
	require.NotNil(t, byID(cliPartners, "admin-1"))
	assert.Equal(t, "Support", byID(cliPartners, "admin-1").Category)
	require.NotNil(t, byID(cliPartners, "emp-1"))
	assert.Equal(t, "Project Team", byID(cliPartners, "emp-1").Category)
}
