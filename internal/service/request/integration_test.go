package request

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/bizdesk/bizdesk-backend-go/internal/authz"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/catalog"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/project"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/request"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/database"
	"github.com/bizdesk/bizdesk-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var integrationDB *database.DB

// integrationInit connects to the database named by TEST_DATABASE_URL. The
// tests in this file need a real store because approval runs a transaction;
// without the env var they are skipped.
func integrationInit(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if integrationDB == nil {
		var err error
		integrationDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err, "failed to connect to test database")
	}
	return integrationDB
}

func truncateRequestTables(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()
	tables := []string{
		"messages",
		"project_employees",
		"projects",
		"service_requests",
		"services",
		"users",
		"client_companies",
	}
	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "failed to truncate table %s", table)
	}
}

// The full approval flow against the real store: a client files a request,
// an admin approves it, and the PENDING→APPROVED flip plus the spawned
// project land together. A second approval changes nothing.
func TestApproveSpawnsProject(t *testing.T) {
	ctx := context.Background()
	db := integrationInit(t)
	truncateRequestTables(t, ctx, db)

	companyRepo := postgresql.NewClientCompanyRepository(db)
	serviceRepo := postgresql.NewServiceRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	requestRepo := postgresql.NewServiceRequestRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)

	company, err := companyRepo.Create(ctx, "Acme Corp")
	require.NoError(t, err)

	catalogService, err := serviceRepo.Create(ctx, catalog.Service{
		Name:  "SEO Audit",
		Price: "1200.00",
	})
	require.NoError(t, err)

	clientUser, err := userRepo.Create(ctx, user.User{
		Name:            "Cora",
		Email:           "cora@acme.example",
		PasswordHash:    "irrelevant-here",
		Role:            user.RoleClient,
		IsActive:        true,
		ClientCompanyID: &company.ID,
	})
	require.NoError(t, err)

	svc := NewServiceRequestService(db, requestRepo, serviceRepo, companyRepo, projectRepo)

	requester := authz.Actor{ID: clientUser.ID, Role: user.RoleClient, ClientCompanyID: clientUser.ClientCompanyID}
	details := "Quarterly audit for the landing pages"
	created, err := svc.Create(ctx, requester, request.CreateServiceRequestRequest{
		ClientID:  company.ID,
		ServiceID: catalogService.ID,
		Details:   &details,
	})
	require.NoError(t, err)
	require.Equal(t, request.StatusPending, created.Status)

	admin := authz.Actor{ID: "admin-1", Role: user.RoleAdmin}
	approved, err := svc.Approve(ctx, admin, created.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, approved.Status)

	// Exactly one project spawned, named after the service and the client,
	// carrying the request details.
	projects, err := projectRepo.ListByCompany(ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	spawned := projects[0]
	assert.Equal(t, "SEO Audit for Acme Corp", spawned.Name)
	require.NotNil(t, spawned.Description)
	assert.Equal(t, details, *spawned.Description)
	assert.Equal(t, company.ID, spawned.ClientID)
	assert.Equal(t, project.StatusNotStarted, spawned.Status)

	// Re-approval is rejected and leaves no second project behind.
	_, err = svc.Approve(ctx, admin, created.ID)
	assert.ErrorIs(t, err, request.ErrAlreadyApproved)

	projects, err = projectRepo.ListByCompany(ctx, company.ID)
	require.NoError(t, err)
	assert.Len(t, projects, 1)

	reloaded, err := requestRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, request.StatusApproved, reloaded.Status)
}
