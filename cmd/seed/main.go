package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bizdesk/bizdesk-backend-go/internal/config"
	"github.com/bizdesk/bizdesk-backend-go/internal/domain/user"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/database"
	"github.com/bizdesk/bizdesk-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the first ADMIN account from SEED_ADMIN_* env vars. Running it twice
// is safe: an existing account with the same email is left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}
	if cfg.Seed.AdminPassword == "" {
		log.Fatal("SEED_ADMIN_PASS is required")
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	ctx := context.Background()

	existing, err := userRepo.GetByEmail(ctx, cfg.Seed.AdminEmail)
	if err == nil {
		fmt.Printf("Admin %s already exists (id %s), nothing to do\n", existing.Email, existing.ID)
		return
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		log.Fatal("Error checking admin account: ", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error hashing password: ", err)
	}

	created, err := userRepo.Create(ctx, user.User{
		Name:         cfg.Seed.AdminName,
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
		IsActive:     true,
	})
	if err != nil {
		log.Fatal("Error creating admin account: ", err)
	}
	fmt.Printf("Created admin %s (id %s)\n", created.Email, created.ID)
}
