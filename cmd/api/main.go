package main

import (
	"fmt"
	"net/http"

	"github.com/bizdesk/bizdesk-backend-go/internal/config"
	appHTTP "github.com/bizdesk/bizdesk-backend-go/internal/handler/http"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/database"
	"github.com/bizdesk/bizdesk-backend-go/internal/pkg/jwt"
	"github.com/bizdesk/bizdesk-backend-go/internal/repository/postgresql"
	authService "github.com/bizdesk/bizdesk-backend-go/internal/service/auth"
	catalogService "github.com/bizdesk/bizdesk-backend-go/internal/service/catalog"
	clientService "github.com/bizdesk/bizdesk-backend-go/internal/service/client"
	messageService "github.com/bizdesk/bizdesk-backend-go/internal/service/message"
	projectService "github.com/bizdesk/bizdesk-backend-go/internal/service/project"
	requestService "github.com/bizdesk/bizdesk-backend-go/internal/service/request"
	statsService "github.com/bizdesk/bizdesk-backend-go/internal/service/stats"
	userService "github.com/bizdesk/bizdesk-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewClientCompanyRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	serviceRepo := postgresql.NewServiceRepository(db)
	requestRepo := postgresql.NewServiceRequestRepository(db)
	messageRepo := postgresql.NewMessageRepository(db)
	statsRepo := postgresql.NewStatsRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(userRepo, companyRepo)
	companySvc := clientService.NewClientCompanyService(companyRepo)
	projectSvc := projectService.NewProjectService(db, projectRepo, companyRepo, userRepo)
	catalogSvc := catalogService.NewCatalogService(serviceRepo)
	requestSvc := requestService.NewServiceRequestService(db, requestRepo, serviceRepo, companyRepo, projectRepo)
	messageSvc := messageService.NewMessageService(messageRepo, userRepo, projectRepo)
	statsSvc := statsService.NewStatsService(statsRepo)

	router := appHTTP.NewRouter(cfg, jwtService, authSvc, appHTTP.Handlers{
		Auth:           appHTTP.NewAuthHandler(jwtService, authSvc),
		User:           appHTTP.NewUserHandler(userSvc),
		ClientCompany:  appHTTP.NewClientCompanyHandler(companySvc, projectSvc),
		Project:        appHTTP.NewProjectHandler(projectSvc),
		Service:        appHTTP.NewServiceHandler(catalogSvc),
		ServiceRequest: appHTTP.NewServiceRequestHandler(requestSvc),
		Message:        appHTTP.NewMessageHandler(messageSvc),
		Stats:          appHTTP.NewStatsHandler(statsSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
