package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/rtrack/rtrack-backend-go/internal/config"
	handler "github.com/rtrack/rtrack-backend-go/internal/handler/http"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/database"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/jwt"
	"github.com/rtrack/rtrack-backend-go/internal/repository/postgresql"
	attendanceService "github.com/rtrack/rtrack-backend-go/internal/service/attendance"
	authService "github.com/rtrack/rtrack-backend-go/internal/service/auth"
	complianceService "github.com/rtrack/rtrack-backend-go/internal/service/compliance"
	employeeService "github.com/rtrack/rtrack-backend-go/internal/service/employee"
	exceptionService "github.com/rtrack/rtrack-backend-go/internal/service/exception"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Repositories
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	complianceRepo := postgresql.NewComplianceRepository(db)
	exceptionRepo := postgresql.NewExceptionRepository(db)

	// Services
	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	authSvc, err := authService.NewAuthService(cfg, employeeRepo, jwtSvc)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	complianceSvc := complianceService.NewComplianceService(complianceRepo, attendanceRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, complianceSvc)
	exceptionSvc := exceptionService.NewExceptionService(exceptionRepo, employeeRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	employeeHandler := handler.NewEmployeeHandler(employeeSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc)
	complianceHandler := handler.NewComplianceHandler(complianceSvc)
	exceptionHandler := handler.NewExceptionHandler(exceptionSvc)

	router := handler.NewRouter(
		cfg,
		db,
		jwtSvc,
		authHandler,
		employeeHandler,
		attendanceHandler,
		complianceHandler,
		exceptionHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Printf("Server starting on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
