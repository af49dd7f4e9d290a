package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rtrack/rtrack-backend-go/internal/config"
	"github.com/rtrack/rtrack-backend-go/internal/domain/auth"
	"github.com/rtrack/rtrack-backend-go/internal/domain/employee"
	"github.com/rtrack/rtrack-backend-go/internal/pkg/jwt"
)

type authServiceImpl struct {
	employeeRepo      employee.EmployeeRepository
	jwtService        jwt.Service
	adminUsername     string
	adminPasswordHash []byte
	adminEmployeeID   string
}

// NewAuthService hashes the configured admin password once at startup so
// login compares against a bcrypt digest, never the plaintext.
func NewAuthService(cfg *config.Config, employeeRepo employee.EmployeeRepository, jwtService jwt.Service) (auth.AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	return &authServiceImpl{
		employeeRepo:      employeeRepo,
		jwtService:        jwtService,
		adminUsername:     cfg.Admin.Username,
		adminPasswordHash: hash,
		adminEmployeeID:   cfg.Admin.EmployeeID,
	}, nil
}

// Login implements auth.AuthService. The built-in admin authenticates with
// username and password; everyone else signs in with their employee_id
// alone, validated against the employee master table.
func (s *authServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	if req.Username == s.adminUsername {
		if err := bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(req.Password)); err != nil {
			return auth.TokenResponse{}, auth.ErrInvalidPassword
		}

		token, _, err := s.jwtService.GenerateAccessToken(s.adminEmployeeID, true)
		if err != nil {
			return auth.TokenResponse{}, fmt.Errorf("generate access token: %w", err)
		}
		return auth.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, req.Username)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidEmployeeID
		}
		return auth.TokenResponse{}, err
	}

	token, _, err := s.jwtService.GenerateAccessToken(emp.EmployeeID, false)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("generate access token: %w", err)
	}

	return auth.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Me implements auth.AuthService.
func (s *authServiceImpl) Me(ctx context.Context) (auth.MeResponse, error) {
	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return auth.MeResponse{}, auth.ErrInvalidToken
	}

	if identity.IsAdmin {
		return auth.MeResponse{
			EmployeeID:   identity.EmployeeID,
			EmployeeName: "System Admin",
			IsAdmin:      true,
			HasReportees: true,
		}, nil
	}

	emp, err := s.employeeRepo.GetByEmployeeID(ctx, identity.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.MeResponse{}, auth.ErrInvalidToken
		}
		return auth.MeResponse{}, err
	}

	reportees, err := s.employeeRepo.ReporteeIDs(ctx, emp.EmployeeID)
	if err != nil {
		return auth.MeResponse{}, err
	}

	return auth.MeResponse{
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.EmployeeName,
		IsAdmin:      false,
		HasReportees: len(reportees) > 0,
	}, nil
}
