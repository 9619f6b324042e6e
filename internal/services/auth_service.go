package services

import (
	"context"
	"errors"

	"ridehail/internal/models"
	"ridehail/internal/repositories/interfaces"
	"ridehail/internal/validators"
	"ridehail/pkg/logger"
)

type AuthService interface {
	// Login resolves a credential pair to the first matching principal,
	// searching customers, then drivers, then admins.
	Login(ctx context.Context, request *validators.LoginRequest) (*models.Principal, error)
}

type credentialSource struct {
	role   models.Role
	lookup func(ctx context.Context, identifier, password string) (*models.Principal, error)
}

type authService struct {
	sources []credentialSource
	logger  *logger.Logger
}

func NewAuthService(
	customerRepo interfaces.CustomerRepository,
	driverRepo interfaces.DriverRepository,
	adminRepo interfaces.AdminRepository,
	logger *logger.Logger,
) AuthService {
	return &authService{
		sources: []credentialSource{
			{
				role: models.RoleCustomer,
				lookup: func(ctx context.Context, email, password string) (*models.Principal, error) {
					customer, err := customerRepo.GetByCredentials(ctx, email, password)
					if err != nil {
						return nil, err
					}
					return &models.Principal{Role: models.RoleCustomer, Customer: customer}, nil
				},
			},
			{
				role: models.RoleDriver,
				lookup: func(ctx context.Context, email, password string) (*models.Principal, error) {
					driver, err := driverRepo.GetByCredentials(ctx, email, password)
					if err != nil {
						return nil, err
					}
					return &models.Principal{Role: models.RoleDriver, Driver: driver}, nil
				},
			},
			{
				// Admins log in with their username in the email field.
				role: models.RoleAdmin,
				lookup: func(ctx context.Context, username, password string) (*models.Principal, error) {
					admin, err := adminRepo.GetByCredentials(ctx, username, password)
					if err != nil {
						return nil, err
					}
					return &models.Principal{Role: models.RoleAdmin, Admin: admin}, nil
				},
			},
		},
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, request *validators.LoginRequest) (*models.Principal, error) {
	if errs := validators.ValidateStruct(request); len(errs) > 0 {
		return nil, BadRequest("Email and password are required.")
	}

	for _, source := range s.sources {
		principal, err := source.lookup(ctx, request.Email, request.Password)
		if err == nil {
			s.logger.WithContext(ctx).WithFields(map[string]interface{}{
				"role":    principal.Role,
				"user_id": principal.ID().Hex(),
			}).Info("Login succeeded")
			return principal, nil
		}
		if !errors.Is(err, interfaces.ErrNotFound) {
			return nil, Internal("Internal Server Error during login.", err)
		}
		s.logger.WithContext(ctx).WithField("role", source.role).Debug("No credential match")
	}

	s.logger.WithContext(ctx).Warn("Login failed: no matching credentials")
	return nil, Unauthorized("Invalid credentials.")
}
