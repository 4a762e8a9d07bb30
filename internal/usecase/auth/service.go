package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"car-selling-service/internal/config"
	domainUser "car-selling-service/internal/domain/user"
	"car-selling-service/internal/logger"
	appErrors "car-selling-service/pkg/errors"
	"car-selling-service/pkg/utils"
)

// Service implements the login and registration use cases.
type Service struct {
	userRepo domainUser.Repository
	config   *config.Config
}

// NewService creates a new auth service
func NewService(userRepo domainUser.Repository, cfg *config.Config) *Service {
	return &Service{
		userRepo: userRepo,
		config:   cfg,
	}
}

// Login checks the submitted credentials and issues a bearer token. An
// unknown email and a wrong password both come back as ErrInvalidCredentials
// so callers cannot probe which accounts exist.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	// Normalize before validating so padded or mixed-case emails are judged
	// by their canonical form.
	email := utils.SanitizeEmail(req.Email)
	req.Email = email

	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainUser.ErrUserNotFound) {
			logger.Warn("Login attempt with non-existent email",
				zap.String("email", email),
				zap.String("event", "user_not_found"),
			)
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(user.PasswordHashed, req.Password) {
		logger.Warn("Login attempt with invalid password",
			zap.String("user_id", user.ID.String()),
			zap.String("email", user.Email),
			zap.String("event", "login_failed_invalid_password"),
		)
		return nil, appErrors.ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User logged in successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("event", "login_success"),
	)

	return &TokenResponse{Token: token}, nil
}

// Register creates an account and issues a token for the new user.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*TokenResponse, error) {
	email := utils.SanitizeEmail(req.Email)
	req.Email = email

	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		logger.Warn("Registration attempt with existing email",
			zap.String("email", email),
			zap.String("event", "registration_failed_duplicate_email"),
		)
		return nil, appErrors.ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domainUser.User{
		Email:          email,
		PasswordHashed: hashedPassword,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainUser.ErrUserAlreadyExists) {
			return nil, appErrors.ErrUserAlreadyExists
		}
		return nil, err
	}

	token, err := s.issueToken(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("User registered successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("event", "user_registered"),
	)

	return &TokenResponse{Token: token}, nil
}

func (s *Service) issueToken(userID string) (string, error) {
	validity := time.Duration(s.config.JWT.ExpiryHours) * time.Hour
	return utils.GenerateToken(userID, []byte(s.config.JWT.Secret), validity)
}
