package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/greenroots/treefund-backend/internal/apperrors"
	"github.com/greenroots/treefund-backend/internal/config"
	"github.com/greenroots/treefund-backend/internal/models"
	"github.com/greenroots/treefund-backend/internal/repositories"
	jwtpkg "github.com/greenroots/treefund-backend/pkg/jwt"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Compile-time check to ensure AuthServiceImpl implements AuthService
var _ AuthService = (*AuthServiceImpl)(nil)

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	cfg      *config.Config

	// deliverResetToken hands a freshly minted reset token to the mail
	// pipeline. The token itself never appears in an HTTP response.
	deliverResetToken func(email, token string)
}

// NewAuthService creates a new AuthService implementation
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo: userRepo,
		cfg:      cfg,
		deliverResetToken: func(email, token string) {
			slog.Info("Password reset token issued", "email", email)
		},
	}
}

// Register creates a new donor account with the default user role
func (s *AuthServiceImpl) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	_, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, apperrors.NewValidationError("email", "email is already registered")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, &apperrors.UpstreamError{Op: "user lookup", Err: err}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Mobile:   req.Mobile,
		Age:      req.Age,
		Address:  req.Address,
		Role:     models.RoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, &apperrors.UpstreamError{Op: "user store", Err: err}
	}

	slog.Info("User registered", "userId", user.ID.Hex(), "email", user.Email)

	// Don't return the password hash
	user.Password = ""
	return user, nil
}

// Login verifies credentials and issues a signed bearer token carrying the
// stored role claim
func (s *AuthServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, &apperrors.UpstreamError{Op: "user lookup", Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	ttl := time.Duration(s.cfg.JWT.ExpiresIn) * time.Second
	token, err := jwtpkg.Generate(user.ID.Hex(), user.Email, user.Role, s.cfg.JWT.Secret, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{
		Token:    token,
		UserID:   user.ID.Hex(),
		UserName: user.Name,
		Role:     user.Role,
	}, nil
}

// resetTokenTTL bounds how long a password reset token stays valid.
const resetTokenTTL = 15 * time.Minute

// ForgotPassword mints a short-lived reset token for the account behind the
// given email. Delivery of the reset link happens through the mail pipeline
// outside this service. Unknown emails succeed silently so the endpoint does
// not reveal which addresses have accounts.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return &apperrors.UpstreamError{Op: "user lookup", Err: err}
	}

	token, err := jwtpkg.Generate(user.ID.Hex(), user.Email, models.RolePasswordReset, s.cfg.JWT.Secret, resetTokenTTL)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	s.deliverResetToken(user.Email, token)
	return nil
}

// Profile returns the authenticated user's identity record
func (s *AuthServiceImpl) Profile(ctx context.Context, userID string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, &apperrors.UpstreamError{Op: "user lookup", Err: err}
	}
	user.Password = ""
	return user, nil
}
