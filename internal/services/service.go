package services

import (
	"context"

	"github.com/greenroots/treefund-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService defines the interface for identity operations
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	ForgotPassword(ctx context.Context, req *models.ForgotPasswordRequest) error
	Profile(ctx context.Context, userID string) (*models.User, error)
}

// DonationService defines the interface for the donation lifecycle.
// Donations enter as Pending with amountUsed No and only move by explicit
// administrative action; there are no automatic transitions.
type DonationService interface {
	Submit(ctx context.Context, req *models.DonationRequest) (*models.Donation, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Donation, error)
	GetAll(ctx context.Context) ([]*models.Donation, error)
	AdminUpdate(ctx context.Context, id primitive.ObjectID, req *models.DonationUpdateRequest, callerIsAdmin bool) (*models.Donation, error)
	Delete(ctx context.Context, id primitive.ObjectID, callerIsAdmin bool) error
}

// StatsService defines the interface for derived donation statistics
type StatsService interface {
	GlobalStats(ctx context.Context) (*models.GlobalStats, error)
	Summary(ctx context.Context) (*models.DonationSummary, error)
	TopDonors(ctx context.Context, n int) ([]models.TopDonor, error)
}
