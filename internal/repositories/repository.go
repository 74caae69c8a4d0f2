package repositories

import (
	"context"

	"github.com/greenroots/treefund-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// DonationRepository defines the interface for donation data operations.
// Implementations map a missing record to apperrors.ErrNotFound and apply
// updates as whole-document replacements so two concurrent administrative
// edits can never produce a hybrid of partial writes.
type DonationRepository interface {
	Create(ctx context.Context, donation *models.Donation) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Donation, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Donation, error)
	FindAll(ctx context.Context) ([]*models.Donation, error)
	FindByStatus(ctx context.Context, status models.DonationStatus) ([]*models.Donation, error)
	Update(ctx context.Context, donation *models.Donation) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
