package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/greenroots/treefund-backend/internal/apperrors"
	"github.com/greenroots/treefund-backend/internal/models"
	"github.com/greenroots/treefund-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DonationRepository implements the repositories.DonationRepository interface
type DonationRepository struct {
	collection *mongo.Collection
}

// NewDonationRepository creates a new DonationRepository
func NewDonationRepository(db *mongo.Database) repositories.DonationRepository {
	return &DonationRepository{
		collection: db.Collection("donations"),
	}
}

// Create creates a new donation
func (r *DonationRepository) Create(ctx context.Context, donation *models.Donation) error {
	now := time.Now()
	donation.CreatedAt = now
	donation.UpdatedAt = now
	result, err := r.collection.InsertOne(ctx, donation)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		donation.ID = oid
	}
	return nil
}

// FindByID finds a donation by ID
func (r *DonationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Donation, error) {
	var donation models.Donation
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&donation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &donation, nil
}

// FindByUser finds donations owned by a user, newest first
func (r *DonationRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Donation, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	return r.find(ctx, bson.M{"userId": userID}, opts)
}

// FindAll finds all donations, newest first
func (r *DonationRepository) FindAll(ctx context.Context) ([]*models.Donation, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	return r.find(ctx, bson.M{}, opts)
}

// FindByStatus finds donations in the given status. A single cursor backs one
// call, so every aggregate computed from it reads one snapshot of the store.
func (r *DonationRepository) FindByStatus(ctx context.Context, status models.DonationStatus) ([]*models.Donation, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": 1})
	return r.find(ctx, bson.M{"status": status}, opts)
}

// Update replaces the stored donation document as a whole
func (r *DonationRepository) Update(ctx context.Context, donation *models.Donation) error {
	donation.UpdatedAt = time.Now()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": donation.ID}, donation)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete deletes a donation
func (r *DonationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *DonationRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.Donation, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	donations := make([]*models.Donation, 0)
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}
