package services

import (
	"context"
	"sort"
	"time"

	"github.com/greenroots/treefund-backend/internal/apperrors"
	"github.com/greenroots/treefund-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserRepo is an in-memory repositories.UserRepository.
type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*models.User)}
}

func (r *fakeUserRepo) add(name, email, role string) *models.User {
	user := &models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.users[user.ID] = user
	return user
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if r.err != nil {
		return r.err
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// fakeDonationRepo is an in-memory repositories.DonationRepository matching
// the mongo implementation's contract: ErrNotFound for missing records,
// FindByUser/FindAll newest first, FindByStatus oldest first, whole-record
// replacement on Update.
type fakeDonationRepo struct {
	donations []*models.Donation
	err       error
}

func newFakeDonationRepo() *fakeDonationRepo {
	return &fakeDonationRepo{}
}

func (r *fakeDonationRepo) Create(_ context.Context, donation *models.Donation) error {
	if r.err != nil {
		return r.err
	}
	donation.ID = primitive.NewObjectID()
	if donation.CreatedAt.IsZero() {
		donation.CreatedAt = time.Now()
	}
	donation.UpdatedAt = donation.CreatedAt
	copied := *donation
	r.donations = append(r.donations, &copied)
	return nil
}

func (r *fakeDonationRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Donation, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, d := range r.donations {
		if d.ID == id {
			copied := *d
			return &copied, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeDonationRepo) FindByUser(_ context.Context, userID primitive.ObjectID) ([]*models.Donation, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*models.Donation, 0)
	for _, d := range r.donations {
		if d.UserID == userID {
			copied := *d
			out = append(out, &copied)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeDonationRepo) FindAll(_ context.Context) ([]*models.Donation, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*models.Donation, 0, len(r.donations))
	for _, d := range r.donations {
		copied := *d
		out = append(out, &copied)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeDonationRepo) FindByStatus(_ context.Context, status models.DonationStatus) ([]*models.Donation, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*models.Donation, 0)
	for _, d := range r.donations {
		if d.Status == status {
			copied := *d
			out = append(out, &copied)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeDonationRepo) Update(_ context.Context, donation *models.Donation) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range r.donations {
		if d.ID == donation.ID {
			donation.UpdatedAt = time.Now()
			copied := *donation
			r.donations[i] = &copied
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (r *fakeDonationRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range r.donations {
		if d.ID == id {
			r.donations = append(r.donations[:i], r.donations[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// seed inserts a donation directly into the fake store.
func (r *fakeDonationRepo) seed(userID primitive.ObjectID, name string, amount int, donorType models.DonorType, status models.DonationStatus, used models.AmountUsedFlag, createdAt time.Time) *models.Donation {
	d := &models.Donation{
		ID:            primitive.NewObjectID(),
		UserID:        userID,
		Name:          name,
		Amount:        amount,
		DonorType:     donorType,
		PaymentMode:   "UPI",
		TransactionID: "TXN-" + primitive.NewObjectID().Hex(),
		Status:        status,
		AmountUsed:    used,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
	r.donations = append(r.donations, d)
	return d
}
