package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/greenroots/treefund-backend/internal/apperrors"
	"github.com/greenroots/treefund-backend/internal/models"
	"github.com/greenroots/treefund-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure DonationServiceImpl implements DonationService
var _ DonationService = (*DonationServiceImpl)(nil)

type DonationServiceImpl struct {
	donationRepo repositories.DonationRepository
	userRepo     repositories.UserRepository
}

// NewDonationService creates a new DonationService implementation
func NewDonationService(donationRepo repositories.DonationRepository, userRepo repositories.UserRepository) *DonationServiceImpl {
	return &DonationServiceImpl{
		donationRepo: donationRepo,
		userRepo:     userRepo,
	}
}

// Submit validates a donation submission and persists it as Pending.
// Validation runs before storage is touched; a malformed submission never
// reaches the store. The transaction id is user-asserted proof of payment and
// is not verified against any payment system.
func (s *DonationServiceImpl) Submit(ctx context.Context, req *models.DonationRequest) (*models.Donation, error) {
	if req.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount", "amount must be positive")
	}
	if !req.DonorType.Valid() {
		return nil, apperrors.NewValidationError("donorType", "donorType must be Individual, Corporate or NGO")
	}
	if strings.TrimSpace(req.TransactionID) == "" {
		return nil, apperrors.NewValidationError("transactionId", "transactionId is required")
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, apperrors.NewValidationError("userId", "userId is not a valid id")
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("userId", "user does not exist")
		}
		return nil, &apperrors.UpstreamError{Op: "user lookup", Err: err}
	}

	// Denormalized display name, captured at submission time
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = user.Name
	}

	donation := &models.Donation{
		UserID:        userID,
		Name:          name,
		Amount:        req.Amount,
		DonorType:     req.DonorType,
		PaymentMode:   req.PaymentMode,
		TransactionID: req.TransactionID,
		Status:        models.StatusPending,
		AmountUsed:    models.AmountUsedNo,
	}
	if err := s.donationRepo.Create(ctx, donation); err != nil {
		return nil, &apperrors.UpstreamError{Op: "donation store", Err: err}
	}

	slog.Info("Donation submitted", "donationId", donation.ID.Hex(), "userId", req.UserID, "amount", donation.Amount, "donorType", donation.DonorType)
	return donation, nil
}

// GetByUser returns the donations owned by one user, newest first
func (s *DonationServiceImpl) GetByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.Donation, error) {
	donations, err := s.donationRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, &apperrors.UpstreamError{Op: "donation store", Err: err}
	}
	return donations, nil
}

// GetAll returns every donation record. Access is gated by the caller.
func (s *DonationServiceImpl) GetAll(ctx context.Context) ([]*models.Donation, error) {
	donations, err := s.donationRepo.FindAll(ctx)
	if err != nil {
		return nil, &apperrors.UpstreamError{Op: "donation store", Err: err}
	}
	return donations, nil
}

// AdminUpdate applies an administrative correction to a donation. Status and
// amountUsed only move through here; there is no automatic transition.
// Authorization is checked first, then input, then existence, so an
// unauthorized call leaves the record untouched and learns nothing.
func (s *DonationServiceImpl) AdminUpdate(ctx context.Context, id primitive.ObjectID, req *models.DonationUpdateRequest, callerIsAdmin bool) (*models.Donation, error) {
	if !callerIsAdmin {
		return nil, apperrors.ErrNotPermitted
	}

	if req.Status != nil && !req.Status.Valid() {
		return nil, apperrors.NewValidationError("status", "status must be Pending, Success or Failed")
	}
	if req.AmountUsed != nil && !req.AmountUsed.Valid() {
		return nil, apperrors.NewValidationError("amountUsed", "amountUsed must be Yes or No")
	}
	if req.Amount != nil && *req.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount", "amount must be positive")
	}
	if req.DonorType != nil && !req.DonorType.Valid() {
		return nil, apperrors.NewValidationError("donorType", "donorType must be Individual, Corporate or NGO")
	}
	if req.TransactionID != nil && strings.TrimSpace(*req.TransactionID) == "" {
		return nil, apperrors.NewValidationError("transactionId", "transactionId must not be empty")
	}

	donation, err := s.donationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, &apperrors.UpstreamError{Op: "donation store", Err: err}
	}

	if req.Status != nil {
		donation.Status = *req.Status
	}
	if req.AmountUsed != nil {
		donation.AmountUsed = *req.AmountUsed
	}
	if req.Amount != nil {
		donation.Amount = *req.Amount
	}
	if req.DonorType != nil {
		donation.DonorType = *req.DonorType
	}
	if req.TransactionID != nil {
		donation.TransactionID = *req.TransactionID
	}

	// Whole-document replacement; concurrent admin edits are last-writer-wins,
	// never a merge of partial writes.
	if err := s.donationRepo.Update(ctx, donation); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, &apperrors.UpstreamError{Op: "donation store", Err: err}
	}

	slog.Info("Donation updated", "donationId", id.Hex(), "status", donation.Status, "amountUsed", donation.AmountUsed)
	return donation, nil
}

// Delete removes a donation record. Destructive and irreversible; callers
// confirm intent out of band.
func (s *DonationServiceImpl) Delete(ctx context.Context, id primitive.ObjectID, callerIsAdmin bool) error {
	if !callerIsAdmin {
		return apperrors.ErrNotPermitted
	}
	if err := s.donationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return &apperrors.UpstreamError{Op: "donation store", Err: err}
	}
	slog.Info("Donation deleted", "donationId", id.Hex())
	return nil
}
