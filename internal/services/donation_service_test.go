package services

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/greenroots/treefund-backend/internal/apperrors"
	"github.com/greenroots/treefund-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newDonationServiceForTest() (*DonationServiceImpl, *fakeDonationRepo, *fakeUserRepo) {
	donationRepo := newFakeDonationRepo()
	userRepo := newFakeUserRepo()
	return NewDonationService(donationRepo, userRepo), donationRepo, userRepo
}

func validRequest(userID string) *models.DonationRequest {
	return &models.DonationRequest{
		UserID:        userID,
		Name:          "Rahul Sharma",
		Amount:        50,
		DonorType:     models.DonorTypeIndividual,
		PaymentMode:   "UPI",
		TransactionID: "TXN1",
	}
}

func TestSubmitDefaultsToPendingAndUnused(t *testing.T) {
	svc, _, userRepo := newDonationServiceForTest()
	user := userRepo.add("Rahul Sharma", "rahul@example.com", models.RoleUser)

	donation, err := svc.Submit(context.Background(), validRequest(user.ID.Hex()))
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if donation.Status != models.StatusPending {
		t.Errorf("status = %q, want %q", donation.Status, models.StatusPending)
	}
	if donation.AmountUsed != models.AmountUsedNo {
		t.Errorf("amountUsed = %q, want %q", donation.AmountUsed, models.AmountUsedNo)
	}
	if donation.ID.IsZero() {
		t.Error("donation id was not assigned")
	}
	if donation.CreatedAt.IsZero() {
		t.Error("createdAt was not set")
	}
}

func TestSubmitValidation(t *testing.T) {
	svc, donationRepo, userRepo := newDonationServiceForTest()
	user := userRepo.add("Rahul Sharma", "rahul@example.com", models.RoleUser)

	tests := []struct {
		name      string
		mutate    func(*models.DonationRequest)
		wantField string
	}{
		{"zero amount", func(r *models.DonationRequest) { r.Amount = 0 }, "amount"},
		{"negative amount", func(r *models.DonationRequest) { r.Amount = -50 }, "amount"},
		{"unknown donor type", func(r *models.DonationRequest) { r.DonorType = "Company" }, "donorType"},
		{"empty transaction id", func(r *models.DonationRequest) { r.TransactionID = "" }, "transactionId"},
		{"blank transaction id", func(r *models.DonationRequest) { r.TransactionID = "   " }, "transactionId"},
		{"malformed user id", func(r *models.DonationRequest) { r.UserID = "not-an-id" }, "userId"},
		{"unknown user", func(r *models.DonationRequest) { r.UserID = primitive.NewObjectID().Hex() }, "userId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(user.ID.Hex())
			tt.mutate(req)

			_, err := svc.Submit(context.Background(), req)

			var validationErr *apperrors.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", validationErr.Field, tt.wantField)
			}
			if len(donationRepo.donations) != 0 {
				t.Errorf("store has %d records, want 0 after failed validation", len(donationRepo.donations))
			}
		})
	}
}

func TestSubmitCapturesDonorNameFromUser(t *testing.T) {
	svc, _, userRepo := newDonationServiceForTest()
	user := userRepo.add("Priya Verma", "priya@example.com", models.RoleUser)

	req := validRequest(user.ID.Hex())
	req.Name = ""

	donation, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if donation.Name != "Priya Verma" {
		t.Errorf("name = %q, want the user's name", donation.Name)
	}
}

func TestSubmitUpstreamFailure(t *testing.T) {
	svc, donationRepo, userRepo := newDonationServiceForTest()
	user := userRepo.add("Rahul Sharma", "rahul@example.com", models.RoleUser)
	donationRepo.err = errors.New("connection reset")

	_, err := svc.Submit(context.Background(), validRequest(user.ID.Hex()))

	var upstreamErr *apperrors.UpstreamError
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
}

func TestAdminUpdateRequiresAdmin(t *testing.T) {
	svc, donationRepo, userRepo := newDonationServiceForTest()
	user := userRepo.add("Rahul Sharma", "rahul@example.com", models.RoleUser)
	seeded := donationRepo.seed(user.ID, user.Name, 50, models.DonorTypeIndividual, models.StatusPending, models.AmountUsedNo, time.Now())

	status := models.StatusSuccess
	_, err := svc.AdminUpdate(context.Background(), seeded.ID, &models.DonationUpdateRequest{Status: &status}, false)

	if !errors.Is(err, apperrors.ErrNotPermitted) {
		t.Fatalf("err = %v, want ErrNotPermitted", err)
	}

	stored, _ := donationRepo.FindByID(context.Background(), seeded.ID)
	if stored.Status != models.StatusPending {
		t.Errorf("status = %q, record must be unchanged after denied update", stored.Status)
	}
}

func TestAdminUpdateNotFound(t *testing.T) {
	svc, _, _ := newDonationServiceForTest()

	status := models.StatusSuccess
	_, err := svc.AdminUpdate(context.Background(), primitive.NewObjectID(), &models.DonationUpdateRequest{Status: &status}, true)

	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAdminUpdateValidation(t *testing.T) {
	svc, donationRepo, userRepo := newDonationServiceForTest()
	user := userRepo.add("Rahul Sharma", "rahul@example.com", models.RoleUser)
	seeded := donationRepo.seed(user.ID, user.Name, 50, models.DonorTypeIndividual, models.StatusPending, models.AmountUsedNo, time.Now())

	badStatus := models.DonationStatus("Done")
	badFlag := models.AmountUsedFlag("Maybe")
	badAmount := 0
	emptyTxn := ""

	tests := []struct {
		name      string
		req       *models.DonationUpdateRequest
		wantField string
	}{
		{"status outside closed set", &models.DonationUpdateRequest{Status: &badStatus}, "status"},
		{"amountUsed outside closed set", &models.DonationUpdateRequest{AmountUsed: &badFlag}, "amountUsed"},
		{"non-positive amount", &models.DonationUpdateRequest{Amount: &badAmount}, "amount"},
		{"empty transaction id", &models.DonationUpdateRequest{TransactionID: &emptyTxn}, "transactionId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AdminUpdate(context.Background(), seeded.ID, tt.req, true)

			var validationErr *apperrors.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("field = %q, want %q", validationErr.Field, tt.wantField)
			}
		})
	}
}

func TestAdminUpdateAppliesFields(t *testing.T) {
	svc, donationRepo, userRepo := newDonationServiceForTest()
	user := userRepo.add("Rahul Sharma", "rahul@example.com", models.RoleUser)
	seeded := donationRepo.seed(user.ID, user.Name, 50, models.DonorTypeIndividual, models.StatusPending, models.AmountUsedNo, time.Now())

	status := models.StatusSuccess
	used := models.AmountUsedYes
	amount := 100
	txn := "TXN-CORRECTED"

	updated, err := svc.AdminUpdate(context.Background(), seeded.ID, &models.DonationUpdateRequest{
		Status:        &status,
		AmountUsed:    &used,
		Amount:        &amount,
		TransactionID: &txn,
	}, true)
	if err != nil {
		t.Fatalf("AdminUpdate failed: %v", err)
	}

	if updated.Status != models.StatusSuccess || updated.AmountUsed != models.AmountUsedYes {
		t.Errorf("status/amountUsed = %q/%q, want Success/Yes", updated.Status, updated.AmountUsed)
	}
	if updated.Amount != 100 || updated.TransactionID != "TXN-CORRECTED" {
		t.Errorf("amount/transactionId = %d/%q, corrections not applied", updated.Amount, updated.TransactionID)
	}

	stored, _ := donationRepo.FindByID(context.Background(), seeded.ID)
	if stored.Status != models.StatusSuccess {
		t.Errorf("stored status = %q, want Success", stored.Status)
	}
	// Untouched fields survive the whole-record replacement
	if stored.DonorType != models.DonorTypeIndividual || stored.UserID != user.ID {
		t.Error("fields not named in the update were altered")
	}
}

func TestAdminUpdatePartialFieldsLeaveRestUntouched(t *testing.T) {
	svc, donationRepo, userRepo := newDonationServiceForTest()
	user := userRepo.add("Rahul Sharma", "rahul@example.com", models.RoleUser)
	seeded := donationRepo.seed(user.ID, user.Name, 50, models.DonorTypeIndividual, models.StatusPending, models.AmountUsedNo, time.Now())

	used := models.AmountUsedYes
	updated, err := svc.AdminUpdate(context.Background(), seeded.ID, &models.DonationUpdateRequest{AmountUsed: &used}, true)
	if err != nil {
		t.Fatalf("AdminUpdate failed: %v", err)
	}

	if updated.Status != models.StatusPending {
		t.Errorf("status = %q, want Pending to survive an amountUsed-only update", updated.Status)
	}
	if updated.Amount != 50 {
		t.Errorf("amount = %d, want 50", updated.Amount)
	}
}

func TestDeleteRequiresAdmin(t *testing.T) {
	svc, donationRepo, userRepo := newDonationServiceForTest()
	user := userRepo.add("Rahul Sharma", "rahul@example.com", models.RoleUser)
	seeded := donationRepo.seed(user.ID, user.Name, 50, models.DonorTypeIndividual, models.StatusPending, models.AmountUsedNo, time.Now())

	if err := svc.Delete(context.Background(), seeded.ID, false); !errors.Is(err, apperrors.ErrNotPermitted) {
		t.Fatalf("err = %v, want ErrNotPermitted", err)
	}
	if len(donationRepo.donations) != 1 {
		t.Error("record deleted despite denied authorization")
	}

	if err := svc.Delete(context.Background(), seeded.ID, true); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(donationRepo.donations) != 0 {
		t.Error("record not deleted")
	}

	if err := svc.Delete(context.Background(), seeded.ID, true); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound for a missing record", err)
	}
}

func TestGetByUserIsIdempotentAndScoped(t *testing.T) {
	svc, donationRepo, userRepo := newDonationServiceForTest()
	owner := userRepo.add("Rahul Sharma", "rahul@example.com", models.RoleUser)
	other := userRepo.add("Green Corp", "corp@example.com", models.RoleUser)

	base := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	donationRepo.seed(owner.ID, owner.Name, 50, models.DonorTypeIndividual, models.StatusPending, models.AmountUsedNo, base)
	donationRepo.seed(owner.ID, owner.Name, 250, models.DonorTypeIndividual, models.StatusSuccess, models.AmountUsedNo, base.Add(24*time.Hour))
	donationRepo.seed(other.ID, other.Name, 500, models.DonorTypeCorporate, models.StatusSuccess, models.AmountUsedNo, base)

	first, err := svc.GetByUser(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("GetByUser failed: %v", err)
	}
	second, err := svc.GetByUser(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("GetByUser failed: %v", err)
	}

	if len(first) != 2 {
		t.Fatalf("got %d donations, want 2", len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two reads without intervening writes returned different results")
	}
	// Newest first
	if !first[0].CreatedAt.After(first[1].CreatedAt) {
		t.Error("donations not ordered newest first")
	}
}

func TestGetByUserEmptyIsNotAnError(t *testing.T) {
	svc, _, _ := newDonationServiceForTest()

	donations, err := svc.GetByUser(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("GetByUser failed: %v", err)
	}
	if len(donations) != 0 {
		t.Errorf("got %d donations, want empty sequence", len(donations))
	}
}
