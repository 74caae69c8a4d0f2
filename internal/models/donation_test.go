package models

import "testing"

func TestDonorTypeClosedSet(t *testing.T) {
	for _, dt := range DonorTypes {
		if !dt.Valid() {
			t.Errorf("%q should be a valid donor type", dt)
		}
	}
	for _, dt := range []DonorType{"", "individual", "Company", "Charity"} {
		if dt.Valid() {
			t.Errorf("%q should not be a valid donor type", dt)
		}
	}
}

func TestStatusClosedSet(t *testing.T) {
	for _, s := range []DonationStatus{StatusPending, StatusSuccess, StatusFailed} {
		if !s.Valid() {
			t.Errorf("%q should be a valid status", s)
		}
	}
	for _, s := range []DonationStatus{"", "pending", "Done", "Cancelled"} {
		if s.Valid() {
			t.Errorf("%q should not be a valid status", s)
		}
	}
}

func TestAmountUsedClosedSet(t *testing.T) {
	for _, f := range []AmountUsedFlag{AmountUsedNo, AmountUsedYes} {
		if !f.Valid() {
			t.Errorf("%q should be a valid amount-used flag", f)
		}
	}
	for _, f := range []AmountUsedFlag{"", "yes", "Partially"} {
		if f.Valid() {
			t.Errorf("%q should not be a valid amount-used flag", f)
		}
	}
}
