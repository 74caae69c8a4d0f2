package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DonorType classifies the contributing entity.
type DonorType string

const (
	DonorTypeIndividual DonorType = "Individual"
	DonorTypeCorporate  DonorType = "Corporate"
	DonorTypeNGO        DonorType = "NGO"
)

// DonorTypes lists the closed set of donor classifications in display order.
var DonorTypes = []DonorType{DonorTypeIndividual, DonorTypeCorporate, DonorTypeNGO}

// Valid reports whether d is a member of the closed donor-type set.
func (d DonorType) Valid() bool {
	switch d {
	case DonorTypeIndividual, DonorTypeCorporate, DonorTypeNGO:
		return true
	}
	return false
}

// DonationStatus is the verification state of a donation. Every donation
// starts Pending; only an administrator moves it, never an automatic process.
type DonationStatus string

const (
	StatusPending DonationStatus = "Pending"
	StatusSuccess DonationStatus = "Success"
	StatusFailed  DonationStatus = "Failed"
)

// Valid reports whether s is a member of the closed status set.
func (s DonationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusSuccess, StatusFailed:
		return true
	}
	return false
}

// AmountUsedFlag records whether funds from a donation have been allocated to
// plantation work. Administrator-set, orthogonal to status.
type AmountUsedFlag string

const (
	AmountUsedNo  AmountUsedFlag = "No"
	AmountUsedYes AmountUsedFlag = "Yes"
)

// Valid reports whether f is a member of the closed amount-used set.
func (f AmountUsedFlag) Valid() bool {
	return f == AmountUsedNo || f == AmountUsedYes
}

// Donation represents a single user-submitted contribution. The transaction
// id is an externally supplied payment reference and is never verified
// against a payment processor.
type Donation struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"donationId,omitempty"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	Name          string             `bson:"name" json:"name"`
	Amount        int                `bson:"amount" json:"amount"`
	DonorType     DonorType          `bson:"donorType" json:"donorType"`
	PaymentMode   string             `bson:"paymentMode" json:"paymentMode"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Status        DonationStatus     `bson:"status" json:"status"`
	AmountUsed    AmountUsedFlag     `bson:"amountUsed" json:"amountUsed"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DonationRequest is the payload for submitting a donation. UserID is taken
// from the authenticated caller, not trusted from the client body.
type DonationRequest struct {
	UserID        string    `json:"userId"`
	Name          string    `json:"name"`
	Amount        int       `json:"amount"`
	DonorType     DonorType `json:"donorType"`
	PaymentMode   string    `json:"paymentMode"`
	TransactionID string    `json:"transactionId"`
}

// DonationUpdateRequest carries an administrative correction. Nil fields are
// left unchanged.
type DonationUpdateRequest struct {
	Status        *DonationStatus `json:"status,omitempty"`
	AmountUsed    *AmountUsedFlag `json:"amountUsed,omitempty"`
	Amount        *int            `json:"amount,omitempty"`
	DonorType     *DonorType      `json:"donorType,omitempty"`
	TransactionID *string         `json:"transactionId,omitempty"`
}
