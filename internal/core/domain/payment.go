package domain

import (
	"errors"
	"time"
)

// PaymentStatus represents the lifecycle state of a payment request.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
)

// validTransitions defines the allowed state machine transitions. Both
// terminal states are reachable only from pending and are immutable.
var validTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentApproved, PaymentRejected},
}

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrPaymentNotFound = errors.New("payment request not found")
var ErrInvalidTransition = errors.New("invalid payment status transition")
var ErrInsufficientCredits = errors.New("insufficient credits")

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid reports whether s names a known status, used when filtering.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentApproved, PaymentRejected:
		return true
	}
	return false
}

// PaymentRequest is a manual credit purchase awaiting admin verification.
// UserName is a snapshot of the submitter's name at submission time so the
// back-office list stays readable even if the account is later renamed.
type PaymentRequest struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	UserID    string        `json:"user_id" bson:"user_id"`
	UserName  string        `json:"user_name" bson:"user_name"`
	Plan      string        `json:"plan" bson:"plan"`
	Amount    int           `json:"amount" bson:"amount"`
	UTRCode   string        `json:"utr_code" bson:"utr_code"`
	Date      string        `json:"date" bson:"date"`
	Status    PaymentStatus `json:"status" bson:"status"`
	Note      string        `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}
