package domain

import "time"

// Reasons recorded on credit ledger events.
const (
	CreditReasonSignup     = "signup_bonus"
	CreditReasonGeneration = "generation"
	CreditReasonPayment    = "payment_approved"
	CreditReasonAdmin      = "admin_override"
)

// CreditEvent is one entry in the per-user credit audit trail. Delta is the
// signed change applied; Balance is the balance after the change.
type CreditEvent struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Delta     int       `json:"delta" bson:"delta"`
	Balance   int       `json:"balance" bson:"balance"`
	Reason    string    `json:"reason" bson:"reason"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
