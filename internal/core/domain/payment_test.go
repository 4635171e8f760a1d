package domain

import "testing"

func TestPaymentStatus_Transitions(t *testing.T) {
	cases := []struct {
		from    PaymentStatus
		to      PaymentStatus
		allowed bool
	}{
		{PaymentPending, PaymentApproved, true},
		{PaymentPending, PaymentRejected, true},
		{PaymentApproved, PaymentRejected, false},
		{PaymentApproved, PaymentApproved, false},
		{PaymentRejected, PaymentApproved, false},
		{PaymentRejected, PaymentPending, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestUser_HasUnlimitedCredits(t *testing.T) {
	u := &User{Credits: UnlimitedThreshold - 1}
	if u.HasUnlimitedCredits() {
		t.Fatalf("below threshold must not be unlimited")
	}
	u.Credits = UnlimitedThreshold
	if !u.HasUnlimitedCredits() {
		t.Fatalf("at threshold must be unlimited")
	}
}
