package identity_test

import (
	"testing"

	"github.com/goliatone/go-planconfig/pkg/identity"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Carrier", "carrier"},
		{"Plan Sub-Type", "plan_sub-type"},
		{"plan   sub-type", "plan_sub-type"},
		{"  Plan\tSize \n", "plan_size"},
		{"_leading and trailing_", "leading_and_trailing"},
		{"already_normalized", "already_normalized"},
		{"", ""},
		{"   ", ""},
		{"___", ""},
		{"Employer Contribution", "employer_contribution"},
	}

	for _, tc := range cases {
		if got := identity.Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_WhitespaceAndCaseInsensitive(t *testing.T) {
	a := identity.Normalize("Plan Sub-Type")
	b := identity.Normalize("plan   sub-type")
	if a != b {
		t.Fatalf("expected identical identities, got %q and %q", a, b)
	}
	if !identity.Equal("Plan Sub-Type", "PLAN SUB-TYPE") {
		t.Fatalf("expected labels to share identity")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, label := range []string{"Plan Size", "Deductible (In Network)", "HSA Eligible?"} {
		once := identity.Normalize(label)
		if twice := identity.Normalize(once); twice != once {
			t.Fatalf("Normalize not idempotent for %q: %q then %q", label, once, twice)
		}
	}
}
