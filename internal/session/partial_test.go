package session

import "testing"

func TestPartialAddressMonotonicSet(t *testing.T) {
	t.Parallel()

	var p PartialAddress

	if !p.Set(PartCity, "Mumbai") {
		t.Fatal("expected first set to apply")
	}
	if p.Set(PartCity, "Delhi") {
		t.Fatal("expected second set on a filled sub-field to be ignored")
	}
	if p.City != "Mumbai" {
		t.Fatalf("city regressed to %q", p.City)
	}

	if p.Set(PartState, "   ") {
		t.Fatal("expected blank value to be ignored")
	}
}

func TestPartialAddressSufficient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		p      PartialAddress
		expect bool
	}{
		{
			name:   "empty",
			p:      PartialAddress{},
			expect: false,
		},
		{
			name:   "city alone",
			p:      PartialAddress{City: "Mumbai"},
			expect: false,
		},
		{
			name:   "city and state",
			p:      PartialAddress{City: "Mumbai", State: "Maharashtra"},
			expect: true,
		},
		{
			name:   "house fragment alone",
			p:      PartialAddress{HouseNumber: "12 Gandhi Nagar"},
			expect: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.p.Sufficient(); got != tt.expect {
				t.Fatalf("Sufficient() = %v, expected %v", got, tt.expect)
			}
		})
	}
}

func TestPartialAddressAssembleOrder(t *testing.T) {
	t.Parallel()

	// Arrival order is state first, city second; assembly order is fixed.
	var p PartialAddress
	p.Set(PartState, "Maharashtra")
	p.Set(PartCity, "Mumbai")
	p.Set(PartHouseNumber, "12 Gandhi Nagar")

	if got := p.Assemble(); got != "12 Gandhi Nagar, Mumbai, Maharashtra" {
		t.Fatalf("unexpected assembly: %q", got)
	}
}

func TestPartialAddressMissing(t *testing.T) {
	t.Parallel()

	p := PartialAddress{City: "Mumbai"}
	missing := p.Missing()

	if len(missing) != 2 {
		t.Fatalf("expected 2 missing parts, got %v", missing)
	}
	if missing[0] != "house number and street" || missing[1] != "state" {
		t.Fatalf("unexpected missing parts: %v", missing)
	}
}
