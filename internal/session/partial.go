// Package session provides the session-scoped partial-address accumulator:
// address fragments extracted across multiple turns merge monotonically
// until enough of an address is known to answer with.
package session

import "strings"

// Part identifies one sub-field of a partial address.
type Part string

const (
	PartHouseNumber Part = "house_number"
	PartStreet      Part = "street"
	PartCity        Part = "city"
	PartState       Part = "state"
)

// PartialAddress accumulates address fragments for one session. Sub-fields
// only ever go from empty to set; they never regress until the whole entry
// is cleared.
type PartialAddress struct {
	HouseNumber string
	Street      string
	City        string
	State       string
}

// Set fills the sub-field only when it is currently empty and returns
// whether the fragment was applied. The monotonic rule makes duplicate or
// racing merges order-independent.
func (p *PartialAddress) Set(part Part, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	switch part {
	case PartHouseNumber:
		if p.HouseNumber == "" {
			p.HouseNumber = value
			return true
		}
	case PartStreet:
		if p.Street == "" {
			p.Street = value
			return true
		}
	case PartCity:
		if p.City == "" {
			p.City = value
			return true
		}
	case PartState:
		if p.State == "" {
			p.State = value
			return true
		}
	}
	return false
}

// Sufficient reports whether a best-effort address can be assembled: a
// house/street fragment alone is enough, and so is city plus state.
func (p PartialAddress) Sufficient() bool {
	return p.HouseNumber != "" || (p.City != "" && p.State != "")
}

// Assemble joins the known fragments in fixed order (house/street, city,
// state) with ", ", regardless of the order they arrived in.
func (p PartialAddress) Assemble() string {
	parts := make([]string, 0, 4)
	for _, v := range []string{p.HouseNumber, p.Street, p.City, p.State} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

// Missing names the sub-fields still empty, for building "please tell me
// your city" style prompts. House number and street count as one unit.
func (p PartialAddress) Missing() []string {
	var missing []string
	if p.HouseNumber == "" && p.Street == "" {
		missing = append(missing, "house number and street")
	}
	if p.City == "" {
		missing = append(missing, "city")
	}
	if p.State == "" {
		missing = append(missing, "state")
	}
	return missing
}

// Empty reports whether nothing has been accumulated yet.
func (p PartialAddress) Empty() bool {
	return p.HouseNumber == "" && p.Street == "" && p.City == "" && p.State == ""
}
