package mmws

import "strings"

// CurrentAddressSpace is the result of GetCurrentAddressSpace.
type CurrentAddressSpace struct {
	AddressSpaceRef string `json:"addressSpaceRef"`
}

// ID returns the numeric part of the reference ("AddressSpaces/5" -> "5").
func (c CurrentAddressSpace) ID() string {
	return refID(c.AddressSpaceRef)
}

// AddressSpace is one entry of the AddressSpaces collection.
type AddressSpace struct {
	Ref         string `json:"ref"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ID returns the numeric part of the reference.
func (a AddressSpace) ID() string {
	return refID(a.Ref)
}

// AddressSpaceList is the result of an AddressSpaces query.
type AddressSpaceList struct {
	AddressSpaces []AddressSpace `json:"addressSpaces"`
	TotalResults  int            `json:"totalResults"`
}

// Range is a raw range record. Keys are kept exactly as the server sent them so
// that an absent field can be told apart from an empty one; numbers are json.Number.
type Range map[string]interface{}

// RangeList is the result of a Ranges query.
type RangeList struct {
	Ranges       []Range `json:"ranges"`
	TotalResults int     `json:"totalResults"`
}

func refID(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
