package model

import "time"

// LookupKind names one of the reference lists the admin forms populate their
// dropdowns from.
type LookupKind string

const (
	LookupBrand        LookupKind = "brand"
	LookupCategory     LookupKind = "category"
	LookupFuel         LookupKind = "fuel"
	LookupTransmission LookupKind = "transmission"
)

// ValidLookupKind reports whether k is one of the known kinds.
func ValidLookupKind(k LookupKind) bool {
	switch k {
	case LookupBrand, LookupCategory, LookupFuel, LookupTransmission:
		return true
	}
	return false
}

// Lookup is a single reference value (a brand name, a fuel type, ...).
type Lookup struct {
	ID        string     `json:"id"`
	Kind      LookupKind `json:"kind"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
}
