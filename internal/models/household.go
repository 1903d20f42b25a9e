package models

import "time"

// House ownership categories.
const (
	OwnershipOwned     = "owned"
	OwnershipRented    = "rented"
	OwnershipShared    = "shared"
	OwnershipCaretaker = "caretaker"
)

// Household groups residents under a head-of-household with shared economic
// attributes. Membership is many-to-many; nothing prevents a resident from
// appearing in more than one household. Households have no soft-delete flag.
type Household struct {
	ID                 uint      `json:"id"`
	HouseholdHeadID    uint      `json:"householdHeadId"`
	HouseholdNumber    string    `json:"householdNumber"`
	MemberIDs          []uint    `json:"memberIds,omitempty"`
	TotalMonthlyIncome *float64  `json:"totalMonthlyIncome,omitempty"`
	HouseOwnership     string    `json:"houseOwnership"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
