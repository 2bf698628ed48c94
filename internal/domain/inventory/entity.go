package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNegativeCapacity      = errors.New("capacity cannot be negative")
	ErrAvailableExceedsTotal = errors.New("available capacity cannot exceed total")
	ErrInvalidStayRange      = errors.New("min stay cannot exceed max stay")
)

// Day is one per-(organization, product, date) capacity record. It is
// mutated only through the ledger's atomic consume/release primitives, never
// by read-modify-write at the application layer; SetCapacity is the operator
// entry point and is last-write-wins.
type Day struct {
	OrganizationID    uuid.UUID
	ProductID         uuid.UUID
	Date              time.Time
	CapacityTotal     int32
	CapacityAvailable int32
	Closed            bool
	MinStay           int32
	MaxStay           int32
}

func NewDay(organizationID, productID uuid.UUID, date time.Time, total int32, closed bool, minStay, maxStay int32) (*Day, error) {
	if total < 0 {
		return nil, ErrNegativeCapacity
	}
	if minStay < 0 || maxStay < 0 || (maxStay > 0 && minStay > maxStay) {
		return nil, ErrInvalidStayRange
	}
	return &Day{
		OrganizationID:    organizationID,
		ProductID:         productID,
		Date:              date,
		CapacityTotal:     total,
		CapacityAvailable: total,
		Closed:            closed,
		MinStay:           minStay,
		MaxStay:           maxStay,
	}, nil
}
