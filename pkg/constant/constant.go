package constant

import (
	"errors"
	"time"
)

const (
	CacheParentKey = "bookmyfield-backend"
)

const (
	RequestParamID = "id"

	RequestValidateUUID = "required,uuid"
)

// Role is the closed set of account roles. Comparisons are exact, no case
// folding anywhere.
type Role string

const (
	RoleCustomer   Role = "Customer"
	RoleFieldOwner Role = "FieldOwner"
	RoleAdmin      Role = "Admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleFieldOwner, RoleAdmin:
		return Role(s), nil
	}

	return "", ErrUnknownRole
}

func (r Role) String() string { return string(r) }

// ApprovalStatus gates customer visibility of a field.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

func ParseApprovalStatus(s string) (ApprovalStatus, error) {
	switch ApprovalStatus(s) {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return ApprovalStatus(s), nil
	}

	return "", ErrUnknownApprovalStatus
}

func (a ApprovalStatus) String() string { return string(a) }

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

func (b BookingStatus) String() string { return string(b) }

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusPending   PaymentStatus = "Pending"
)

func (p PaymentStatus) String() string { return string(p) }

// TimeSlotFullDay is the sentinel slot value covering an entire day. A booking
// with this slot excludes every other booking on its (field, date).
const TimeSlotFullDay = "Full Day"

// FullDayDuration marks a full-day request by its duration in hours.
const FullDayDuration = 24

const (
	FullDateFormat = time.RFC3339
	DateFormat     = "2006-01-02"
	// ClockFormat is the 12-hour clock with AM/PM designator used on both
	// sides of a time slot string, e.g. "10:00 AM".
	ClockFormat = "03:04 PM"

	MinutesPerHour = 60
)

// SportsCategories is the fixed category list offered to customers.
var SportsCategories = []string{"Cricket", "Football", "Basketball", "Badminton"}

// JwtFieldPrincipal is the fiber locals key holding the authenticated
// Principal.
const JwtFieldPrincipal = "principal"

const (
	PaginationDefaultLimit = 10
	PaginationDefaultPage  = 1
)

var (
	ErrUnknownRole           = errors.New("unknown role")
	ErrUnknownApprovalStatus = errors.New("unknown approval status")
)
