// Package domain contains core business types and interfaces.
//
// This file defines the quote submission record received from the website's
// quote wizard, its closed enum sets, and the validation rules applied
// before any notification is dispatched.
package domain

import (
	"fmt"
	"math"
	"math/rand/v2"
	"regexp"
	"strings"
)

// =============================================================================
// Enum Sets
// =============================================================================

// MoveType distinguishes private household moves from business relocations.
type MoveType string

const (
	MoveTypePrivate  MoveType = "private"
	MoveTypeBusiness MoveType = "business"
)

// IsValid returns true if the move type is a recognized value.
func (m MoveType) IsValid() bool {
	return m == MoveTypePrivate || m == MoveTypeBusiness
}

// Flexibility describes how firm the requested moving date is.
type Flexibility string

const (
	FlexibilityFixed Flexibility = "fixed"
	Flexibility3Days Flexibility = "flexible_3_days"
	FlexibilityWeek  Flexibility = "flexible_week"
)

func (f Flexibility) IsValid() bool {
	switch f {
	case FlexibilityFixed, Flexibility3Days, FlexibilityWeek:
		return true
	}
	return false
}

// Elevator describes elevator access on one side of the move.
//
// The set matches every option the wizard offers, including "small" which an
// earlier revision of the intake schema rejected by mistake.
type Elevator string

const (
	ElevatorYes        Elevator = "yes"
	ElevatorSmall      Elevator = "small"
	ElevatorNo         Elevator = "no"
	ElevatorLiftNeeded Elevator = "lift_needed"
)

func (e Elevator) IsValid() bool {
	switch e {
	case ElevatorYes, ElevatorSmall, ElevatorNo, ElevatorLiftNeeded:
		return true
	}
	return false
}

// Parking describes the parking situation on one side of the move.
// Like Elevator, it carries the full wizard set including "far".
type Parking string

const (
	ParkingDriveway     Parking = "driveway"
	ParkingStreet       Parking = "street"
	ParkingFar          Parking = "far"
	ParkingPermitNeeded Parking = "permit_needed"
)

func (p Parking) IsValid() bool {
	switch p {
	case ParkingDriveway, ParkingStreet, ParkingFar, ParkingPermitNeeded:
		return true
	}
	return false
}

// PackingLevel is the packing service tier selected by the customer.
type PackingLevel string

const (
	PackingNone    PackingLevel = "none"
	PackingFragile PackingLevel = "fragile"
	PackingFull    PackingLevel = "full"
	PackingVIP     PackingLevel = "vip"
)

func (p PackingLevel) IsValid() bool {
	switch p {
	case PackingNone, PackingFragile, PackingFull, PackingVIP:
		return true
	}
	return false
}

// InsuranceLevel is the requested insurance coverage tier.
type InsuranceLevel string

const (
	InsuranceStandard InsuranceLevel = "standard"
	InsuranceMedium   InsuranceLevel = "medium"
	InsuranceHigh     InsuranceLevel = "high"
)

func (i InsuranceLevel) IsValid() bool {
	switch i {
	case InsuranceStandard, InsuranceMedium, InsuranceHigh:
		return true
	}
	return false
}

// Salutation is how the customer wishes to be addressed.
type Salutation string

const (
	SalutationMr Salutation = "mr"
	SalutationMs Salutation = "ms"
	SalutationMx Salutation = "mx"
)

func (s Salutation) IsValid() bool {
	switch s {
	case SalutationMr, SalutationMs, SalutationMx:
		return true
	}
	return false
}

// ContactPreference is the channel the customer wants the quote through.
type ContactPreference string

const (
	ContactByEmail    ContactPreference = "email"
	ContactByPhone    ContactPreference = "phone"
	ContactByWhatsApp ContactPreference = "whatsapp"
)

func (c ContactPreference) IsValid() bool {
	switch c {
	case ContactByEmail, ContactByPhone, ContactByWhatsApp:
		return true
	}
	return false
}

// =============================================================================
// Quote Submission (wire record)
// =============================================================================

// QuoteSubmission is the flattened quote-request payload posted by the wizard.
//
// Required numeric and boolean fields are pointers so that an absent field is
// distinguishable from a zero value: the intake contract is all-or-nothing
// and a payload missing any required field must be rejected before any email
// is sent.
type QuoteSubmission struct {
	MoveType MoveType `json:"moveType"`

	FromZip  string `json:"fromZip"`
	FromCity string `json:"fromCity"`
	ToZip    string `json:"toZip"`
	ToCity   string `json:"toCity"`

	// Optional; an opaque display string, never parsed server-side.
	Date string `json:"date,omitempty"`

	Flexibility Flexibility `json:"flexibility"`

	SurfaceArea *float64 `json:"surfaceArea"`
	Rooms       *float64 `json:"rooms"`
	People      *float64 `json:"people"`

	FloorFrom string `json:"floorFrom,omitempty"`
	FloorTo   string `json:"floorTo,omitempty"`

	ElevatorFrom Elevator `json:"elevatorFrom"`
	ElevatorTo   Elevator `json:"elevatorTo"`
	ParkingFrom  Parking  `json:"parkingFrom"`
	ParkingTo    Parking  `json:"parkingTo"`

	PackingLevel PackingLevel `json:"packingLevel"`
	Disassembly  *bool        `json:"disassembly"`
	Assembly     *bool        `json:"assembly"`
	Cleaning     *bool        `json:"cleaning"`
	Storage      *bool        `json:"storage"`

	InsuranceValue InsuranceLevel `json:"insuranceValue"`

	Salutation        Salutation        `json:"salutation"`
	FirstName         string            `json:"firstName"`
	LastName          string            `json:"lastName"`
	Email             string            `json:"email"`
	Phone             string            `json:"phone"`
	ContactPreference ContactPreference `json:"contactPreference"`
	Remarks           string            `json:"remarks,omitempty"`
}

// emailPattern is intentionally loose: one @, no whitespace, a dotted domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the submission against the intake schema.
//
// Returns a *ValidationError listing every failing field, or nil if the
// submission is acceptable. No partial processing: callers must not act on a
// submission that fails validation.
func (q *QuoteSubmission) Validate() error {
	ve := &ValidationError{Op: "quote.validate", Fields: map[string]string{}}

	if !q.MoveType.IsValid() {
		ve.AddField("moveType", "must be 'private' or 'business'")
	}

	requireString(ve, "fromZip", q.FromZip)
	requireString(ve, "fromCity", q.FromCity)
	requireString(ve, "toZip", q.ToZip)
	requireString(ve, "toCity", q.ToCity)

	if !q.Flexibility.IsValid() {
		ve.AddField("flexibility", "must be 'fixed', 'flexible_3_days' or 'flexible_week'")
	}

	if q.SurfaceArea == nil {
		ve.AddField("surfaceArea", "is required")
	} else if *q.SurfaceArea < 10 {
		ve.AddField("surfaceArea", "must be at least 10")
	}

	if q.Rooms == nil {
		ve.AddField("rooms", "is required")
	} else if *q.Rooms < 1 {
		ve.AddField("rooms", "must be at least 1")
	} else if math.Mod(*q.Rooms*2, 1) != 0 {
		ve.AddField("rooms", "must be a whole or half room count")
	}

	if q.People == nil {
		ve.AddField("people", "is required")
	} else if *q.People < 1 {
		ve.AddField("people", "must be at least 1")
	}

	if !q.ElevatorFrom.IsValid() {
		ve.AddField("elevatorFrom", "is not a recognized elevator option")
	}
	if !q.ElevatorTo.IsValid() {
		ve.AddField("elevatorTo", "is not a recognized elevator option")
	}
	if !q.ParkingFrom.IsValid() {
		ve.AddField("parkingFrom", "is not a recognized parking option")
	}
	if !q.ParkingTo.IsValid() {
		ve.AddField("parkingTo", "is not a recognized parking option")
	}

	if !q.PackingLevel.IsValid() {
		ve.AddField("packingLevel", "is not a recognized packing level")
	}

	requireBool(ve, "disassembly", q.Disassembly)
	requireBool(ve, "assembly", q.Assembly)
	requireBool(ve, "cleaning", q.Cleaning)
	requireBool(ve, "storage", q.Storage)

	if !q.InsuranceValue.IsValid() {
		ve.AddField("insuranceValue", "must be 'standard', 'medium' or 'high'")
	}

	if !q.Salutation.IsValid() {
		ve.AddField("salutation", "must be 'mr', 'ms' or 'mx'")
	}

	requireString(ve, "firstName", q.FirstName)
	requireString(ve, "lastName", q.LastName)
	requireString(ve, "phone", q.Phone)

	if strings.TrimSpace(q.Email) == "" {
		ve.AddField("email", "is required")
	} else if !emailPattern.MatchString(q.Email) {
		ve.AddField("email", "is not a valid email address")
	}

	if !q.ContactPreference.IsValid() {
		ve.AddField("contactPreference", "must be 'email', 'phone' or 'whatsapp'")
	}

	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}

func requireString(ve *ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		ve.AddField(field, "is required")
	}
}

func requireBool(ve *ValidationError, field string, value *bool) {
	if value == nil {
		ve.AddField(field, "is required")
	}
}

// =============================================================================
// Quote Request (validated record)
// =============================================================================

// QuoteRequest is a validated submission plus its server-generated quote ID.
//
// It exists only for the lifetime of one intake call: constructed after
// validation, used to render the two notification emails, then discarded.
// Nothing is persisted.
type QuoteRequest struct {
	QuoteID string
	QuoteSubmission
}

// Request pairs a validated submission with a quote ID.
// Callers must have run Validate first; the pointer fields are dereferenced
// by the accessors below.
func (q *QuoteSubmission) Request(quoteID string) *QuoteRequest {
	return &QuoteRequest{QuoteID: quoteID, QuoteSubmission: *q}
}

// FullName returns the customer's display name.
func (r *QuoteRequest) FullName() string {
	return r.FirstName + " " + r.LastName
}

// SurfaceAreaValue returns the surface area in square meters.
func (r *QuoteRequest) SurfaceAreaValue() float64 { return deref(r.SurfaceArea) }

// RoomsValue returns the room count (half rooms allowed).
func (r *QuoteRequest) RoomsValue() float64 { return deref(r.Rooms) }

// PeopleValue returns the household size.
func (r *QuoteRequest) PeopleValue() float64 { return deref(r.People) }

// NeedsDisassembly reports whether furniture disassembly was requested.
func (r *QuoteRequest) NeedsDisassembly() bool { return r.Disassembly != nil && *r.Disassembly }

// NeedsAssembly reports whether furniture assembly was requested.
func (r *QuoteRequest) NeedsAssembly() bool { return r.Assembly != nil && *r.Assembly }

// NeedsCleaning reports whether final cleaning was requested.
func (r *QuoteRequest) NeedsCleaning() bool { return r.Cleaning != nil && *r.Cleaning }

// NeedsStorage reports whether temporary storage was requested.
func (r *QuoteRequest) NeedsStorage() bool { return r.Storage != nil && *r.Storage }

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// =============================================================================
// Quote ID
// =============================================================================

// QuoteIDPattern matches the human-readable quote reference format.
var QuoteIDPattern = regexp.MustCompile(`^QM-\d{5}$`)

// NewQuoteID generates a quote reference of the form "QM-" plus a random
// 5-digit number.
//
// The ID is a human-reference token, not a key: there is no store of prior
// submissions to check against, so collisions are possible and accepted.
func NewQuoteID() string {
	return fmt.Sprintf("QM-%d", rand.IntN(90000)+10000)
}
