package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validSubmission returns a complete, valid quote submission.
// Tests mutate individual fields to probe single validation rules.
func validSubmission() *QuoteSubmission {
	return &QuoteSubmission{
		MoveType:          MoveTypePrivate,
		FromZip:           "8001",
		FromCity:          "Zürich",
		ToZip:             "1201",
		ToCity:            "Geneva",
		Flexibility:       FlexibilityFixed,
		SurfaceArea:       f64(50),
		Rooms:             f64(2.5),
		People:            f64(2),
		FloorFrom:         "1",
		FloorTo:           "3",
		ElevatorFrom:      ElevatorNo,
		ElevatorTo:        ElevatorNo,
		ParkingFrom:       ParkingStreet,
		ParkingTo:         ParkingStreet,
		PackingLevel:      PackingFull,
		Disassembly:       b(true),
		Assembly:          b(false),
		Cleaning:          b(false),
		Storage:           b(false),
		InsuranceValue:    InsuranceStandard,
		Salutation:        SalutationMr,
		FirstName:         "John",
		LastName:          "Doe",
		Email:             "john@example.com",
		Phone:             "+41791234567",
		ContactPreference: ContactByEmail,
	}
}

func f64(v float64) *float64 { return &v }
func b(v bool) *bool         { return &v }

func TestQuoteSubmission_Validate_Valid(t *testing.T) {
	assert.NoError(t, validSubmission().Validate())
}

func TestQuoteSubmission_Validate_FieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *QuoteSubmission)
		field  string
	}{
		{"missing moveType", func(q *QuoteSubmission) { q.MoveType = "" }, "moveType"},
		{"unknown moveType", func(q *QuoteSubmission) { q.MoveType = "corporate" }, "moveType"},
		{"missing fromZip", func(q *QuoteSubmission) { q.FromZip = "" }, "fromZip"},
		{"whitespace fromCity", func(q *QuoteSubmission) { q.FromCity = "   " }, "fromCity"},
		{"missing toZip", func(q *QuoteSubmission) { q.ToZip = "" }, "toZip"},
		{"missing toCity", func(q *QuoteSubmission) { q.ToCity = "" }, "toCity"},
		{"unknown flexibility", func(q *QuoteSubmission) { q.Flexibility = "whenever" }, "flexibility"},
		{"missing surfaceArea", func(q *QuoteSubmission) { q.SurfaceArea = nil }, "surfaceArea"},
		{"surfaceArea below minimum", func(q *QuoteSubmission) { q.SurfaceArea = f64(9) }, "surfaceArea"},
		{"missing rooms", func(q *QuoteSubmission) { q.Rooms = nil }, "rooms"},
		{"rooms below minimum", func(q *QuoteSubmission) { q.Rooms = f64(0.5) }, "rooms"},
		{"rooms not half increment", func(q *QuoteSubmission) { q.Rooms = f64(2.25) }, "rooms"},
		{"missing people", func(q *QuoteSubmission) { q.People = nil }, "people"},
		{"people below minimum", func(q *QuoteSubmission) { q.People = f64(0) }, "people"},
		{"unknown elevatorFrom", func(q *QuoteSubmission) { q.ElevatorFrom = "maybe" }, "elevatorFrom"},
		{"unknown elevatorTo", func(q *QuoteSubmission) { q.ElevatorTo = "" }, "elevatorTo"},
		{"unknown parkingFrom", func(q *QuoteSubmission) { q.ParkingFrom = "garage" }, "parkingFrom"},
		{"unknown parkingTo", func(q *QuoteSubmission) { q.ParkingTo = "" }, "parkingTo"},
		{"unknown packingLevel", func(q *QuoteSubmission) { q.PackingLevel = "partial" }, "packingLevel"},
		{"missing disassembly", func(q *QuoteSubmission) { q.Disassembly = nil }, "disassembly"},
		{"missing assembly", func(q *QuoteSubmission) { q.Assembly = nil }, "assembly"},
		{"missing cleaning", func(q *QuoteSubmission) { q.Cleaning = nil }, "cleaning"},
		{"missing storage", func(q *QuoteSubmission) { q.Storage = nil }, "storage"},
		{"unknown insuranceValue", func(q *QuoteSubmission) { q.InsuranceValue = "max" }, "insuranceValue"},
		{"unknown salutation", func(q *QuoteSubmission) { q.Salutation = "dr" }, "salutation"},
		{"missing firstName", func(q *QuoteSubmission) { q.FirstName = "" }, "firstName"},
		{"missing lastName", func(q *QuoteSubmission) { q.LastName = "" }, "lastName"},
		{"missing email", func(q *QuoteSubmission) { q.Email = "" }, "email"},
		{"malformed email", func(q *QuoteSubmission) { q.Email = "not-an-email" }, "email"},
		{"email without domain dot", func(q *QuoteSubmission) { q.Email = "john@example" }, "email"},
		{"missing phone", func(q *QuoteSubmission) { q.Phone = "" }, "phone"},
		{"unknown contactPreference", func(q *QuoteSubmission) { q.ContactPreference = "fax" }, "contactPreference"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validSubmission()
			tt.mutate(q)

			err := q.Validate()
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Contains(t, ve.Fields, tt.field)
		})
	}
}

// The wizard offers "small" elevators and "far" parking; the intake schema
// accepts the full wizard sets.
func TestQuoteSubmission_Validate_FullWizardEnumSets(t *testing.T) {
	q := validSubmission()
	q.ElevatorFrom = ElevatorSmall
	q.ElevatorTo = ElevatorLiftNeeded
	q.ParkingFrom = ParkingFar
	q.ParkingTo = ParkingDriveway

	assert.NoError(t, q.Validate())
}

func TestQuoteSubmission_Validate_CollectsAllFailingFields(t *testing.T) {
	q := validSubmission()
	q.FromZip = ""
	q.Email = "nope"
	q.PackingLevel = "everything"

	err := q.Validate()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Fields, 3)
}

func TestQuoteSubmission_Validate_DateIsOptional(t *testing.T) {
	q := validSubmission()
	q.Date = ""
	assert.NoError(t, q.Validate())

	// The server never parses the date; any string is acceptable.
	q.Date = "sometime next spring"
	assert.NoError(t, q.Validate())
}

func TestNewQuoteID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		id := NewQuoteID()
		assert.Regexp(t, QuoteIDPattern, id)
		seen[id] = true
	}
	// Random 5-digit suffixes: 500 draws should not all collapse to one value.
	assert.Greater(t, len(seen), 1)
}

func TestQuoteRequest_Accessors(t *testing.T) {
	r := validSubmission().Request("QM-12345")

	assert.Equal(t, "QM-12345", r.QuoteID)
	assert.Equal(t, "John Doe", r.FullName())
	assert.Equal(t, 50.0, r.SurfaceAreaValue())
	assert.Equal(t, 2.5, r.RoomsValue())
	assert.Equal(t, 2.0, r.PeopleValue())
	assert.True(t, r.NeedsDisassembly())
	assert.False(t, r.NeedsAssembly())
	assert.False(t, r.NeedsCleaning())
	assert.False(t, r.NeedsStorage())
}
