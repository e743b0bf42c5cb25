package email

import (
	"github.com/quickmove-ch/intake/internal/domain"
)

// This file maps the enum codes of a quote request to the display strings
// used in the two email documents. The labels match the wording the website
// shows when the customer makes the selection.

// StaffData is the template data for the staff notification document.
type StaffData struct {
	QuoteID string

	// Move Details
	MoveType    string
	From        string
	To          string
	Date        string
	Flexibility string

	// Property Information
	SurfaceArea  float64
	Rooms        float64
	People       float64
	FloorFrom    string
	FloorTo      string
	ElevatorFrom string
	ElevatorTo   string
	ParkingFrom  string
	ParkingTo    string

	// Services Requested
	PackingLevel string
	Disassembly  string
	Assembly     string
	Cleaning     string
	Storage      string
	Insurance    string

	// Customer Information
	Name              string
	Email             string
	Phone             string
	ContactPreference string
	Remarks           string
}

// CustomerData is the template data for the customer confirmation document.
type CustomerData struct {
	Name              string
	QuoteID           string
	From              string
	To                string
	Date              string
	ContactPreference string
	SiteURL           string
}

func staffTemplateData(req *domain.QuoteRequest) StaffData {
	return StaffData{
		QuoteID: req.QuoteID,

		MoveType:    moveTypeLabel(req.MoveType),
		From:        req.FromZip + " " + req.FromCity,
		To:          req.ToZip + " " + req.ToCity,
		Date:        dateOr(req.Date, "Not specified"),
		Flexibility: flexibilityLabel(req.Flexibility),

		SurfaceArea:  req.SurfaceAreaValue(),
		Rooms:        req.RoomsValue(),
		People:       req.PeopleValue(),
		FloorFrom:    orDefault(req.FloorFrom, "N/A"),
		FloorTo:      orDefault(req.FloorTo, "N/A"),
		ElevatorFrom: elevatorLabel(req.ElevatorFrom),
		ElevatorTo:   elevatorLabel(req.ElevatorTo),
		ParkingFrom:  parkingLabel(req.ParkingFrom),
		ParkingTo:    parkingLabel(req.ParkingTo),

		PackingLevel: packingLabel(req.PackingLevel),
		Disassembly:  glyph(req.NeedsDisassembly()),
		Assembly:     glyph(req.NeedsAssembly()),
		Cleaning:     glyph(req.NeedsCleaning()),
		Storage:      glyph(req.NeedsStorage()),
		Insurance:    insuranceLabel(req.InsuranceValue),

		Name:              salutationLabel(req.Salutation) + " " + req.FullName(),
		Email:             req.Email,
		Phone:             req.Phone,
		ContactPreference: contactPreferenceLabel(req.ContactPreference),
		Remarks:           req.Remarks,
	}
}

func customerTemplateData(req *domain.QuoteRequest, siteURL string) CustomerData {
	return CustomerData{
		Name:              req.FullName(),
		QuoteID:           req.QuoteID,
		From:              req.FromZip + " " + req.FromCity,
		To:                req.ToZip + " " + req.ToCity,
		Date:              dateOr(req.Date, "To be confirmed"),
		ContactPreference: contactPreferenceLabel(req.ContactPreference),
		SiteURL:           siteURL,
	}
}

// glyph renders a boolean add-on flag as the check/cross used in the staff
// document.
func glyph(v bool) string {
	if v {
		return "✅ Yes"
	}
	return "❌ No"
}

func moveTypeLabel(m domain.MoveType) string {
	if m == domain.MoveTypeBusiness {
		return "Business Move"
	}
	return "Private Move"
}

func flexibilityLabel(f domain.Flexibility) string {
	switch f {
	case domain.Flexibility3Days:
		return "+/- 3 Days"
	case domain.FlexibilityWeek:
		return "+/- 1 Week"
	default:
		return "Fixed Date"
	}
}

func elevatorLabel(e domain.Elevator) string {
	switch e {
	case domain.ElevatorYes:
		return "Yes, Large"
	case domain.ElevatorSmall:
		return "Yes, Small"
	case domain.ElevatorLiftNeeded:
		return "External Lift Needed"
	default:
		return "No Elevator"
	}
}

func parkingLabel(p domain.Parking) string {
	switch p {
	case domain.ParkingDriveway:
		return "Driveway / Private"
	case domain.ParkingFar:
		return "Street (> 20m)"
	case domain.ParkingPermitNeeded:
		return "Permit Required"
	default:
		return "Street (< 20m)"
	}
}

func packingLabel(p domain.PackingLevel) string {
	switch p {
	case domain.PackingFragile:
		return "Fragile Only"
	case domain.PackingFull:
		return "Full Service"
	case domain.PackingVIP:
		return "VIP White Glove"
	default:
		return "Self Pack"
	}
}

func insuranceLabel(i domain.InsuranceLevel) string {
	switch i {
	case domain.InsuranceMedium:
		return "Enhanced Coverage"
	case domain.InsuranceHigh:
		return "Premium Coverage"
	default:
		return "Standard Coverage"
	}
}

func salutationLabel(s domain.Salutation) string {
	switch s {
	case domain.SalutationMs:
		return "Ms."
	case domain.SalutationMx:
		return "Mx."
	default:
		return "Mr."
	}
}

func contactPreferenceLabel(c domain.ContactPreference) string {
	switch c {
	case domain.ContactByPhone:
		return "Phone"
	case domain.ContactByWhatsApp:
		return "WhatsApp"
	default:
		return "Email"
	}
}

func dateOr(date, fallback string) string {
	if date == "" {
		return fallback
	}
	return date
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
