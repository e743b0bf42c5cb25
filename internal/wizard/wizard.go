// Package wizard implements the four-step quote-request flow as an explicit
// state machine.
//
// The wizard owns a single draft record for one page session. Steps advance
// strictly one at a time; each step's continue action is gated only by that
// step's own required fields. On final submission the accumulated draft is
// flattened into one quote payload and posted exactly once through a
// Submitter.
package wizard

import (
	"context"
	"time"

	"github.com/quickmove-ch/intake/internal/domain"
)

// =============================================================================
// Steps
// =============================================================================

// Step identifies a wizard screen.
type Step int

const (
	// StepRoute collects move type, origin/destination and timeline.
	StepRoute Step = iota + 1

	// StepProperty collects volume and access details. Never blocks:
	// every control has a default.
	StepProperty

	// StepServices collects packing level, add-ons and insurance. Never blocks.
	StepServices

	// StepContact collects personal details. Its terminal action is Submit,
	// not Advance.
	StepContact
)

// String returns the step name used in logs and error messages.
func (s Step) String() string {
	switch s {
	case StepRoute:
		return "route"
	case StepProperty:
		return "property"
	case StepServices:
		return "services"
	case StepContact:
		return "contact"
	}
	return "unknown"
}

// =============================================================================
// Draft
// =============================================================================

// SideAccess describes building access on one side of the move.
type SideAccess struct {
	Floor    string
	Elevator domain.Elevator
	Parking  domain.Parking
}

// Draft is the in-progress quote record accumulated across wizard steps.
//
// The draft is additive-only: later steps never invalidate earlier fields.
type Draft struct {
	MoveType    domain.MoveType
	FromZip     string
	FromCity    string
	ToZip       string
	ToCity      string
	Date        *time.Time
	Flexibility domain.Flexibility

	SurfaceArea float64
	Rooms       float64
	People      float64
	Origin      SideAccess
	Destination SideAccess

	PackingLevel     domain.PackingLevel
	Disassembly      bool
	Assembly         bool
	Cleaning         bool
	Storage          bool
	InsuranceValue   domain.InsuranceLevel
	SpecialItemsNote string

	Salutation        domain.Salutation
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	ContactPreference domain.ContactPreference
	Remarks           string
}

// defaultDraft mirrors the form's default control values, so the property and
// services steps can always advance.
func defaultDraft() Draft {
	return Draft{
		MoveType:          domain.MoveTypePrivate,
		Flexibility:       domain.FlexibilityFixed,
		SurfaceArea:       50,
		Rooms:             2,
		People:            2,
		Origin:            SideAccess{Floor: "1", Elevator: domain.ElevatorNo, Parking: domain.ParkingStreet},
		Destination:       SideAccess{Floor: "1", Elevator: domain.ElevatorNo, Parking: domain.ParkingStreet},
		PackingLevel:      domain.PackingNone,
		InsuranceValue:    domain.InsuranceStandard,
		Salutation:        domain.SalutationMr,
		ContactPreference: domain.ContactByEmail,
	}
}

// Submission flattens the draft into the wire payload posted to the intake
// endpoint. Every collected field is carried over; nothing is dropped.
func (d *Draft) Submission() *domain.QuoteSubmission {
	sub := &domain.QuoteSubmission{
		MoveType:          d.MoveType,
		FromZip:           d.FromZip,
		FromCity:          d.FromCity,
		ToZip:             d.ToZip,
		ToCity:            d.ToCity,
		Flexibility:       d.Flexibility,
		SurfaceArea:       ptr(d.SurfaceArea),
		Rooms:             ptr(d.Rooms),
		People:            ptr(d.People),
		FloorFrom:         d.Origin.Floor,
		FloorTo:           d.Destination.Floor,
		ElevatorFrom:      d.Origin.Elevator,
		ElevatorTo:        d.Destination.Elevator,
		ParkingFrom:       d.Origin.Parking,
		ParkingTo:         d.Destination.Parking,
		PackingLevel:      d.PackingLevel,
		Disassembly:       boolPtr(d.Disassembly),
		Assembly:          boolPtr(d.Assembly),
		Cleaning:          boolPtr(d.Cleaning),
		Storage:           boolPtr(d.Storage),
		InsuranceValue:    d.InsuranceValue,
		Salutation:        d.Salutation,
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		Email:             d.Email,
		Phone:             d.Phone,
		ContactPreference: d.ContactPreference,
		Remarks:           mergeRemarks(d.SpecialItemsNote, d.Remarks),
	}
	if d.Date != nil {
		sub.Date = d.Date.Format("2006-01-02")
	}
	return sub
}

// mergeRemarks folds the services-step special items note into the free-text
// remarks field of the wire payload, which has no separate slot for it.
func mergeRemarks(specialItems, remarks string) string {
	switch {
	case specialItems == "":
		return remarks
	case remarks == "":
		return specialItems
	default:
		return specialItems + "\n" + remarks
	}
}

func ptr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool   { return &v }

// =============================================================================
// Step Inputs
// =============================================================================

// StepInput is one screen's worth of user edits. Each input validates its own
// step's gate and knows how to merge itself into the draft.
type StepInput interface {
	step() Step
	validate(now time.Time) *domain.ValidationError
	apply(d *Draft)
}

// RouteInput carries the step-1 fields. The four zip/city fields gate the
// step; move type, date and flexibility are collected but never block.
type RouteInput struct {
	MoveType    domain.MoveType
	FromZip     string
	FromCity    string
	ToZip       string
	ToCity      string
	Date        *time.Time
	Flexibility domain.Flexibility
}

func (RouteInput) step() Step { return StepRoute }

func (in RouteInput) validate(now time.Time) *domain.ValidationError {
	ve := &domain.ValidationError{Op: "wizard.route", Fields: map[string]string{}}
	if in.FromZip == "" {
		ve.AddField("fromZip", "is required")
	}
	if in.FromCity == "" {
		ve.AddField("fromCity", "is required")
	}
	if in.ToZip == "" {
		ve.AddField("toZip", "is required")
	}
	if in.ToCity == "" {
		ve.AddField("toCity", "is required")
	}
	if in.Date != nil {
		// Compare calendar days in the clock's location; Truncate would
		// cut on the UTC epoch grid and misclassify near midnight.
		y, m, d := now.Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
		if in.Date.Before(today) {
			ve.AddField("date", "cannot be in the past")
		}
	}
	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}

func (in RouteInput) apply(d *Draft) {
	if in.MoveType != "" {
		d.MoveType = in.MoveType
	}
	d.FromZip = in.FromZip
	d.FromCity = in.FromCity
	d.ToZip = in.ToZip
	d.ToCity = in.ToCity
	d.Date = in.Date
	if in.Flexibility != "" {
		d.Flexibility = in.Flexibility
	}
}

// PropertyInput carries the step-2 fields. Sliders and selects always hold a
// value, so the step never blocks.
type PropertyInput struct {
	SurfaceArea float64
	Rooms       float64
	People      float64
	Origin      SideAccess
	Destination SideAccess
}

func (PropertyInput) step() Step { return StepProperty }

func (PropertyInput) validate(time.Time) *domain.ValidationError { return nil }

func (in PropertyInput) apply(d *Draft) {
	d.SurfaceArea = in.SurfaceArea
	d.Rooms = in.Rooms
	d.People = in.People
	d.Origin = in.Origin
	d.Destination = in.Destination
}

// ServicesInput carries the step-3 selections. Never blocks.
type ServicesInput struct {
	PackingLevel     domain.PackingLevel
	Disassembly      bool
	Assembly         bool
	Cleaning         bool
	Storage          bool
	InsuranceValue   domain.InsuranceLevel
	SpecialItemsNote string
}

func (ServicesInput) step() Step { return StepServices }

func (ServicesInput) validate(time.Time) *domain.ValidationError { return nil }

func (in ServicesInput) apply(d *Draft) {
	d.PackingLevel = in.PackingLevel
	d.Disassembly = in.Disassembly
	d.Assembly = in.Assembly
	d.Cleaning = in.Cleaning
	d.Storage = in.Storage
	d.InsuranceValue = in.InsuranceValue
	d.SpecialItemsNote = in.SpecialItemsNote
}

// ContactInput carries the step-4 fields. First name, last name and email
// gate submission; email format is left to the server.
type ContactInput struct {
	Salutation        domain.Salutation
	FirstName         string
	LastName          string
	Email             string
	Phone             string
	ContactPreference domain.ContactPreference
	Remarks           string
}

func (ContactInput) step() Step { return StepContact }

func (in ContactInput) validate(time.Time) *domain.ValidationError {
	ve := &domain.ValidationError{Op: "wizard.contact", Fields: map[string]string{}}
	if in.FirstName == "" {
		ve.AddField("firstName", "is required")
	}
	if in.LastName == "" {
		ve.AddField("lastName", "is required")
	}
	if in.Email == "" {
		ve.AddField("email", "is required")
	}
	if len(ve.Fields) > 0 {
		return ve
	}
	return nil
}

func (in ContactInput) apply(d *Draft) {
	if in.Salutation != "" {
		d.Salutation = in.Salutation
	}
	d.FirstName = in.FirstName
	d.LastName = in.LastName
	d.Email = in.Email
	d.Phone = in.Phone
	if in.ContactPreference != "" {
		d.ContactPreference = in.ContactPreference
	}
	d.Remarks = in.Remarks
}

// =============================================================================
// Submitter
// =============================================================================

// Receipt is the server's acknowledgement of a successful submission.
type Receipt struct {
	QuoteID string
	Message string
}

// Submitter posts a completed quote payload to the intake endpoint.
//
// Implementations: apiclient.Client (HTTP). Mocked in tests.
type Submitter interface {
	SubmitQuote(ctx context.Context, sub *domain.QuoteSubmission) (*Receipt, error)
}

// =============================================================================
// Wizard
// =============================================================================

// Wizard is the page-level controller for one quote-request session.
//
// Advance, Retreat and Submit are the only mutators; each returns its outcome
// instead of mutating silently. A Wizard is owned by a single session and is
// not safe for concurrent use.
type Wizard struct {
	step      Step
	submitted bool
	draft     Draft
	submitter Submitter

	onNavigate func(Step) // fired after every successful step change
	now        func() time.Time
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithNavigationHook registers a callback invoked after every successful
// Advance or Retreat, so the rendering layer can scroll the wizard container
// back into view.
func WithNavigationHook(fn func(Step)) Option {
	return func(w *Wizard) { w.onNavigate = fn }
}

// WithClock overrides the time source used for past-date checks.
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) { w.now = now }
}

// New creates a wizard on the route step with the form's default draft.
func New(submitter Submitter, opts ...Option) *Wizard {
	w := &Wizard{
		step:      StepRoute,
		draft:     defaultDraft(),
		submitter: submitter,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Submitted reports whether the wizard reached its terminal state.
func (w *Wizard) Submitted() bool { return w.submitted }

// Draft returns a copy of the accumulated draft.
func (w *Wizard) Draft() Draft { return w.draft }

// Advance validates the input against the current step's gate, merges it into
// the draft and moves forward one step, capped at the contact step.
//
// On a validation failure the wizard stays put and the draft is untouched;
// the returned *domain.ValidationError names the offending fields.
func (w *Wizard) Advance(input StepInput) error {
	if w.submitted {
		return domain.Invalid("wizard.advance", "the quote request has already been submitted")
	}
	if input.step() != w.step {
		return domain.Errorf(domain.EINVALID, "wizard.advance",
			"received %s input while on the %s step", input.step(), w.step)
	}
	if ve := input.validate(w.now()); ve != nil {
		return ve
	}

	input.apply(&w.draft)
	if w.step < StepContact {
		w.step++
	}
	w.navigate()
	return nil
}

// Retreat moves back one step, floored at the route step. Draft edits from
// later steps are retained.
func (w *Wizard) Retreat() {
	if w.submitted || w.step == StepRoute {
		return
	}
	w.step--
	w.navigate()
}

// Submit is the contact step's terminal action. It validates the contact
// gate, merges the input, and posts the full draft exactly once.
//
// On any failure the wizard stays on the contact step with the draft intact,
// so the user can correct and resubmit without re-entering data.
func (w *Wizard) Submit(ctx context.Context, input ContactInput) (*Receipt, error) {
	if w.submitted {
		return nil, domain.Invalid("wizard.submit", "the quote request has already been submitted")
	}
	if w.step != StepContact {
		return nil, domain.Invalid("wizard.submit", "submission is only possible from the contact step")
	}
	if ve := input.validate(w.now()); ve != nil {
		return nil, ve
	}

	input.apply(&w.draft)

	receipt, err := w.submitter.SubmitQuote(ctx, w.draft.Submission())
	if err != nil {
		return nil, err
	}

	w.submitted = true
	return receipt, nil
}

func (w *Wizard) navigate() {
	if w.onNavigate != nil {
		w.onNavigate(w.step)
	}
}
