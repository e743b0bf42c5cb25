// Package i18n holds the quote wizard copy in the languages the site
// serves and negotiates the best match for an incoming request.
package i18n

import (
	"golang.org/x/text/language"
)

// Language identifies a supported UI language.
type Language string

const (
	English Language = "en"
	German  Language = "de"
	French  Language = "fr"
)

// DefaultLanguage is served when negotiation finds no better match.
const DefaultLanguage = English

// IsValid returns true if the language is one we ship translations for.
func (l Language) IsValid() bool {
	switch l {
	case English, German, French:
		return true
	}
	return false
}

// Translation is the full set of wizard strings for one language.
type Translation struct {
	Subtitle    string             `json:"subtitle"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	StepsNav    []string           `json:"steps_nav"`
	Buttons     TranslationButtons `json:"buttons"`
	Step1       TranslationStep1   `json:"step1"`
	Step2       TranslationStep2   `json:"step2"`
	Step3       TranslationStep3   `json:"step3"`
	Step4       TranslationStep4   `json:"step4"`
}

type TranslationButtons struct {
	ContinueProperty string `json:"continue_property"`
	ContinueServices string `json:"continue_services"`
	FinalDetails     string `json:"final_details"`
	Back             string `json:"back"`
	Submit           string `json:"submit"`
	Processing       string `json:"processing"`
}

type TranslationStep1 struct {
	Title       string `json:"title"`
	Desc        string `json:"desc"`
	MoveType    string `json:"move_type"`
	Private     string `json:"private"`
	Business    string `json:"business"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Zip         string `json:"zip"`
	City        string `json:"city"`
	Date        string `json:"date"`
	PickDate    string `json:"pick_date"`
	Flexibility string `json:"flexibility"`
	FlexFixed   string `json:"flex_fixed"`
	Flex3Days   string `json:"flex_3days"`
	FlexWeek    string `json:"flex_week"`
}

type TranslationStep2 struct {
	Title           string `json:"title"`
	Desc            string `json:"desc"`
	Surface         string `json:"surface"`
	Rooms           string `json:"rooms"`
	People          string `json:"people"`
	OriginAccess    string `json:"origin_access"`
	DestAccess      string `json:"dest_access"`
	Floor           string `json:"floor"`
	Elevator        string `json:"elevator"`
	LiftYesLarge    string `json:"lift_yes_large"`
	LiftYesSmall    string `json:"lift_yes_small"`
	LiftNo          string `json:"lift_no"`
	LiftNeeded      string `json:"lift_needed"`
	Parking         string `json:"parking"`
	ParkingDriveway string `json:"parking_driveway"`
	ParkingStreet   string `json:"parking_street"`
	ParkingFar      string `json:"parking_far"`
	ParkingPermit   string `json:"parking_permit"`
}

type TranslationStep3 struct {
	Title           string `json:"title"`
	Desc            string `json:"desc"`
	PackingHandling string `json:"packing_handling"`
	PackSelf        string `json:"pack_self"`
	PackSelfSub     string `json:"pack_self_sub"`
	PackSelfDesc    string `json:"pack_self_desc"`
	PackFragile     string `json:"pack_fragile"`
	PackFragileSub  string `json:"pack_fragile_sub"`
	PackFragileDesc string `json:"pack_fragile_desc"`
	PackFull        string `json:"pack_full"`
	PackFullSub     string `json:"pack_full_sub"`
	PackFullDesc    string `json:"pack_full_desc"`
	PackVIP         string `json:"pack_vip"`
	PackVIPSub      string `json:"pack_vip_sub"`
	PackVIPDesc     string `json:"pack_vip_desc"`
	Addons          string `json:"addons"`
	Disassembly     string `json:"disassembly"`
	DisassemblyDesc string `json:"disassembly_desc"`
	Assembly        string `json:"assembly"`
	AssemblyDesc    string `json:"assembly_desc"`
	Cleaning        string `json:"cleaning"`
	CleaningDesc    string `json:"cleaning_desc"`
	Storage         string `json:"storage"`
	StorageDesc     string `json:"storage_desc"`
	Insurance       string `json:"insurance"`
	InsStandard     string `json:"ins_standard"`
	InsMedium       string `json:"ins_medium"`
	InsHigh         string `json:"ins_high"`
}

type TranslationStep4 struct {
	Title              string `json:"title"`
	Desc               string `json:"desc"`
	Salutation         string `json:"salutation"`
	Mr                 string `json:"mr"`
	Ms                 string `json:"ms"`
	Mx                 string `json:"mx"`
	Firstname          string `json:"firstname"`
	Lastname           string `json:"lastname"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	PreferredContact   string `json:"preferred_contact"`
	ContactEmail       string `json:"contact_email"`
	ContactPhone       string `json:"contact_phone"`
	ContactWhatsapp    string `json:"contact_whatsapp"`
	Remarks            string `json:"remarks"`
	RemarksPlaceholder string `json:"remarks_placeholder"`
}

var bundles = map[Language]*Translation{
	English: &english,
	German:  &german,
	French:  &french,
}

// Lookup returns the translation bundle for lang, or nil if the
// language is not supported.
func Lookup(lang Language) *Translation {
	return bundles[lang]
}

// matcher order determines the negotiation fallback, English first.
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.German,
	language.French,
})

var matchedLanguages = []Language{English, German, French}

// Match negotiates the best supported language for an Accept-Language
// header value. An empty or unparseable header yields the default.
func Match(acceptLanguage string) Language {
	if acceptLanguage == "" {
		return DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return DefaultLanguage
	}
	_, index, _ := matcher.Match(tags...)
	return matchedLanguages[index]
}
