package models

import (
	"fmt"
	"time"
)

// Gender codes stored on a resident record.
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// Civil status values.
const (
	CivilStatusSingle    = "single"
	CivilStatusMarried   = "married"
	CivilStatusWidowed   = "widowed"
	CivilStatusSeparated = "separated"
	CivilStatusDivorced  = "divorced"
)

// Educational attainment values.
const (
	EducationNoFormal     = "no_formal"
	EducationElementary   = "elementary"
	EducationHighSchool   = "high_school"
	EducationVocational   = "vocational"
	EducationCollege      = "college"
	EducationPostGraduate = "post_graduate"
)

// Employment status values.
const (
	EmploymentEmployed     = "employed"
	EmploymentUnemployed   = "unemployed"
	EmploymentStudent      = "student"
	EmploymentRetired      = "retired"
	EmploymentSelfEmployed = "self_employed"
	EmploymentOFW          = "ofw"
)

// Resident is the canonical record of a person in the barangay registry.
// Every case report references exactly one resident. Residents are never
// hard-deleted; deactivation happens through IsActive.
//
// Text fields that may simply be blank are plain strings; fields where the
// database distinguishes NULL from a zero value use pointers.
type Resident struct {
	ID uint `json:"id"`

	// Personal information
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName,omitempty"`
	LastName   string `json:"lastName"`
	Suffix     string `json:"suffix,omitempty"`

	// Contact information
	ContactNumber string `json:"contactNumber,omitempty"`
	Email         string `json:"email,omitempty"`

	// Basic information
	DateOfBirth  time.Time `json:"dateOfBirth"`
	PlaceOfBirth string    `json:"placeOfBirth"`
	Gender       string    `json:"gender"`
	CivilStatus  string    `json:"civilStatus"`
	Citizenship  string    `json:"citizenship"`

	// Address
	HouseNumber      string `json:"houseNumber"`
	Street           string `json:"street"`
	Zone             string `json:"zone"`
	Barangay         string `json:"barangay"`
	CityMunicipality string `json:"cityMunicipality"`
	Province         string `json:"province"`
	ZipCode          string `json:"zipCode"`

	// Education and employment
	EducationalAttainment string   `json:"educationalAttainment"`
	EmploymentStatus      string   `json:"employmentStatus"`
	Occupation            string   `json:"occupation,omitempty"`
	MonthlyIncome         *float64 `json:"monthlyIncome,omitempty"`

	// Family information (free text, no referential integrity)
	FatherName                   string `json:"fatherName,omitempty"`
	MotherName                   string `json:"motherName,omitempty"`
	SpouseName                   string `json:"spouseName,omitempty"`
	EmergencyContactName         string `json:"emergencyContactName"`
	EmergencyContactNumber       string `json:"emergencyContactNumber"`
	EmergencyContactRelationship string `json:"emergencyContactRelationship"`

	// Government IDs (free text)
	PhilHealthNumber string `json:"philhealthNumber,omitempty"`
	SSSGSISNumber    string `json:"sssGsisNumber,omitempty"`
	TINNumber        string `json:"tinNumber,omitempty"`
	VotersID         string `json:"votersId,omitempty"`
	PrecinctNumber   string `json:"precinctNumber,omitempty"`

	// Special categories
	IsPWD            bool   `json:"isPwd"`
	PWDType          string `json:"pwdType,omitempty"`
	IsSeniorCitizen  bool   `json:"isSeniorCitizen"`
	IsSoloParent     bool   `json:"isSoloParent"`
	IsIndigenous     bool   `json:"isIndigenous"`
	Is4PsBeneficiary bool   `json:"is4psBeneficiary"`

	// Health information
	BloodType         string `json:"bloodType,omitempty"`
	Allergies         string `json:"allergies,omitempty"`
	MedicalConditions string `json:"medicalConditions,omitempty"`

	// System fields
	DateRegistered time.Time `json:"dateRegistered"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FullName returns "first [middle] last [suffix]" with optional parts skipped.
func (r *Resident) FullName() string {
	return joinName(r.FirstName, r.MiddleName, r.LastName, r.Suffix)
}

// Age returns the resident's age in whole years as of the given date, using
// calendar year/month/day comparison. Callers pass "today" explicitly so the
// value is never cached and tests stay deterministic.
//
// A date of birth in the future yields a negative value; the registry treats
// that as bad intake data rather than guessing a correction.
func (r *Resident) Age(today time.Time) int {
	age := today.Year() - r.DateOfBirth.Year()
	if today.Month() < r.DateOfBirth.Month() ||
		(today.Month() == r.DateOfBirth.Month() && today.Day() < r.DateOfBirth.Day()) {
		age--
	}
	return age
}

// CompleteAddress concatenates the address parts into a single display line.
func (r *Resident) CompleteAddress() string {
	return fmt.Sprintf("%s %s, Zone %s, %s, %s, %s %s",
		r.HouseNumber, r.Street, r.Zone, r.Barangay, r.CityMunicipality, r.Province, r.ZipCode)
}

// ResidentSummary is the slice of resident columns eager-fetched when listing
// case reports, enough for the report views to render names and ages without
// a per-row lookup.
type ResidentSummary struct {
	ID            uint      `json:"id"`
	FirstName     string    `json:"firstName"`
	MiddleName    string    `json:"middleName,omitempty"`
	LastName      string    `json:"lastName"`
	Suffix        string    `json:"suffix,omitempty"`
	DateOfBirth   time.Time `json:"dateOfBirth"`
	Gender        string    `json:"gender"`
	ContactNumber string    `json:"contactNumber,omitempty"`
	Zone          string    `json:"zone"`
}

// FullName returns the summary's display name, same format as Resident.FullName.
func (s *ResidentSummary) FullName() string {
	return joinName(s.FirstName, s.MiddleName, s.LastName, s.Suffix)
}

// joinName builds "first [middle] last [suffix]", omitting blank parts.
func joinName(first, middle, last, suffix string) string {
	name := first
	if middle != "" {
		name += " " + middle
	}
	name += " " + last
	if suffix != "" {
		name += " " + suffix
	}
	return name
}
