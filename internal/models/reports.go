package models

import "time"

// Pension sources for senior citizen reports.
const (
	PensionSSS     = "sss"
	PensionGSIS    = "gsis"
	PensionPrivate = "private"
	PensionNone    = "none"
	PensionOther   = "other"
)

// Mobility status values for senior citizen reports.
const (
	MobilityIndependent = "independent"
	MobilityAssisted    = "assisted"
	MobilityWheelchair  = "wheelchair"
	MobilityBedridden   = "bedridden"
)

// SeniorCitizenReport tracks a senior citizen's pension, health, and caregiver
// details. One-to-one with a resident: a resident has at most one.
type SeniorCitizenReport struct {
	ID         uint            `json:"id"`
	ResidentID uint            `json:"residentId"`
	Resident   ResidentSummary `json:"resident"`

	PensionSource    string     `json:"pensionSource,omitempty"`
	PensionAmount    *float64   `json:"pensionAmount,omitempty"`
	HealthConditions string     `json:"healthConditions,omitempty"`
	Medications      string     `json:"medications,omitempty"`
	MobilityStatus   string     `json:"mobilityStatus"`
	CaregiverName    string     `json:"caregiverName,omitempty"`
	CaregiverContact string     `json:"caregiverContact,omitempty"`
	EmergencyContact string     `json:"emergencyContact,omitempty"`
	EmergencyNumber  string     `json:"emergencyContactNumber,omitempty"`
	LastCheckupDate  *time.Time `json:"lastCheckupDate,omitempty"`
	BloodPressure    string     `json:"bloodPressure,omitempty"`
	BloodSugar       string     `json:"bloodSugar,omitempty"`

	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Business types for sari-sari store / carenderia reports.
const (
	BusinessSariSari   = "sari_sari"
	BusinessCarenderia = "carenderia"
	BusinessBoth       = "both"
	BusinessOther      = "other"
)

// SariSariStoreReport tracks a small food business run by a resident. An owner
// may have several businesses on record.
type SariSariStoreReport struct {
	ID      uint            `json:"id"`
	OwnerID uint            `json:"ownerId"`
	Owner   ResidentSummary `json:"owner"`

	BusinessName    string `json:"businessName"`
	BusinessType    string `json:"businessType"`
	BusinessAddress string `json:"businessAddress"`

	BusinessPermitNumber string `json:"businessPermitNumber,omitempty"`
	DTIRegistration      string `json:"dtiRegistration,omitempty"`
	BIRRegistration      string `json:"birRegistration,omitempty"`
	FoodHandlerPermit    string `json:"foodHandlerPermit,omitempty"`

	OperatingHours    string   `json:"operatingHours,omitempty"`
	NumberOfEmployees int      `json:"numberOfEmployees"`
	AverageDailySales *float64 `json:"averageDailySales,omitempty"`

	HasProperSanitation   bool       `json:"hasProperSanitation"`
	HasFireSafetyMeasures bool       `json:"hasFireSafetyMeasures"`
	LastInspectionDate    *time.Time `json:"lastInspectionDate,omitempty"`
	InspectionRemarks     string     `json:"inspectionRemarks,omitempty"`

	IsActive    bool       `json:"isActive"`
	DateStarted *time.Time `json:"dateStarted,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// FourPsBeneficiaryReport tracks a 4Ps (Pantawid Pamilyang Pilipino Program)
// conditional cash transfer beneficiary. One-to-one with a resident.
type FourPsBeneficiaryReport struct {
	ID            uint            `json:"id"`
	BeneficiaryID uint            `json:"beneficiaryId"`
	Beneficiary   ResidentSummary `json:"beneficiary"`

	HouseholdID string `json:"householdId"`
	SetOfYear   int    `json:"setOfYear"`

	EducationCompliance      bool `json:"educationCompliance"`
	HealthCompliance         bool `json:"healthCompliance"`
	FamilyDevelopmentSession bool `json:"familyDevelopmentSessions"`

	NumberOfChildren   int `json:"numberOfChildren"`
	PregnantWomenCount int `json:"pregnantWomenCount"`

	MonthlyGrantAmount float64    `json:"monthlyGrantAmount"`
	LastPayoutDate     *time.Time `json:"lastPayoutDate,omitempty"`

	IsActive   bool       `json:"isActive"`
	ExitDate   *time.Time `json:"exitDate,omitempty"`
	ExitReason string     `json:"exitReason,omitempty"`
	Remarks    string     `json:"remarks,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Pregnancy outcomes.
const (
	OutcomeOngoing     = "ongoing"
	OutcomeLiveBirth   = "live_birth"
	OutcomeStillbirth  = "stillbirth"
	OutcomeMiscarriage = "miscarriage"
	OutcomeAbortion    = "abortion"
)

// Trimester display labels derived from gestation weeks.
const (
	TrimesterFirst   = "1st Trimester"
	TrimesterSecond  = "2nd Trimester"
	TrimesterThird   = "3rd Trimester"
	TrimesterUnknown = "Unknown"
)

// PregnancyReport tracks one pregnancy of a resident. A woman may have several
// records across time, disambiguated by PregnancyNumber.
type PregnancyReport struct {
	ID              uint            `json:"id"`
	ResidentID      uint            `json:"residentId"`
	PregnantWoman   ResidentSummary `json:"pregnantWoman"`
	PregnancyNumber int             `json:"pregnancyNumber"`

	LastMenstrualPeriod time.Time `json:"lastMenstrualPeriod"`
	ExpectedDueDate     time.Time `json:"expectedDueDate"`
	GestationWeeks      *int      `json:"ageOfGestationWeeks,omitempty"`

	PrePregnancyWeight *float64 `json:"prePregnancyWeight,omitempty"`
	CurrentWeight      *float64 `json:"currentWeight,omitempty"`
	Height             *float64 `json:"height,omitempty"`
	BloodPressure      string   `json:"bloodPressure,omitempty"`

	HighRiskPregnancy bool   `json:"highRiskPregnancy"`
	RiskFactors       string `json:"riskFactors,omitempty"`
	Complications     string `json:"complications,omitempty"`

	AttendingPhysician     string     `json:"attendingPhysician,omitempty"`
	HealthFacility         string     `json:"healthFacility,omitempty"`
	NumberOfPrenatalVisits int        `json:"numberOfPrenatalVisits"`
	LastPrenatalVisit      *time.Time `json:"lastPrenatalVisit,omitempty"`
	NextPrenatalVisit      *time.Time `json:"nextPrenatalVisit,omitempty"`

	TetanusToxoidDoses    int  `json:"tetanusToxoidDoses"`
	IronFolateSupplements bool `json:"ironFolateSupplements"`
	CalciumSupplements    bool `json:"calciumSupplements"`

	BirthPlanReady   bool   `json:"birthPlanReady"`
	DeliveryFacility string `json:"deliveryFacility,omitempty"`
	BirthAttendant   string `json:"birthAttendant,omitempty"`

	PregnancyOutcome string     `json:"pregnancyOutcome"`
	DeliveryDate     *time.Time `json:"deliveryDate,omitempty"`
	DeliveryNotes    string     `json:"deliveryNotes,omitempty"`

	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Trimester derives the trimester label from the gestation weeks on record:
// unknown weeks -> "Unknown", <=12 -> first, <=28 -> second, else third.
func (p *PregnancyReport) Trimester() string {
	if p.GestationWeeks == nil {
		return TrimesterUnknown
	}
	switch {
	case *p.GestationWeeks <= 12:
		return TrimesterFirst
	case *p.GestationWeeks <= 28:
		return TrimesterSecond
	default:
		return TrimesterThird
	}
}

// Health report types.
const (
	HealthReportRoutineCheckup = "routine_checkup"
	HealthReportImmunization   = "immunization"
	HealthReportIllness        = "illness"
	HealthReportInjury         = "injury"
	HealthReportFollowUp       = "follow_up"
	HealthReportReferral       = "referral"
)

// HealthReport is a general health encounter recorded by a barangay health
// worker. A resident may have any number of them.
type HealthReport struct {
	ID         uint            `json:"id"`
	ResidentID uint            `json:"residentId"`
	Resident   ResidentSummary `json:"resident"`

	ReportType string `json:"reportType"`

	Temperature            *float64 `json:"temperature,omitempty"`
	BloodPressureSystolic  *int     `json:"bloodPressureSystolic,omitempty"`
	BloodPressureDiastolic *int     `json:"bloodPressureDiastolic,omitempty"`
	HeartRate              *int     `json:"heartRate,omitempty"`
	Weight                 *float64 `json:"weight,omitempty"`
	Height                 *float64 `json:"height,omitempty"`

	ChiefComplaint        string `json:"chiefComplaint,omitempty"`
	Diagnosis             string `json:"diagnosis,omitempty"`
	TreatmentGiven        string `json:"treatmentGiven,omitempty"`
	MedicationsPrescribed string `json:"medicationsPrescribed,omitempty"`
	Recommendations       string `json:"recommendations,omitempty"`

	HealthcareProvider string `json:"healthcareProvider"`
	Facility           string `json:"facility,omitempty"`

	FollowUpNeeded   bool       `json:"followUpNeeded"`
	FollowUpDate     *time.Time `json:"followUpDate,omitempty"`
	ReferralFacility string     `json:"referralFacility,omitempty"`

	ReportDate time.Time `json:"reportDate"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
