// Package registrations assembles and persists the one flat row that a
// completed wizard produces, and exposes it to the admin surface.
package registrations

import "time"

// PaymentStatusPending is the initial value of every new registration.
// Payment confirmation is reported later by an out-of-band collaborator
// through the admin surface.
const PaymentStatusPending = "pending"

// Registration is the flat persisted record: the merge of the three step
// payloads plus the projected spiritual history and asset URLs. Pointer
// fields map to nullable columns; a blank optional date is stored as NULL,
// never as an empty string.
type Registration struct {
	ID string

	// Step one.
	FullName               string
	DateOfBirth            string
	DateOfNewBirth         string
	DateOfWaterBaptism     string
	DateOfHolyGhostBaptism string
	MaritalStatus          string
	MinistryGift           string
	SpiritualGifts         string

	// Step two.
	Address                  string
	PhoneNumbers             string
	Email                    string
	SocialMedia              *string
	RecommendedBy            string
	PlaceOfBirth             string
	IsDivorced               string
	DivorceCount             *string
	LastDivorceDate          *string
	ChildrenCount            string
	SpouseName               string
	IsSpouseBeliever         string
	SpouseDateOfBirth        string
	AnniversaryDate          string
	AcceptedChristDate       string
	WaterBaptized            string
	PrayInTongues            string
	BelieveInTongues         *string
	DesireTongues            *string
	SpiritualGiftsManifest   string
	FormalChristianTraining  string
	TrainingInstitution      *string
	TrainingDuration         *string
	PreviouslyOrdained       string
	OrdinationType           *string
	OrdinationDate           *string
	OrdinationBy             *string
	DenominationalBackground string
	CurrentAffiliation       string
	CurrentCapacity          string
	MinistryDescription      string
	MinistryDuration         string
	MinistryIncome           string
	OtherEmployment          string
	EmploymentDescription    *string
	EmploymentAddress        *string
	PastorName               string
	PastorEmail              string
	PastorPhone              string
	MinisterName             string
	MinisterEmail            string
	MinisterPhone            string
	ElderName                string
	ElderEmail               string
	ElderPhone               string

	// Step three.
	ConversionExperience      string
	DevotionalPattern         string
	FamilyDevotional          string
	GodsCallExperience        string
	MinistryConcept           string
	FutureVision              string
	MinistrySuccessDefinition string
	MinistryStrengths         string
	MinistryWeaknesses        string
	RelationshipEvaluation    string
	NonOrdinationEffect       string
	SpouseMinistryFeelings    string

	// Derived.
	SpiritualHistory []string
	PassportURL      *string
	DocumentURL      *string
	PaymentStatus    string

	CreatedAt time.Time
}

// Summary is the admin listing projection of a registration.
type Summary struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
}
