package schema

import "strconv"

// MaritalStatuses is the fixed literal set accepted for maritalStatus.
var MaritalStatuses = []string{"single", "married", "widow", "widower", "divorced", "remarried"}

// StepOne is the identity and spiritual-baseline payload of the first
// wizard step.
type StepOne struct {
	FullName               string `json:"fullName"`
	DateOfBirth            string `json:"dateOfBirth"`
	DateOfNewBirth         string `json:"dateOfNewBirth"`
	DateOfWaterBaptism     string `json:"dateOfWaterBaptism"`
	DateOfHolyGhostBaptism string `json:"dateOfHolyGhostBaptism"`
	MaritalStatus          string `json:"maritalStatus"`
	MinistryGift           string `json:"ministryGift"`
	SpiritualGifts         string `json:"spiritualGifts"`
}

// StepOneRules is the rule table of the first step. Every field is required.
var StepOneRules = []Rule{
	{Field: "fullName", Kind: Required, Message: "Full name is required"},
	{Field: "dateOfBirth", Kind: Required, Message: "Date of birth is required"},
	{Field: "dateOfNewBirth", Kind: Required, Message: "Date of new birth is required"},
	{Field: "dateOfWaterBaptism", Kind: Required, Message: "Date of water baptism is required"},
	{Field: "dateOfHolyGhostBaptism", Kind: Required, Message: "Date of Holy Ghost baptism is required"},
	{Field: "maritalStatus", Kind: Enum, Enum: MaritalStatuses, Message: "Marital status is required"},
	{Field: "ministryGift", Kind: Required, Message: "Ministry gift is required"},
	{Field: "spiritualGifts", Kind: Required, Message: "Spiritual gifts are required"},
}

func (s *StepOne) values() map[string]string {
	return map[string]string{
		"fullName":               s.FullName,
		"dateOfBirth":            s.DateOfBirth,
		"dateOfNewBirth":         s.DateOfNewBirth,
		"dateOfWaterBaptism":     s.DateOfWaterBaptism,
		"dateOfHolyGhostBaptism": s.DateOfHolyGhostBaptism,
		"maritalStatus":          s.MaritalStatus,
		"ministryGift":           s.MinistryGift,
		"spiritualGifts":         s.SpiritualGifts,
	}
}

// Validate checks the payload against StepOneRules.
func (s *StepOne) Validate() map[string]string {
	return Validate(StepOneRules, s.values())
}

// StepTwo is the ministerial credential application payload of the second
// wizard step.
type StepTwo struct {
	Address                  string `json:"address"`
	PhoneNumbers             string `json:"phoneNumbers"`
	Email                    string `json:"email"`
	SocialMedia              string `json:"socialMedia,omitempty"`
	RecommendedBy            string `json:"recommendedBy"`
	PlaceOfBirth             string `json:"placeOfBirth"`
	IsDivorced               string `json:"isDivorced"`
	DivorceCount             string `json:"divorceCount,omitempty"`
	LastDivorceDate          string `json:"lastDivorceDate,omitempty"`
	ChildrenCount            string `json:"childrenCount"`
	SpouseName               string `json:"spouseName"`
	IsSpouseBeliever         string `json:"isSpouseBeliever"`
	SpouseDateOfBirth        string `json:"spouseDateOfBirth"`
	AnniversaryDate          string `json:"anniversaryDate"`
	AcceptedChristDate       string `json:"acceptedChristDate"`
	WaterBaptized            string `json:"waterBaptized"`
	PrayInTongues            string `json:"prayInTongues"`
	BelieveInTongues         string `json:"believeInTongues,omitempty"`
	DesireTongues            string `json:"desireTongues,omitempty"`
	SpiritualGiftsManifest   string `json:"spiritualGiftsManifest"`
	FormalChristianTraining  string `json:"formalChristianTraining"`
	TrainingInstitution      string `json:"trainingInstitution,omitempty"`
	TrainingDuration         string `json:"trainingDuration,omitempty"`
	PreviouslyOrdained       string `json:"previouslyOrdained"`
	OrdinationType           string `json:"ordinationType,omitempty"`
	OrdinationDate           string `json:"ordinationDate,omitempty"`
	OrdinationBy             string `json:"ordinationBy,omitempty"`
	DenominationalBackground string `json:"denominationalBackground"`
	CurrentAffiliation       string `json:"currentAffiliation"`
	CurrentCapacity          string `json:"currentCapacity"`
	MinistryDescription      string `json:"ministryDescription"`
	MinistryDuration         string `json:"ministryDuration"`
	MinistryIncome           string `json:"ministryIncome"`
	OtherEmployment          string `json:"otherEmployment"`
	EmploymentDescription    string `json:"employmentDescription,omitempty"`
	EmploymentAddress        string `json:"employmentAddress,omitempty"`
	PastorName               string `json:"pastorName"`
	PastorEmail              string `json:"pastorEmail"`
	PastorPhone              string `json:"pastorPhone"`
	MinisterName             string `json:"ministerName"`
	MinisterEmail            string `json:"ministerEmail"`
	MinisterPhone            string `json:"ministerPhone"`
	ElderName                string `json:"elderName"`
	ElderEmail               string `json:"elderEmail"`
	ElderPhone               string `json:"elderPhone"`
	AcceptTerms              bool   `json:"acceptTerms"`
}

// StepTwoRules is the rule table of the second step. The conditional rules
// mirror the paper form: divorce details are asked only of the divorced,
// tongues follow-ups only when the applicant does not pray in tongues,
// training/ordination/employment details only when the gating answer is Yes.
var StepTwoRules = []Rule{
	{Field: "address", Kind: Required, Message: "Address is required"},
	{Field: "phoneNumbers", Kind: Required, Message: "Phone number is required"},
	{Field: "email", Kind: Email, Message: "Email is required", FormatMessage: "Invalid email address"},
	{Field: "socialMedia", Kind: Optional},
	{Field: "recommendedBy", Kind: Required, Message: "Recommender is required"},
	{Field: "placeOfBirth", Kind: Required, Message: "Place of birth is required"},
	{Field: "isDivorced", Kind: Enum, Enum: yesNo, Message: "Please select an option"},
	{Field: "divorceCount", Kind: Required, Message: "Number of divorces is required", When: &Condition{Field: "isDivorced", Value: "Yes"}},
	{Field: "lastDivorceDate", Kind: Required, Message: "Date of last divorce is required", When: &Condition{Field: "isDivorced", Value: "Yes"}},
	{Field: "childrenCount", Kind: Required, Message: "Number of children is required"},
	{Field: "spouseName", Kind: Required, Message: "Spouse name is required"},
	{Field: "isSpouseBeliever", Kind: Enum, Enum: yesNo, Message: "Please select an option"},
	{Field: "spouseDateOfBirth", Kind: Required, Message: "Spouse's date of birth is required"},
	{Field: "anniversaryDate", Kind: Required, Message: "Anniversary date is required"},
	{Field: "acceptedChristDate", Kind: Required, Message: "Date is required"},
	{Field: "waterBaptized", Kind: Enum, Enum: yesNo, Message: "Please select an option"},
	{Field: "prayInTongues", Kind: Enum, Enum: yesNo, Message: "Please select an option"},
	{Field: "believeInTongues", Kind: Enum, Enum: yesNo, Message: "Please select an option", When: &Condition{Field: "prayInTongues", Value: "No"}},
	{Field: "desireTongues", Kind: Enum, Enum: yesNo, Message: "Please select an option", When: &Condition{Field: "prayInTongues", Value: "No"}},
	{Field: "spiritualGiftsManifest", Kind: Required, Message: "This field is required"},
	{Field: "formalChristianTraining", Kind: Enum, Enum: yesNo, Message: "Please select an option"},
	{Field: "trainingInstitution", Kind: Required, Message: "Training institution is required", When: &Condition{Field: "formalChristianTraining", Value: "Yes"}},
	{Field: "trainingDuration", Kind: Required, Message: "Training duration is required", When: &Condition{Field: "formalChristianTraining", Value: "Yes"}},
	{Field: "previouslyOrdained", Kind: Enum, Enum: yesNo, Message: "Please select an option"},
	{Field: "ordinationType", Kind: Required, Message: "Ordination type is required", When: &Condition{Field: "previouslyOrdained", Value: "Yes"}},
	{Field: "ordinationDate", Kind: Required, Message: "Ordination date is required", When: &Condition{Field: "previouslyOrdained", Value: "Yes"}},
	{Field: "ordinationBy", Kind: Required, Message: "Ordaining minister is required", When: &Condition{Field: "previouslyOrdained", Value: "Yes"}},
	{Field: "denominationalBackground", Kind: Required, Message: "This field is required"},
	{Field: "currentAffiliation", Kind: Required, Message: "This field is required"},
	{Field: "currentCapacity", Kind: Required, Message: "This field is required"},
	{Field: "ministryDescription", Kind: Required, Message: "This field is required"},
	{Field: "ministryDuration", Kind: Required, Message: "This field is required"},
	{Field: "ministryIncome", Kind: Required, Message: "This field is required"},
	{Field: "otherEmployment", Kind: Enum, Enum: yesNo, Message: "Please select an option"},
	{Field: "employmentDescription", Kind: Required, Message: "Employment description is required", When: &Condition{Field: "otherEmployment", Value: "Yes"}},
	{Field: "employmentAddress", Kind: Required, Message: "Employment address is required", When: &Condition{Field: "otherEmployment", Value: "Yes"}},
	{Field: "pastorName", Kind: Required, Message: "Pastor's name is required"},
	{Field: "pastorEmail", Kind: Email, Message: "Pastor's email is required", FormatMessage: "Invalid email"},
	{Field: "pastorPhone", Kind: Required, Message: "Pastor's phone is required"},
	{Field: "ministerName", Kind: Required, Message: "Minister's name is required"},
	{Field: "ministerEmail", Kind: Email, Message: "Minister's email is required", FormatMessage: "Invalid email"},
	{Field: "ministerPhone", Kind: Required, Message: "Minister's phone is required"},
	{Field: "elderName", Kind: Required, Message: "Elder's name is required"},
	{Field: "elderEmail", Kind: Email, Message: "Elder's email is required", FormatMessage: "Invalid email"},
	{Field: "elderPhone", Kind: Required, Message: "Elder's phone is required"},
	{Field: "acceptTerms", Kind: Accept, Message: "You must accept the statement of undertaking"},
}

func (s *StepTwo) values() map[string]string {
	return map[string]string{
		"address":                  s.Address,
		"phoneNumbers":             s.PhoneNumbers,
		"email":                    s.Email,
		"socialMedia":              s.SocialMedia,
		"recommendedBy":            s.RecommendedBy,
		"placeOfBirth":             s.PlaceOfBirth,
		"isDivorced":               s.IsDivorced,
		"divorceCount":             s.DivorceCount,
		"lastDivorceDate":          s.LastDivorceDate,
		"childrenCount":            s.ChildrenCount,
		"spouseName":               s.SpouseName,
		"isSpouseBeliever":         s.IsSpouseBeliever,
		"spouseDateOfBirth":        s.SpouseDateOfBirth,
		"anniversaryDate":          s.AnniversaryDate,
		"acceptedChristDate":       s.AcceptedChristDate,
		"waterBaptized":            s.WaterBaptized,
		"prayInTongues":            s.PrayInTongues,
		"believeInTongues":         s.BelieveInTongues,
		"desireTongues":            s.DesireTongues,
		"spiritualGiftsManifest":   s.SpiritualGiftsManifest,
		"formalChristianTraining":  s.FormalChristianTraining,
		"trainingInstitution":      s.TrainingInstitution,
		"trainingDuration":         s.TrainingDuration,
		"previouslyOrdained":       s.PreviouslyOrdained,
		"ordinationType":           s.OrdinationType,
		"ordinationDate":           s.OrdinationDate,
		"ordinationBy":             s.OrdinationBy,
		"denominationalBackground": s.DenominationalBackground,
		"currentAffiliation":       s.CurrentAffiliation,
		"currentCapacity":          s.CurrentCapacity,
		"ministryDescription":      s.MinistryDescription,
		"ministryDuration":         s.MinistryDuration,
		"ministryIncome":           s.MinistryIncome,
		"otherEmployment":          s.OtherEmployment,
		"employmentDescription":    s.EmploymentDescription,
		"employmentAddress":        s.EmploymentAddress,
		"pastorName":               s.PastorName,
		"pastorEmail":              s.PastorEmail,
		"pastorPhone":              s.PastorPhone,
		"ministerName":             s.MinisterName,
		"ministerEmail":            s.MinisterEmail,
		"ministerPhone":            s.MinisterPhone,
		"elderName":                s.ElderName,
		"elderEmail":               s.ElderEmail,
		"elderPhone":               s.ElderPhone,
		"acceptTerms":              strconv.FormatBool(s.AcceptTerms),
	}
}

// Validate checks the payload against StepTwoRules.
func (s *StepTwo) Validate() map[string]string {
	return Validate(StepTwoRules, s.values())
}

// StepThree holds the ministry-reflection essay answers of the final wizard
// step. Applicants are asked to type these against the published questions.
type StepThree struct {
	ConversionExperience      string `json:"conversionExperience"`
	DevotionalPattern         string `json:"devotionalPattern"`
	FamilyDevotional          string `json:"familyDevotional"`
	GodsCallExperience        string `json:"godsCallExperience"`
	MinistryConcept           string `json:"ministryConcept"`
	FutureVision              string `json:"futureVision"`
	MinistrySuccessDefinition string `json:"ministrySuccessDefinition"`
	MinistryStrengths         string `json:"ministryStrengths"`
	MinistryWeaknesses        string `json:"ministryWeaknesses"`
	RelationshipEvaluation    string `json:"relationshipEvaluation"`
	NonOrdinationEffect       string `json:"nonOrdinationEffect"`
	SpouseMinistryFeelings    string `json:"spouseMinistryFeelings"`
}

// StepThreeRules is the rule table of the final step. Every essay is required.
var StepThreeRules = []Rule{
	{Field: "conversionExperience", Kind: Required, Message: "This field is required"},
	{Field: "devotionalPattern", Kind: Required, Message: "This field is required"},
	{Field: "familyDevotional", Kind: Required, Message: "This field is required"},
	{Field: "godsCallExperience", Kind: Required, Message: "This field is required"},
	{Field: "ministryConcept", Kind: Required, Message: "This field is required"},
	{Field: "futureVision", Kind: Required, Message: "This field is required"},
	{Field: "ministrySuccessDefinition", Kind: Required, Message: "This field is required"},
	{Field: "ministryStrengths", Kind: Required, Message: "This field is required"},
	{Field: "ministryWeaknesses", Kind: Required, Message: "This field is required"},
	{Field: "relationshipEvaluation", Kind: Required, Message: "This field is required"},
	{Field: "nonOrdinationEffect", Kind: Required, Message: "This field is required"},
	{Field: "spouseMinistryFeelings", Kind: Required, Message: "This field is required"},
}

func (s *StepThree) values() map[string]string {
	return map[string]string{
		"conversionExperience":      s.ConversionExperience,
		"devotionalPattern":         s.DevotionalPattern,
		"familyDevotional":          s.FamilyDevotional,
		"godsCallExperience":        s.GodsCallExperience,
		"ministryConcept":           s.MinistryConcept,
		"futureVision":              s.FutureVision,
		"ministrySuccessDefinition": s.MinistrySuccessDefinition,
		"ministryStrengths":         s.MinistryStrengths,
		"ministryWeaknesses":        s.MinistryWeaknesses,
		"relationshipEvaluation":    s.RelationshipEvaluation,
		"nonOrdinationEffect":       s.NonOrdinationEffect,
		"spouseMinistryFeelings":    s.SpouseMinistryFeelings,
	}
}

// Validate checks the payload against StepThreeRules.
func (s *StepThree) Validate() map[string]string {
	return Validate(StepThreeRules, s.values())
}
