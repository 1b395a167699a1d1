// Package resume defines the structured résumé produced from extracted document text.
//
// Optional fields are pointers so that an absent value serializes as null, which is
// what the completion service emits and what clients of the API expect.
package resume

// Resume is the full structured result populated by the completion service.
type Resume struct {
	PersonalInfo PersonalInfo  `json:"personal_info"`
	Location     Location      `json:"location"`
	ContactInfo  ContactInfo   `json:"contact_info"`
	SocialMedia  []SocialMedia `json:"social_media"`
	Experience   []Experience  `json:"experience"`
	Nationality  *string       `json:"nationality"`
	JobTitle     string        `json:"job_title"`
	Summary      Summary       `json:"summary"`
	Other        Other         `json:"other"`
	Metadata     Metadata      `json:"metadata"`
	DocumentText *string       `json:"document_text"`
	Skills       Skills        `json:"skills"`
}

type PersonalInfo struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	BirthDate *string `json:"birth_date"`
	Gender    string  `json:"gender"`
}

type Location struct {
	Address  *string `json:"address"`
	City     *string `json:"city"`
	Postcode *string `json:"postcode"`
	Country  string  `json:"country"`
}

type ContactInfo struct {
	MobileNumber string `json:"mobile_number"`
	Email        string `json:"email"`
}

type SocialMedia struct {
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`
}

// Experience is one work-history entry. Every field is free-form and may be null.
type Experience struct {
	StartDate           *string `json:"start_date"`
	EndDate             *string `json:"end_date"`
	Position            *string `json:"position"`
	Company             *string `json:"company"`
	Description         *string `json:"description"`
	City                *string `json:"city"`
	Region              *string `json:"region"`
	Country             *string `json:"country"`
	Profession          *string `json:"profession"`
	ProfessionGroup     *string `json:"profession_group"`
	ProfessionClass     *string `json:"profession_class"`
	IsCurrentExperience *string `json:"is_current_experience"`
	IsLatestExperience  *string `json:"is_latest_experience"`
}

type Summary struct {
	TotalExperienceYears   string        `json:"totalExperienceYears"`
	TotalExperienceMonths  string        `json:"totalExperienceMonths"`
	CurrentJob             string        `json:"currentJob"`
	CurrentEmployer        string        `json:"currentEmployer"`
	CurrentWorkField       WorkField     `json:"currentWorkField"`
	HighestDegree          HighestDegree `json:"highestDegree"`
	SummaryAmbitionSection *string       `json:"summaryAmbitionSection"`
	ExtraCurricularSection *string       `json:"extraCurricularSection"`
}

type WorkField struct {
	WorkFieldCode              string `json:"workFieldCode"`
	WorkFieldDescription       string `json:"workFieldDescription"`
	ExperienceLevelCode        string `json:"experienceLevelCode"`
	ExperienceLevelDescription string `json:"experienceLevelDescription"`
}

type HighestDegree struct {
	LocalCode                *string `json:"localCode"`
	LocalDescription         *string `json:"localDescription"`
	InternationalCode        *string `json:"internationalCode"`
	InternationalDescription *string `json:"internationalDescription"`
	EndDate                  *string `json:"endDate"`
}

type Other struct {
	ProfilePicture map[string]any `json:"profilePicture"`
}

type Metadata struct {
	Filename                   string `json:"filename"`
	LangCode                   string `json:"lang_code"`
	Lang                       string `json:"lang"`
	LastModified               string `json:"last_modified"`
	PartialExtractionIndicator string `json:"partial_extraction_indicator"`
}

type Skills struct {
	Languages    []LanguageSkill   `json:"languages"`
	Technologies []TechnologySkill `json:"technologies"`
}

type LanguageSkill struct {
	Language string  `json:"language"`
	Level    *string `json:"level"`
	Code     string  `json:"code"`
}

type TechnologySkill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Years       string `json:"years"`
	LastUsed    string `json:"last_used"`
	FoundIn     string `json:"foundIn"`
}
