package types

import (
	"github.com/go-playground/validator/v10"
)

// JobPosting is the structured job description submitted for compatibility
// analysis. It is validated before any inference call so malformed postings
// never reach the AI gateway.
type JobPosting struct {
	JobMeta     JobMeta     `json:"jobMeta" validate:"required"`
	WorkDetails WorkDetails `json:"workDetails"`
	Skills      JobSkills   `json:"skills"`
	Eligibility Eligibility `json:"eligibility"`
	Perks       Perks       `json:"perks"`
	CompanyInfo CompanyInfo `json:"companyInfo"`
	RawData     RawJobData  `json:"rawData" validate:"required"`
}

// JobMeta identifies the posting itself.
type JobMeta struct {
	Source      string      `json:"source" validate:"required"`
	JobType     string      `json:"jobType" validate:"required,oneof=Internship Job Freelance"`
	Title       string      `json:"title" validate:"required"`
	CompanyName string      `json:"companyName" validate:"required"`
	CompanyType string      `json:"companyType" validate:"omitempty,oneof=NGO Startup MNC Unknown"`
	Location    JobLocation `json:"location"`
	PostedDate  string      `json:"postedDate,omitempty"`
	ApplyBy     string      `json:"applyBy,omitempty"`
	Openings    int         `json:"openings" validate:"omitempty,min=1"`
}

// JobLocation describes where the work happens.
type JobLocation struct {
	Type    string `json:"type" validate:"omitempty,oneof=Remote Onsite Hybrid"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

// Stipend describes compensation for the posting.
type Stipend struct {
	Type      string  `json:"type" validate:"omitempty,oneof=Paid Unpaid"`
	Amount    float64 `json:"amount,omitempty"`
	Currency  string  `json:"currency,omitempty"`
	Frequency string  `json:"frequency,omitempty" validate:"omitempty,oneof=Monthly Weekly"`
}

// WorkDetails describes the day-to-day of the role.
type WorkDetails struct {
	Duration         string   `json:"duration,omitempty"`
	StartDate        string   `json:"startDate,omitempty"`
	Stipend          Stipend  `json:"stipend"`
	Responsibilities []string `json:"responsibilities"`
	LearningOutcomes []string `json:"learningOutcomes"`
}

// RequiredSkill is one skill the posting demands at a given level.
type RequiredSkill struct {
	Name  string `json:"name" validate:"required"`
	Level string `json:"level" validate:"omitempty,oneof=Basic Intermediate Advanced"`
}

// JobSkills groups the posting's skill requirements.
type JobSkills struct {
	Required   []RequiredSkill `json:"required"`
	Frameworks []string        `json:"frameworks"`
	Databases  []string        `json:"databases"`
	Tools      []string        `json:"tools"`
	Optional   []string        `json:"optional"`
}

// Eligibility lists the posting's hard entry criteria.
type Eligibility struct {
	Education          []string `json:"education"`
	Year               []string `json:"year"`
	ExperienceRequired bool     `json:"experienceRequired"`
	MinAge             int      `json:"minAge,omitempty"`
	OtherCriteria      []string `json:"otherCriteria"`
}

// Perks lists non-monetary benefits.
type Perks struct {
	Certificate            bool `json:"certificate"`
	LetterOfRecommendation bool `json:"letterOfRecommendation"`
	JobOffer               bool `json:"jobOffer"`
	FlexibleHours          bool `json:"flexibleHours"`
}

// CompanyInfo describes the hiring company.
type CompanyInfo struct {
	Description string  `json:"description,omitempty"`
	Industry    string  `json:"industry,omitempty"`
	Website     string  `json:"website,omitempty" validate:"omitempty,url"`
	TrustScore  float64 `json:"trustScore,omitempty" validate:"min=0,max=100"`
}

// RawJobData keeps the unstructured source material alongside the
// structured fields so the model can fall back to the full text.
type RawJobData struct {
	FullDescriptionText string `json:"fullDescriptionText" validate:"required"`
	SourceURL           string `json:"sourceURL" validate:"required,url"`
}

// Validate validates the JobPosting using the validator.
func (j *JobPosting) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
