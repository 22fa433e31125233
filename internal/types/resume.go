// Package types provides type definitions for structured data used throughout the resume-buddy system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// SourceFileType identifies the format a resume was uploaded in.
const (
	SourcePDF  = "pdf"
	SourceDOCX = "docx"
)

// StructuredResume is the canonical extracted shape of a resume. All list
// fields are non-nil after Normalize so merge and scoring code never has
// to distinguish absent from empty.
type StructuredResume struct {
	Basics         Basics          `json:"basics"`
	Summary        string          `json:"summary,omitempty"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	Achievements   []Achievement   `json:"achievements"`
	Languages      []Language      `json:"languages"`
	Skills         SkillSet        `json:"skills"`
	Metadata       ResumeMetadata  `json:"metadata"`
}

// Basics holds identity and contact information.
type Basics struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Links    Links  `json:"links"`
}

// Links holds profile URLs found on the resume.
type Links struct {
	LinkedIn  string `json:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub    string `json:"github,omitempty" validate:"omitempty,url"`
	Portfolio string `json:"portfolio,omitempty" validate:"omitempty,url"`
}

// Education represents a single education entry.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	StartYear   string `json:"startYear,omitempty"`
	EndYear     string `json:"endYear,omitempty"`
	Grade       string `json:"grade,omitempty"`
}

// Experience represents a single work or internship entry.
type Experience struct {
	Role        string   `json:"role,omitempty"`
	Company     string   `json:"company,omitempty"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	Description []string `json:"description"`
	Type        string   `json:"type,omitempty" validate:"omitempty,oneof=job internship"`
}

// Project represents a project entry.
type Project struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	TechStack   []string `json:"techStack"`
	Link        string   `json:"link,omitempty" validate:"omitempty,url"`
}

// Certification represents a professional certification.
type Certification struct {
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
	URL    string `json:"url,omitempty" validate:"omitempty,url"`
}

// Achievement represents an award or notable accomplishment.
type Achievement struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Year        string `json:"year,omitempty"`
}

// Language represents spoken-language proficiency.
type Language struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty" validate:"omitempty,oneof=basic intermediate fluent native"`
}

// SkillSet groups skills for downstream matching.
type SkillSet struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Tools     []string `json:"tools"`
}

// ResumeMetadata describes how and when the structured content was produced.
type ResumeMetadata struct {
	ResumeVersion   int     `json:"resumeVersion"`
	ExtractedAt     string  `json:"extractedAt"`
	SourceFileType  string  `json:"sourceFileType" validate:"omitempty,oneof=pdf docx"`
	ConfidenceScore float64 `json:"confidenceScore,omitempty" validate:"min=0,max=1"`
}

// Normalize replaces nil list fields with empty slices, recursively.
// Downstream merge and scoring logic assumes every list is present.
func (r *StructuredResume) Normalize() {
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	for i := range r.Experience {
		if r.Experience[i].Description == nil {
			r.Experience[i].Description = []string{}
		}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	for i := range r.Projects {
		if r.Projects[i].TechStack == nil {
			r.Projects[i].TechStack = []string{}
		}
	}
	if r.Certifications == nil {
		r.Certifications = []Certification{}
	}
	if r.Achievements == nil {
		r.Achievements = []Achievement{}
	}
	if r.Languages == nil {
		r.Languages = []Language{}
	}
	r.Skills.Technical = canonicalizeSkillList(r.Skills.Technical)
	r.Skills.Soft = canonicalizeSkillList(r.Skills.Soft)
	r.Skills.Tools = canonicalizeSkillList(r.Skills.Tools)
	if r.Metadata.ResumeVersion == 0 {
		r.Metadata.ResumeVersion = 1
	}
}

// Validate validates the StructuredResume using the validator.
func (r *StructuredResume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// IsEmpty reports whether the resume carries no extracted content at all.
func (r *StructuredResume) IsEmpty() bool {
	return r.Basics.Name == "" && r.Basics.Email == "" && r.Summary == "" &&
		len(r.Education) == 0 && len(r.Experience) == 0 && len(r.Projects) == 0 &&
		len(r.Skills.Technical) == 0 && len(r.Skills.Soft) == 0 && len(r.Skills.Tools) == 0
}
