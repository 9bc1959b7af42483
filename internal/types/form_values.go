// Package types provides type definitions for structured data used throughout the resume-pdfs system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// DefaultSections is the section order used when a record does not list its own
var DefaultSections = []string{"profile", "education", "work", "skills", "projects", "awards"}

// FormValues represents one resume record as stored in the input directory
type FormValues struct {
	SelectedTemplate int               `json:"selectedTemplate"`
	Headings         map[string]string `json:"headings,omitempty"`
	Basics           Basics            `json:"basics"`
	Education        []Education       `json:"education,omitempty"`
	Work             []Work            `json:"work,omitempty"`
	Skills           []Skill           `json:"skills,omitempty"`
	Projects         []Project         `json:"projects,omitempty"`
	Awards           []Award           `json:"awards,omitempty"`
	Sections         []string          `json:"sections,omitempty"`
}

// Basics holds the contact block shown at the top of every template
type Basics struct {
	Name     string   `json:"name"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Website  string   `json:"website,omitempty"`
	Location Location `json:"location,omitempty"`
}

// Location is the candidate's postal address
type Location struct {
	Address string `json:"address,omitempty"`
}

// Education represents a degree or program entry
type Education struct {
	Institution string `json:"institution"`
	Location    string `json:"location,omitempty"`
	Area        string `json:"area,omitempty"`
	StudyType   string `json:"studyType,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// Work represents a single position
type Work struct {
	Company    string   `json:"company"`
	Location   string   `json:"location,omitempty"`
	Position   string   `json:"position,omitempty"`
	Website    string   `json:"website,omitempty"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// Skill groups keywords under a named skill area
type Skill struct {
	Name     string   `json:"name"`
	Level    string   `json:"level,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

// Project represents a personal or professional project
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Award represents an award or honor
type Award struct {
	Title   string `json:"title"`
	Date    string `json:"date,omitempty"`
	Awarder string `json:"awarder,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// SectionOrder returns the record's section order, falling back to DefaultSections
func (f *FormValues) SectionOrder() []string {
	if len(f.Sections) == 0 {
		return DefaultSections
	}
	return f.Sections
}

// Heading returns the custom heading for a section, or fallback when none is set
func (f *FormValues) Heading(section, fallback string) string {
	if h, ok := f.Headings[section]; ok && h != "" {
		return h
	}
	return fallback
}
