package rendering

import (
	"strings"

	"github.com/jonathan/resume-pdfs/internal/types"
)

// TemplateData represents the data structure passed to the LaTeX templates.
// Every string is already escaped.
type TemplateData struct {
	Name        string
	ContactLine string
	Sections    []Section
}

// Section is one body section in the order the record asked for
type Section struct {
	Key       string
	Heading   string
	Education []EducationEntry
	Work      []WorkEntry
	Skills    []SkillEntry
	Projects  []ProjectEntry
	Awards    []AwardEntry
}

// EducationEntry is an escaped education row
type EducationEntry struct {
	Institution string
	Degree      string
	Location    string
	Dates       string
	GPA         string
}

// WorkEntry is an escaped work row
type WorkEntry struct {
	Company    string
	Position   string
	Location   string
	Dates      string
	Highlights []string
}

// SkillEntry is an escaped skill row; Keywords is comma-joined
type SkillEntry struct {
	Name     string
	Level    string
	Keywords string
}

// ProjectEntry is an escaped project row
type ProjectEntry struct {
	Name        string
	Description string
	URL         string
	Keywords    string
}

// AwardEntry is an escaped award row
type AwardEntry struct {
	Title   string
	Date    string
	Awarder string
	Summary string
}

var defaultHeadings = map[string]string{
	"education": "Education",
	"work":      "Experience",
	"skills":    "Skills",
	"projects":  "Projects",
	"awards":    "Awards",
}

// buildTemplateData constructs the template data structure from a record.
// Unknown and empty sections are dropped; "profile" is the header and never a body section.
func buildTemplateData(record *types.FormValues) *TemplateData {
	data := &TemplateData{
		Name:        EscapeLaTeX(strings.TrimSpace(record.Basics.Name)),
		ContactLine: contactLine(record.Basics),
	}

	seen := make(map[string]bool)
	for _, key := range record.SectionOrder() {
		fallback, known := defaultHeadings[key]
		if !known || seen[key] {
			continue
		}
		seen[key] = true

		section := Section{
			Key:     key,
			Heading: EscapeLaTeX(record.Heading(key, fallback)),
		}
		switch key {
		case "education":
			section.Education = educationEntries(record.Education)
		case "work":
			section.Work = workEntries(record.Work)
		case "skills":
			section.Skills = skillEntries(record.Skills)
		case "projects":
			section.Projects = projectEntries(record.Projects)
		case "awards":
			section.Awards = awardEntries(record.Awards)
		}
		if section.empty() {
			continue
		}
		data.Sections = append(data.Sections, section)
	}

	return data
}

func (s Section) empty() bool {
	return len(s.Education)+len(s.Work)+len(s.Skills)+len(s.Projects)+len(s.Awards) == 0
}

// contactLine joins the non-empty contact fields with a centered dot
func contactLine(b types.Basics) string {
	parts := make([]string, 0, 4)
	if b.Location.Address != "" {
		parts = append(parts, EscapeLaTeX(b.Location.Address))
	}
	if b.Email != "" {
		parts = append(parts, `\href{mailto:`+EscapeURL(b.Email)+`}{`+EscapeLaTeX(b.Email)+`}`)
	}
	if b.Phone != "" {
		parts = append(parts, EscapeLaTeX(b.Phone))
	}
	if b.Website != "" {
		parts = append(parts, `\href{`+EscapeURL(b.Website)+`}{`+EscapeLaTeX(b.Website)+`}`)
	}
	return strings.Join(parts, ` $\cdot$ `)
}

// formatDates renders a start/end pair; an open end means the entry is current
func formatDates(start, end string) string {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	switch {
	case start != "" && end != "":
		return EscapeLaTeX(start) + " -- " + EscapeLaTeX(end)
	case start != "":
		return EscapeLaTeX(start) + " -- Present"
	default:
		return EscapeLaTeX(end)
	}
}

func joinEscaped(items []string) string {
	escaped := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			escaped = append(escaped, EscapeLaTeX(item))
		}
	}
	return strings.Join(escaped, ", ")
}

func educationEntries(in []types.Education) []EducationEntry {
	var out []EducationEntry
	for _, e := range in {
		if e.Institution == "" {
			continue
		}
		degree := strings.TrimSpace(strings.Join([]string{e.StudyType, e.Area}, " "))
		out = append(out, EducationEntry{
			Institution: EscapeLaTeX(e.Institution),
			Degree:      EscapeLaTeX(degree),
			Location:    EscapeLaTeX(e.Location),
			Dates:       formatDates(e.StartDate, e.EndDate),
			GPA:         EscapeLaTeX(e.GPA),
		})
	}
	return out
}

func workEntries(in []types.Work) []WorkEntry {
	var out []WorkEntry
	for _, w := range in {
		if w.Company == "" {
			continue
		}
		entry := WorkEntry{
			Company:  EscapeLaTeX(w.Company),
			Position: EscapeLaTeX(w.Position),
			Location: EscapeLaTeX(w.Location),
			Dates:    formatDates(w.StartDate, w.EndDate),
		}
		for _, h := range w.Highlights {
			if h = strings.TrimSpace(h); h != "" {
				entry.Highlights = append(entry.Highlights, EscapeLaTeX(h))
			}
		}
		out = append(out, entry)
	}
	return out
}

func skillEntries(in []types.Skill) []SkillEntry {
	var out []SkillEntry
	for _, s := range in {
		if s.Name == "" {
			continue
		}
		out = append(out, SkillEntry{
			Name:     EscapeLaTeX(s.Name),
			Level:    EscapeLaTeX(s.Level),
			Keywords: joinEscaped(s.Keywords),
		})
	}
	return out
}

func projectEntries(in []types.Project) []ProjectEntry {
	var out []ProjectEntry
	for _, p := range in {
		if p.Name == "" {
			continue
		}
		out = append(out, ProjectEntry{
			Name:        EscapeLaTeX(p.Name),
			Description: EscapeLaTeX(p.Description),
			URL:         EscapeURL(p.URL),
			Keywords:    joinEscaped(p.Keywords),
		})
	}
	return out
}

func awardEntries(in []types.Award) []AwardEntry {
	var out []AwardEntry
	for _, a := range in {
		if a.Title == "" {
			continue
		}
		out = append(out, AwardEntry{
			Title:   EscapeLaTeX(a.Title),
			Date:    EscapeLaTeX(a.Date),
			Awarder: EscapeLaTeX(a.Awarder),
			Summary: EscapeLaTeX(a.Summary),
		})
	}
	return out
}
