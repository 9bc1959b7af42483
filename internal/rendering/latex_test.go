package rendering

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-pdfs/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() *types.FormValues {
	return &types.FormValues{
		Basics: types.Basics{
			Name:     "Alice O'Hara",
			Email:    "alice@example.com",
			Phone:    "555-0100",
			Website:  "https://alice.dev",
			Location: types.Location{Address: "Portland, OR"},
		},
		Education: []types.Education{
			{Institution: "State University", StudyType: "B.S.", Area: "Computer Science", StartDate: "2012", EndDate: "2016", GPA: "3.8"},
		},
		Work: []types.Work{
			{Company: "Acme & Sons", Position: "Engineer", StartDate: "2016", Highlights: []string{"Cut build time 40%", " "}},
		},
		Skills: []types.Skill{
			{Name: "Languages", Keywords: []string{"Go", "C#"}},
		},
	}
}

func TestRender_DefaultTemplate(t *testing.T) {
	doc, opts, err := Render(sampleRecord())
	require.NoError(t, err)

	assert.Equal(t, "pdflatex", opts.Cmd)
	assert.Empty(t, opts.Inputs)
	assert.Empty(t, opts.Fonts)

	assert.True(t, strings.HasPrefix(doc, `\documentclass`))
	assert.Contains(t, doc, `\end{document}`)
	assert.Contains(t, doc, "Alice O'Hara")
	assert.Contains(t, doc, `Acme \& Sons`)
	assert.Contains(t, doc, `Cut build time 40\%`)
	assert.Contains(t, doc, `Go, C\#`)
	assert.Contains(t, doc, "2016 -- Present")
	assert.Contains(t, doc, `B.S. Computer Science`)
	assert.NotContains(t, doc, "<<")
}

func TestRender_SectionOrderAndHeadings(t *testing.T) {
	record := sampleRecord()
	record.Sections = []string{"profile", "skills", "work", "work", "unknown"}
	record.Headings = map[string]string{"work": "Where I've Been"}

	doc, _, err := Render(record)
	require.NoError(t, err)

	skills := strings.Index(doc, `\resumesection{Skills}`)
	work := strings.Index(doc, `\resumesection{Where I've Been}`)
	require.NotEqual(t, -1, skills)
	require.NotEqual(t, -1, work)
	assert.Less(t, skills, work)
	assert.NotContains(t, doc, `\resumesection{Education}`)
	assert.Equal(t, 1, strings.Count(doc, `\resumesection{Where I've Been}`))
}

func TestRender_ModernTemplateOptions(t *testing.T) {
	record := sampleRecord()
	record.SelectedTemplate = 2

	doc, opts, err := Render(record)
	require.NoError(t, err)

	assert.Equal(t, "xelatex", opts.Cmd)
	assert.Equal(t, []string{"templates/modern/resume.cls"}, opts.Inputs)
	assert.Len(t, opts.Fonts, 3)
	assert.Contains(t, doc, `\documentclass{resume}`)
	assert.Contains(t, doc, `\resumeheader{Alice O'Hara}`)
}

func TestRender_OptionsAreCopies(t *testing.T) {
	record := sampleRecord()
	record.SelectedTemplate = 2

	_, opts, err := Render(record)
	require.NoError(t, err)
	opts.Inputs[0] = "mutated"

	tpl, err := LookupTemplate(2)
	require.NoError(t, err)
	assert.Equal(t, "templates/modern/resume.cls", tpl.Options.Inputs[0])
}

func TestRender_UnknownTemplate(t *testing.T) {
	record := sampleRecord()
	record.SelectedTemplate = 42

	_, _, err := Render(record)
	require.Error(t, err)
	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "unknown template id: 42")
}

func TestRender_NilRecord(t *testing.T) {
	_, _, err := Render(nil)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestRender_EmptyRecord(t *testing.T) {
	doc, opts, err := Render(&types.FormValues{})
	require.NoError(t, err)
	assert.Equal(t, "pdflatex", opts.Cmd)
	assert.NotContains(t, doc, `\resumesection{`+"Education")
}

func TestTemplates_SortedByID(t *testing.T) {
	list := Templates()
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, "classic", list[0].Name)
	assert.Equal(t, 2, list[1].ID)
}

func TestParseTemplate_Missing(t *testing.T) {
	_, err := parseTemplate(Template{Name: "nope", File: "templates/nope.tex.tmpl"})
	var templateErr *TemplateError
	require.ErrorAs(t, err, &templateErr)
	assert.Equal(t, "nope", templateErr.Template)
	assert.Contains(t, err.Error(), "template error: nope: template file not found")
}

func TestContactLine(t *testing.T) {
	line := contactLine(types.Basics{Email: "a_b@example.com", Phone: "1"})
	assert.Equal(t, `\href{mailto:a_b@example.com}{a\_b@example.com} $\cdot$ 1`, line)
	assert.Equal(t, "", contactLine(types.Basics{}))
}

func TestFormatDates(t *testing.T) {
	assert.Equal(t, "2019 -- 2021", formatDates("2019", "2021"))
	assert.Equal(t, "2019 -- Present", formatDates("2019", ""))
	assert.Equal(t, "2021", formatDates("", "2021"))
	assert.Equal(t, "", formatDates("", ""))
}
