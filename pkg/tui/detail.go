package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/coursefinder/internal/cli"
	"github.com/pluqqy/coursefinder/pkg/deadline"
	"github.com/pluqqy/coursefinder/pkg/models"
)

// DetailModel shows every field of one course in a scrollable viewport
type DetailModel struct {
	width    int
	height   int
	course   models.Course
	winter   seasonReading
	summer   seasonReading
	season   models.Season
	viewport viewport.Model
}

type seasonReading struct {
	info deadline.Info
	band deadline.Band
}

func NewDetailModel() *DetailModel {
	return &DetailModel{
		viewport: viewport.New(80, 20),
	}
}

// SetCourse loads a course and reads its deadlines for both seasons.
// season is the one selected in the list and is listed first.
func (m *DetailModel) SetCourse(course models.Course, parser *deadline.Parser, season models.Season) {
	m.course = course
	m.season = season
	info, band := parser.BandFor(course, models.SeasonWinter)
	m.winter = seasonReading{info: info, band: band}
	info, band = parser.BandFor(course, models.SeasonSummer)
	m.summer = seasonReading{info: info, band: band}
	m.updateContent()
	m.viewport.GotoTop()
}

// Course returns the course on display
func (m *DetailModel) Course() models.Course {
	return m.course
}

func (m *DetailModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	// header, title, help and borders
	m.viewport.Width = max(width-6, 20)
	m.viewport.Height = max(height-10, 5)
	m.updateContent()
}

func (m *DetailModel) Update(msg tea.Msg) (*DetailModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *DetailModel) View() string {
	var b strings.Builder
	b.WriteString(ContentPaddingStyle.Render(sectionHeading(strings.ToUpper(m.course.CourseName), m.width-2, true)))
	b.WriteString("\n\n")
	b.WriteString(ActiveBorderStyle.Render(m.viewport.View()))
	return b.String()
}

func (m *DetailModel) updateContent() {
	if m.course.ID == "" {
		return
	}
	m.viewport.SetContent(m.render(m.viewport.Width))
}

func (m *DetailModel) render(width int) string {
	c := m.course
	var b strings.Builder
	valueWidth := max(width-LabelStyle.GetWidth()-1, 10)

	line := func(label, value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		wrapped := strings.Split(wordwrap.String(value, valueWidth), "\n")
		for i, w := range wrapped {
			l := ""
			if i == 0 {
				l = label
			}
			b.WriteString(LabelStyle.Render(l) + " " + NormalStyle.Render(w) + "\n")
		}
	}

	line("University", c.University)
	line("Location", cli.FormatLocation(c))
	line("Degree", strings.TrimSpace(c.DegreeLevel+" "+c.DegreeType))
	line("Study type", c.StudyType)
	line("Duration", cli.FormatDuration(c))
	line("Study modes", strings.Join(c.StudyModes, ", "))
	line("Subject", c.SubjectDisplay)
	line("Categories", strings.Join(c.BroadCategories, ", "))
	line("Concentrations", c.AreasOfConcentration)
	line("Admission", string(c.AdmissionMode))
	if c.MinGrade != nil {
		line("Minimum grade", cli.FormatScore(c.MinGrade))
	}
	line("Intake", strings.Join(c.IntakeMonths, ", "))
	line("Tuition", cli.FormatTuition(c))
	line("Language", c.MainInstructionLanguage)

	var scores []string
	for _, test := range models.LanguageTests {
		if v := c.TestScore(test); v != nil {
			scores = append(scores, fmt.Sprintf("%s %s", testName(test), cli.FormatScore(v)))
		}
	}
	line("English tests", strings.Join(scores, ", "))
	line("Requirements", c.LanguageRequirementsText)

	b.WriteString("\n")
	readings := []struct {
		season  models.Season
		reading seasonReading
	}{
		{models.SeasonWinter, m.winter},
		{models.SeasonSummer, m.summer},
	}
	if m.season == models.SeasonSummer {
		readings[0], readings[1] = readings[1], readings[0]
	}
	for _, r := range readings {
		label := strings.ToUpper(string(r.season[:1])) + string(r.season[1:]) + " deadline"
		b.WriteString(bandStripe(r.reading.band) + " ")
		line(label, fmt.Sprintf("%s (%s)", cli.FormatDeadline(r.reading.info), r.reading.band.Label()))
	}

	b.WriteString("\n")
	line("Notes", c.Annotation)
	line("Details", c.DetailPageURL)

	return b.String()
}

func testName(test models.LanguageTest) string {
	switch test {
	case models.TestIELTS:
		return "IELTS"
	case models.TestTOEFLIbt:
		return "TOEFL iBT"
	case models.TestTOEFLPbt:
		return "TOEFL PBT"
	case models.TestTOEFLCbt:
		return "TOEFL CBT"
	case models.TestTOEIC:
		return "TOEIC"
	default:
		return string(test)
	}
}
