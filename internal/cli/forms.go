package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/overwatch/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// overwatchHuhTheme returns the huh form theme matching the dashboard palette.
func overwatchHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// logFormValues collects the raw string inputs of the interactive log form.
type logFormValues struct {
	Subject  string
	Activity string
	Duration string
	Output   string
	Rot      string
	Focus    string
	Notes    string
}

// logEntryForm builds the interactive session entry form. Subjects come from
// the stored set so user additions appear alongside the defaults.
func logEntryForm(subjects, activities []string, v *logFormValues) *huh.Form {
	subjectOpts := make([]huh.Option[string], 0, len(subjects))
	for _, s := range subjects {
		subjectOpts = append(subjectOpts, huh.NewOption(s, s))
	}
	activityOpts := make([]huh.Option[string], 0, len(activities))
	for _, a := range activities {
		activityOpts = append(activityOpts, huh.NewOption(a, a))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Subject").
				Options(subjectOpts...).
				Value(&v.Subject),
			huh.NewSelect[string]().
				Title("Activity").
				Options(activityOpts...).
				Value(&v.Activity),
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder("60").
				Value(&v.Duration).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Output (questions / pages)").
				Placeholder("0").
				Value(&v.Output).
				Validate(validateOptionalInt),
			huh.NewInput().
				Title("Rot (wasted minutes)").
				Placeholder("0").
				Value(&v.Rot).
				Validate(validateOptionalInt),
			huh.NewInput().
				Title("Focus (0-100)").
				Placeholder("80").
				Value(&v.Focus).
				Validate(validatePercent),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&v.Notes),
		),
	).WithTheme(overwatchHuhTheme()).WithShowHelp(false)
}

// anomalyForm collects the single notes field of an anomaly report.
func anomalyForm(notes *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What happened?").
				Placeholder("power cut, lost the evening").
				Value(notes).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("anomaly needs a note")
					}
					return nil
				}),
		),
	).WithTheme(overwatchHuhTheme()).WithShowHelp(false)
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}

func validateOptionalInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

func validatePercent(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 100 {
		return fmt.Errorf("enter a value between 0 and 100")
	}
	return nil
}

// atoiOr parses s, falling back when blank or malformed.
func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}
