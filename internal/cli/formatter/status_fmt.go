package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/overwatch/internal/domain"
	"github.com/alexanderramin/overwatch/internal/metrics"
	"github.com/alexanderramin/overwatch/internal/service"
)

// FormatDashboard formats one dashboard pass into the styled status view:
// protocol banner, KPI line, today's schedule, and today's logged entries.
func FormatDashboard(d *service.Dashboard) string {
	var b strings.Builder

	b.WriteString(Header(string(d.Protocol)))
	b.WriteString(Dim("  " + d.Now.Format("Mon, 02 Jan 2006")))
	b.WriteString("\n\n")

	b.WriteString(FormatKPIs(d.Daily, d.Profile))
	b.WriteString("\n")

	if d.RotExceeded {
		b.WriteString("\n")
		b.WriteString(StyleRed.Render(fmt.Sprintf(
			"  WARNING: rot at %dm exceeds the %dm limit", d.Daily.RotMin, d.Profile.RotLimitMin)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(Header("Schedule"))
	b.WriteString("\n")
	b.WriteString(FormatSlots(d.MatchedSlots))

	b.WriteString("\n")
	b.WriteString(Header("Logged today"))
	b.WriteString("\n")
	b.WriteString(FormatEntries(d.TodayEntries))

	return b.String()
}

// FormatKPIs renders the one-line KPI readout. EFS is colored against the
// profile target, rot against the profile limit.
func FormatKPIs(daily metrics.Daily, profile *domain.Profile) string {
	return fmt.Sprintf("  %s   %s   %s   %s",
		Metric("EFS", fmt.Sprintf("%d", daily.EFS), ScoreColor(daily.EFS, profile.EFSTarget)),
		Metric("Rot", fmt.Sprintf("%dm", daily.RotMin), KPIColor(daily.RotMin, profile.RotLimitMin)),
		Metric("Velocity", fmt.Sprintf("%.2f", daily.Velocity), StyleBlue),
		Metric("Active", fmt.Sprintf("%.1fh", daily.ActiveHours), StyleFg),
	)
}

// FormatSlots renders timetable slots as a TIME/TASK table.
func FormatSlots(slots []domain.TimetableSlot) string {
	if len(slots) == 0 {
		return Dim("  no slots scheduled") + "\n"
	}
	rows := make([][]string, 0, len(slots))
	for _, s := range slots {
		rows = append(rows, []string{s.Span.Display(), StyleFg.Render(s.Task)})
	}
	return RenderTable([]string{"TIME", "TASK"}, rows)
}

// FormatTimetable renders the full timetable grouped under the DAY column.
func FormatTimetable(slots []domain.TimetableSlot) string {
	if len(slots) == 0 {
		return Dim("  timetable is empty") + "\n"
	}
	rows := make([][]string, 0, len(slots))
	for _, s := range slots {
		rows = append(rows, []string{
			StylePurple.Render(s.DayType),
			s.Span.Display(),
			StyleFg.Render(s.Task),
		})
	}
	return RenderTable([]string{"DAY", "TIME", "TASK"}, rows)
}

// FormatEntries renders log entries as a table. Anomalies show their notes in
// place of duration and focus.
func FormatEntries(entries []domain.LogEntry) string {
	if len(entries) == 0 {
		return Dim("  nothing logged") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsMetric() {
			rows = append(rows, []string{
				Dim(e.Time),
				StyleRed.Render("anomaly"),
				Dim(e.Notes),
				"", "",
			})
			continue
		}
		rows = append(rows, []string{
			Dim(e.Time),
			StyleFg.Render(e.Subject),
			e.Activity,
			fmt.Sprintf("%dm", e.DurationMin),
			fmt.Sprintf("%d%%", e.FocusPct),
		})
	}
	return RenderTable([]string{"TIME", "SUBJECT", "ACTIVITY", "DUR", "FOCUS"}, rows)
}

// FormatWeekly renders the 7-day EFS trend as a compact bar list, oldest
// first. Bars scale against the best day of the window.
func FormatWeekly(week []metrics.Daily, labels []string) string {
	const barWidth = 20

	max := 0
	for _, d := range week {
		if d.EFS > max {
			max = d.EFS
		}
	}

	var b strings.Builder
	for i, d := range week {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		filled := 0
		if max > 0 && d.EFS > 0 {
			filled = d.EFS * barWidth / max
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
		style := StyleGreen
		if d.EFS < 0 {
			style = StyleRed
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			Dim(label), style.Render(bar), style.Render(fmt.Sprintf("%d", d.EFS))))
	}
	return b.String()
}

// FormatDistribution renders minutes per subject, largest first.
func FormatDistribution(dist map[string]int) string {
	if len(dist) == 0 {
		return Dim("  no time logged") + "\n"
	}

	type share struct {
		subject string
		minutes int
	}
	shares := make([]share, 0, len(dist))
	for subject, minutes := range dist {
		shares = append(shares, share{subject, minutes})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].minutes != shares[j].minutes {
			return shares[i].minutes > shares[j].minutes
		}
		return shares[i].subject < shares[j].subject
	})

	rows := make([][]string, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, []string{
			StyleFg.Render(s.subject),
			fmt.Sprintf("%dm", s.minutes),
		})
	}
	return RenderTable([]string{"SUBJECT", "MINUTES"}, rows)
}

// FormatProfile renders the stored profile settings.
func FormatProfile(p *domain.Profile) string {
	autoAdvise := "off"
	if p.AutoAdvise {
		autoAdvise = "on"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s %d\n", Dim("efs-target:"), p.EFSTarget))
	b.WriteString(fmt.Sprintf("  %s %dm\n", Dim("rot-limit:"), p.RotLimitMin))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("auto-advise:"), autoAdvise))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("timezone:"), p.Timezone))
	return b.String()
}
