package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/overwatch/internal/advisory"
	"github.com/alexanderramin/overwatch/internal/cli/formatter"
	"github.com/alexanderramin/overwatch/internal/service"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newDashCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dash",
		Short: "Open the live dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Interactive {
				return fmt.Errorf("dash needs a terminal; use 'overwatch status' instead")
			}
			p := tea.NewProgram(newDashModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}

// ── messages ─────────────────────────────────────────────────────────────────

type dashLoadedMsg struct {
	dashboard *service.Dashboard
	err       error
}

type consultReplyMsg struct {
	reply advisory.Reply
}

// ── model ────────────────────────────────────────────────────────────────────

// dashModel is the bubbletea Model behind "overwatch dash": one screen showing
// the current dashboard, refreshed on demand, with an inline consult pane.
type dashModel struct {
	app *App

	dashboard *service.Dashboard
	loadErr   error

	spin       spinner.Model
	loading    bool
	consulting bool

	reply    advisory.Reply
	hasReply bool

	showWeek bool
	width    int
	quitting bool
}

func newDashModel(app *App) dashModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(formatter.ColorHeader)

	return dashModel{
		app:     app,
		spin:    s,
		loading: true,
	}
}

func (m dashModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadDashboard())
}

func (m dashModel) loadDashboard() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		d, err := app.Dashboard.Snapshot(context.Background(), time.Now())
		return dashLoadedMsg{dashboard: d, err: err}
	}
}

func (m dashModel) consult() tea.Cmd {
	app := m.app
	d := m.dashboard
	return func() tea.Msg {
		reply := app.Advisor.Consult(context.Background(), advisory.ModeConsult, "", d.AdvisoryContext())
		return consultReplyMsg{reply: reply}
	}
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.loading = true
			m.hasReply = false
			return m, tea.Batch(m.spin.Tick, m.loadDashboard())
		case "w":
			m.showWeek = !m.showWeek
			return m, nil
		case "c":
			if m.dashboard == nil || m.consulting {
				return m, nil
			}
			m.consulting = true
			m.hasReply = false
			return m, tea.Batch(m.spin.Tick, m.consult())
		}
		return m, nil

	case dashLoadedMsg:
		m.loading = false
		m.dashboard = msg.dashboard
		m.loadErr = msg.err
		return m, nil

	case consultReplyMsg:
		m.consulting = false
		m.reply = msg.reply
		m.hasReply = true
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.consulting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m dashModel) View() string {
	if m.quitting {
		return ""
	}
	if m.loading {
		return fmt.Sprintf("\n  %s %s\n", m.spin.View(), formatter.Dim("loading dashboard..."))
	}
	if m.loadErr != nil {
		return "\n  " + formatter.StyleRed.Render("dashboard unavailable: "+m.loadErr.Error()) + "\n"
	}

	body := formatter.FormatDashboard(m.dashboard)

	if m.showWeek {
		body += "\n" + formatter.Header("Week trend") + "\n"
		body += formatter.FormatWeekly(m.dashboard.Weekly, weekLabels(m.dashboard.Now, m.app.Loc))
		body += "\n" + formatter.Header("Subject split") + "\n"
		body += formatter.FormatDistribution(m.dashboard.Distribution)
	}

	if m.consulting {
		body += fmt.Sprintf("\n  %s %s\n", m.spin.View(), formatter.Dim("consulting PRIME..."))
	} else if m.hasReply {
		body += "\n" + formatter.Header("PRIME") + "\n"
		if m.reply.Offline {
			body += formatter.Dim(m.reply.Text) + "\n"
		} else {
			body += formatter.StyleFg.Render(m.reply.Text) + "\n"
		}
	}

	body += "\n" + formatter.Dim("  r refresh · w week · c consult · q quit") + "\n"
	return body
}
