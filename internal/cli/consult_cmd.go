package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/overwatch/internal/advisory"
	"github.com/alexanderramin/overwatch/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newConsultCmd(app *App) *cobra.Command {
	var modeName string

	cmd := &cobra.Command{
		Use:   "consult [question...]",
		Short: "Ask PRIME about today's numbers",
		Long: "Sends the current dashboard snapshot plus an optional question to the assistant.\n" +
			"Modes: " + strings.Join(advisory.Modes(), ", "),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			mode, err := advisory.ParseMode(modeName)
			if err != nil {
				return err
			}
			question := strings.Join(args, " ")

			d, err := app.Dashboard.Snapshot(ctx, time.Now())
			if err != nil {
				return err
			}

			stop := func() {}
			if app.Interactive {
				stop = formatter.StartSpinner("consulting PRIME...")
			}
			reply := app.Advisor.Consult(ctx, mode, question, d.AdvisoryContext())
			stop()

			if reply.Offline {
				fmt.Println(formatter.Dim(reply.Text))
				return nil
			}

			fmt.Println(formatter.Header("PRIME"))
			fmt.Println(formatter.StyleFg.Render(reply.Text))
			return nil
		},
	}

	cmd.Flags().StringVar(&modeName, "mode", string(advisory.ModeConsult), "Consultation mode")

	return cmd
}
