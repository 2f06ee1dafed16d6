package cli

import (
	"fmt"

	"github.com/alexanderramin/overwatch/internal/cli/formatter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or tune personal thresholds",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatProfile(p))
			return nil
		},
	}

	var (
		efsTarget  int
		rotLimit   int
		autoAdvise bool
		timezone   string
	)

	set := &cobra.Command{
		Use:   "set",
		Short: "Change one or more settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			p, err := app.Profiles.Get(ctx)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("efs-target") {
				p.EFSTarget = efsTarget
			}
			if flags.Changed("rot-limit") {
				p.RotLimitMin = rotLimit
			}
			if flags.Changed("auto-advise") {
				p.AutoAdvise = autoAdvise
			}
			if flags.Changed("timezone") {
				p.Timezone = timezone
			}
			if !anyChanged(flags, "efs-target", "rot-limit", "auto-advise", "timezone") {
				return fmt.Errorf("nothing to change; see --help for the settable flags")
			}

			if err := app.Profiles.Update(ctx, p); err != nil {
				return err
			}

			fmt.Println(formatter.StyleGreen.Render("profile updated"))
			fmt.Print(formatter.FormatProfile(p))
			return nil
		},
	}

	set.Flags().IntVar(&efsTarget, "efs-target", 0, "Daily EFS score target")
	set.Flags().IntVar(&rotLimit, "rot-limit", 0, "Daily rot limit in minutes")
	set.Flags().BoolVar(&autoAdvise, "auto-advise", false, "Consult the assistant automatically when rot crosses the limit")
	set.Flags().StringVar(&timezone, "timezone", "", "Calendar zone label")

	cmd.AddCommand(show, set)
	return cmd
}

// anyChanged reports whether the user set at least one of the named flags.
func anyChanged(flags *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if flags.Changed(name) {
			return true
		}
	}
	return false
}
