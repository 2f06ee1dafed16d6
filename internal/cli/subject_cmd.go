package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/overwatch/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSubjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subject",
		Short: "Manage the subject list",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show known subjects",
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := app.Subjects.Set(cmd.Context())
			if err != nil {
				return err
			}
			added := make(map[string]bool)
			for _, name := range set.Added() {
				added[name] = true
			}
			for _, name := range set.Names() {
				if added[name] {
					fmt.Println("  " + formatter.StyleGreen.Render(name))
				} else {
					fmt.Println("  " + formatter.StyleFg.Render(name))
				}
			}
			return nil
		},
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("subject name is empty")
			}
			if err := app.Subjects.Add(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Printf("%s %s\n", formatter.StyleGreen.Render("added"), name)
			return nil
		},
	}

	cmd.AddCommand(list, add)
	return cmd
}
