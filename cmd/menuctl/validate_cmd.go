package main

import (
	"fmt"

	"admin-panel/internal/menu"
	"admin-panel/internal/navigation"

	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Check a menu file",
		Long: `Reads and validates a menu file (.json, .jsonc, .yaml or .yml).
Without a path the file configured through ADMIN_RESOURCE_DIR and
ADMIN_MENU_FILE is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := menuPath(args)
			loader := menu.NewLoader(menu.WithLogger(opts.logger(cmd)))

			doc, err := loader.Load(path)
			if err != nil {
				return fmt.Errorf("%s: %s", menu.KindOf(err), err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ %s is valid (%d entries, version %s)\n", path, doc.Count(), doc.Version)

			for _, id := range navigation.NewIndex(doc.Menus).Duplicates() {
				fmt.Fprintf(out, "! duplicate id %q: only the first entry is reachable\n", id)
			}
			return nil
		},
	}
}
