package main

import (
	"fmt"
	"io"
	"strings"

	"admin-panel/internal/menu"
	"admin-panel/internal/navigation"

	"github.com/spf13/cobra"
)

func newTreeCmd(opts *rootOptions) *cobra.Command {
	var permissions []string

	cmd := &cobra.Command{
		Use:   "tree [path]",
		Short: "Print the menu tree in display order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := menu.NewLoader(menu.WithLogger(opts.logger(cmd)))

			doc, err := loader.Load(menuPath(args))
			if err != nil {
				return fmt.Errorf("%s: %s", menu.KindOf(err), err)
			}

			menus := doc.Menus
			if cmd.Flags().Changed("permission") {
				menus = navigation.FilterByPermissions(menus, permissions)
			}

			idx := navigation.NewIndex(menus)
			printTree(cmd.OutOrStdout(), idx, navigation.RootID, 0)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&permissions, "permission", nil, "only show entries visible with these permissions")
	return cmd
}

func printTree(w io.Writer, idx *navigation.Index, parent string, depth int) {
	for _, id := range idx.ChildIDs(parent) {
		node, _ := idx.Node(id)

		line := strings.Repeat("  ", depth) + node.Title + " [" + node.ID + "]"
		if node.Route != "" {
			line += " " + node.Route
		}
		fmt.Fprintln(w, line)

		printTree(w, idx, id, depth+1)
	}
}
