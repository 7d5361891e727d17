package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"arviewer/internal/app"
)

func resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [query]",
		Short: "Bootstrap a viewer page and print its catalog and texts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			v, err := app.Bootstrap(cmd.Context(), wire, args[0], console{out: out})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Commodity: %s\n", v.Catalog.Commodity)
			fmt.Fprintf(out, "Language: %s (localized: %t)\n", v.Params.Lang, v.Localized)
			fmt.Fprintf(out, "Buttons: %s\n", v.Params.ARButtons)
			slots := v.Catalog.Slots()
			for i, label := range v.Session.Buttons() {
				m := v.Catalog.Models()[i]
				fmt.Fprintf(out, "  [%d] %-20s %-8s %s\n", i, label, slots[i], m.URL)
			}
			if v.Params.HasByURL() {
				fmt.Fprintf(out, "Purchase: %s\n", v.Params.ByURL)
			}
			return nil
		},
	}
	return cmd
}
