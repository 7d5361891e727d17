package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"arviewer/internal/app"
	"arviewer/internal/scene"
)

func modelsCmd() *cobra.Command {
	var index int
	cmd := &cobra.Command{
		Use:   "models [query]",
		Short: "Load one model of the resolved catalog and print its digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			v, err := app.Bootstrap(cmd.Context(), wire, args[0], console{out: out})
			if err != nil {
				return err
			}
			h, err := v.Catalog.LoadModelAtIndex(cmd.Context(), index)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Name: %s\n", h.Name())
			if m, ok := h.(*scene.Model); ok {
				fmt.Fprintf(out, "Source: %s\n", m.Source())
				fmt.Fprintf(out, "Digest: %s\n", m.Digest())
				fmt.Fprintf(out, "Nodes: %d, meshes: %d\n", m.Nodes(), m.Meshes())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&index, "index", 0, "model index")
	return cmd
}
