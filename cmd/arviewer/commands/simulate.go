package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"arviewer/internal/app"
	"arviewer/internal/xrsim"
)

func simulateCmd() *cobra.Command {
	var scriptPath string
	cmd := &cobra.Command{
		Use:   "simulate [query]",
		Short: "Replay an AR script against a bootstrapped viewer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := xrsim.LoadScript(scriptPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			v, err := app.Bootstrap(cmd.Context(), wire, args[0], console{out: out})
			if err != nil {
				return err
			}

			results, _, err := xrsim.Run(cmd.Context(), v.Session, script)
			if err != nil {
				return err
			}
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(out, "step %d (%s): %v\n", r.Step, r.Op, r.Err)
				}
			}
			fmt.Fprintf(out, "Final state: %s\n", v.Session.State())
			return nil
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "path to the JSON script")
	_ = cmd.MarkFlagRequired("script")
	return cmd
}
