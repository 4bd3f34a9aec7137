package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/rtlkit/htmldir"
)

func annotateCmd() *cobra.Command {
	var output string
	var noLang bool

	cmd := &cobra.Command{
		Use:   "annotate <in.html>",
		Short: "Add dir attributes to an HTML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := htmldir.Options{SetLang: !noLang}

			var warnings []htmldir.Warning
			var err error
			if output != "" {
				warnings, err = htmldir.AnnotateFile(args[0], output, opts)
			} else {
				in, openErr := os.Open(args[0])
				if openErr != nil {
					return openErr
				}
				defer in.Close()
				warnings, err = htmldir.Annotate(in, os.Stdout, opts)
			}
			if err != nil {
				return err
			}

			for _, w := range warnings {
				fmt.Fprintln(os.Stderr, "Warning:", w.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&noLang, "no-lang", false, "do not add lang attributes")
	return cmd
}
