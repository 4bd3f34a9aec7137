package commands

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	root := &cobra.Command{
		Use:           "rtlkit",
		Short:         "RTL text detection and layout tooling",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(detectCmd(), annotateCmd(), flipCmd(), digitsCmd())
	return root.Execute()
}
