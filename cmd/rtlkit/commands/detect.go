package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/rtlkit/direction"
)

func detectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [text...]",
		Short: "Report the scripts and direction of text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			var scripts []string
			if direction.ContainsArabic(text) {
				scripts = append(scripts, "arabic")
			}
			if direction.ContainsHebrew(text) {
				scripts = append(scripts, "hebrew")
			}
			if len(scripts) == 0 {
				scripts = append(scripts, "none")
			}

			fmt.Printf("Scripts:   %s\n", strings.Join(scripts, ", "))
			fmt.Printf("Direction: %s\n", direction.Of(text))
			fmt.Printf("Base:      %s\n", direction.Base(text))
			return nil
		},
	}
	return cmd
}
