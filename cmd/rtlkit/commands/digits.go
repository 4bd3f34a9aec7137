package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/rtlkit/locale"
)

func digitsCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "digits [text...]",
		Short: "Convert Western digits to a language's digit set",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			fmt.Println(locale.ConvertDigits(text, lang))
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "ar", "BCP 47 language tag")
	return cmd
}
