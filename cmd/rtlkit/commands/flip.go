package commands

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/rtlkit/icon"
)

func flipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flip <in.png> <out.png>",
		Short: "Horizontally mirror a PNG icon",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			img, err := png.Decode(in)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", args[0], err)
			}

			out, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer out.Close()

			if err := png.Encode(out, icon.Flip(img)); err != nil {
				return fmt.Errorf("encoding %s: %w", args[1], err)
			}
			return nil
		},
	}
	return cmd
}
