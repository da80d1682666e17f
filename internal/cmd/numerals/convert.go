package numerals

import (
	"fmt"

	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	"github.com/louisbranch/numerals.space/internal/services/numerals/engine"
	"github.com/spf13/cobra"
)

func newConvertCommand(service *app.Service) *cobra.Command {
	var (
		systemID string
		toArabic bool
	)
	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Convert a number and print each step",
		Example: "  numerals convert 1994 --system roman\n" +
			"  numerals convert MCMXCIV --system roman --to-arabic",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := engine.ToCultural
			if toArabic {
				direction = engine.ToArabic
			}
			result := service.Convert(cmd.Context(), app.ConvertRequest{
				Input:     args[0],
				SystemID:  systemID,
				Direction: string(direction),
			})
			if !result.Success {
				return fmt.Errorf("%s: %s", result.Code, result.Message)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.Value)
			if result.Sentinel() {
				fmt.Fprintf(out, "(%s)\n", result.Code)
			}
			fmt.Fprintln(out)
			for i, step := range result.Steps {
				fmt.Fprintf(out, "%d. %s\n", i+1, step)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&systemID, "system", "s", engine.SystemRoman, "numeral system id")
	cmd.Flags().BoolVar(&toArabic, "to-arabic", false, "decode cultural text to an arabic integer")
	return cmd
}
