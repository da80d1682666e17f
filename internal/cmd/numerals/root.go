// Package numerals builds the numerals command-line tree.
package numerals

import (
	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the numerals command with every subcommand
// attached. A nil service uses the embedded catalog without persistence.
func NewRootCommand(service *app.Service) *cobra.Command {
	if service == nil {
		service = app.New()
	}
	root := &cobra.Command{
		Use:           "numerals",
		Short:         "Convert and explore cultural numeral systems",
		Long:          "numerals converts between arabic integers and historical numeral systems, lists the catalog and checks practice answers.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newConvertCommand(service),
		newSystemsCommand(service),
		newProblemsCommand(service),
		newCheckCommand(service),
		newHealthCommand(),
	)
	return root
}
