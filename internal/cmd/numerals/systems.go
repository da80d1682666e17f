package numerals

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	"github.com/louisbranch/numerals.space/internal/services/numerals/registry"
	"github.com/spf13/cobra"
)

func newSystemsCommand(service *app.Service) *cobra.Command {
	var (
		base   int
		search string
		filter string
	)
	cmd := &cobra.Command{
		Use:   "systems",
		Short: "List numeral systems",
		Example: "  numerals systems --base 20\n" +
			"  numerals systems --filter 'type = \"positional\"'",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var systems []registry.System
			if strings.TrimSpace(filter) != "" {
				filtered, err := service.FilterSystems(cmd.Context(), filter)
				if err != nil {
					return err
				}
				systems = filtered
			} else {
				q := registry.Query{Search: search}
				if base > 0 {
					q.Base = strconv.Itoa(base)
				}
				systems = service.Systems(cmd.Context(), q)
			}

			out := cmd.OutOrStdout()
			if len(systems) == 0 {
				fmt.Fprintln(out, "No systems found")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tBASE\tTYPE")
			for _, system := range systems {
				fmt.Fprintf(w, "%s\t%s\t%d (%s)\t%s\n", system.ID, system.Name, system.Base, registry.BaseName(system.Base), system.Type)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&base, "base", 0, "only systems with this radix")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive text over name, culture and description")
	cmd.Flags().StringVar(&filter, "filter", "", "AIP-160 filter expression; overrides --base and --search")
	return cmd
}
