package numerals

import (
	"fmt"
	"text/tabwriter"

	"github.com/louisbranch/numerals.space/internal/services/numerals/app"
	"github.com/louisbranch/numerals.space/internal/services/numerals/practice"
	"github.com/spf13/cobra"
)

func newProblemsCommand(service *app.Service) *cobra.Command {
	var difficulty string
	cmd := &cobra.Command{
		Use:   "problems",
		Short: "List practice problems for a difficulty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, problems, err := service.Problems(cmd.Context(), difficulty)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(problems) == 0 {
				fmt.Fprintln(out, "No problems available")
				return nil
			}
			fmt.Fprintf(out, "%s problems\n\n", d)
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tTYPE")
			for _, problem := range problems {
				fmt.Fprintf(w, "%s\t%s\t%s\n", problem.ID, problem.Title, problem.Type)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", string(practice.Beginner), "beginner, intermediate or advanced")
	return cmd
}

func newCheckCommand(service *app.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "check <problem-id> <answer>",
		Short:   "Check an answer to a practice problem",
		Example: "  numerals check b1 18",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := service.CheckAnswer(cmd.Context(), "", args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch result.Feedback {
			case practice.FeedbackCorrect:
				fmt.Fprintf(out, "%s: correct\n", result.ProblemID)
			case practice.FeedbackEmpty:
				fmt.Fprintf(out, "%s: please enter an answer\n", result.ProblemID)
			default:
				fmt.Fprintf(out, "%s: incorrect, try again\n", result.ProblemID)
			}
			return nil
		},
	}
}
