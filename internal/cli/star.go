package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gistkit/gistkit/gists"
)

var starCmd = &cobra.Command{
	Use:   "star ID",
	Short: "Star a gist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBoolean(cmd, args[0], "starred", "failed to star",
			func(ctx context.Context, svc *gists.Service, id gists.ID) (bool, error) {
				return svc.Star(ctx, id, nil)
			})
	},
}

var unstarCmd = &cobra.Command{
	Use:   "unstar ID",
	Short: "Remove a star from a gist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBoolean(cmd, args[0], "unstarred", "not starred",
			func(ctx context.Context, svc *gists.Service, id gists.ID) (bool, error) {
				return svc.Unstar(ctx, id, nil)
			})
	},
}

var starredCmd = &cobra.Command{
	Use:   "starred ID",
	Short: "Check whether a gist is starred",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBoolean(cmd, args[0], "starred", "not starred",
			func(ctx context.Context, svc *gists.Service, id gists.ID) (bool, error) {
				return svc.IsStarred(ctx, id, nil)
			})
	},
}

// runBoolean handles the shared shape of the star family: resolve the
// ID, call the operation, print the yes/no answer
func runBoolean(cmd *cobra.Command, rawID, yes, no string, op func(context.Context, *gists.Service, gists.ID) (bool, error)) {
	id, err := gists.NewID(rawID)
	if err != nil {
		fail(err)
	}

	svc, formatter, err := newService(cmd)
	if err != nil {
		fail(err)
	}

	ctx, cancel := requestContext(cmd)
	defer cancel()

	result, err := op(ctx, svc, id)
	if err != nil {
		fail(err)
	}

	emit(cmd, result, formatter.FormatBool(result, yes, no))
}
