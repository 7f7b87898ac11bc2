package cli

import (
	"github.com/spf13/cobra"

	"github.com/gistkit/gistkit/gists"
)

var commitsCmd = &cobra.Command{
	Use:   "commits ID",
	Short: "Show a gist's revision history",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := gists.NewID(args[0])
		if err != nil {
			fail(err)
		}

		svc, formatter, err := newService(cmd)
		if err != nil {
			fail(err)
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		items, err := svc.Commits(id, nil).All(ctx)
		if err != nil {
			fail(err)
		}

		emit(cmd, items, formatter.FormatCommitList(items))
	},
}
