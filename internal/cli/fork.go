package cli

import (
	"github.com/spf13/cobra"

	"github.com/gistkit/gistkit/gists"
)

var forkCmd = &cobra.Command{
	Use:   "fork ID",
	Short: "Fork a gist into your account",
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

		gist, err := svc.Fork(ctx, id, nil)
		if err != nil {
			fail(err)
		}

		emit(cmd, gist, formatter.FormatGist(gist))
	},
}

var forksCmd = &cobra.Command{
	Use:   "forks ID",
	Short: "List the forks of a gist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := gists.NewID(args[0])
		if err != nil {
			fail(err)
		}
		limit, _ := cmd.Flags().GetInt("limit")

		svc, formatter, err := newService(cmd)
		if err != nil {
			fail(err)
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		items, err := collect(ctx, svc.Forks(id, nil), limit)
		if err != nil {
			fail(err)
		}

		emit(cmd, items, formatter.FormatGistList(items))
	},
}

func init() {
	forksCmd.Flags().IntP("limit", "n", 30, "Maximum number of forks to list (0 for all)")
}
