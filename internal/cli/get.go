package cli

import (
	"github.com/spf13/cobra"

	"github.com/gistkit/gistkit/gists"
)

var getCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Fetch a gist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := gists.NewID(args[0])
		if err != nil {
			fail(err)
		}
		sha, _ := cmd.Flags().GetString("sha")

		svc, formatter, err := newService(cmd)
		if err != nil {
			fail(err)
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		var gist *gists.Gist
		if sha != "" {
			rev, revErr := gists.NewID(sha)
			if revErr != nil {
				fail(revErr)
			}
			gist, err = svc.Revision(ctx, id, rev, nil)
		} else {
			gist, err = svc.Get(ctx, id, nil)
		}
		if err != nil {
			fail(err)
		}

		emit(cmd, gist, formatter.FormatGist(gist))
	},
}

func init() {
	getCmd.Flags().String("sha", "", "Fetch the gist at a specific revision")
}
