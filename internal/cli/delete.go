package cli

import (
	"github.com/spf13/cobra"

	"github.com/gistkit/gistkit/gists"
)

var rmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a gist",
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

		deleted, err := svc.Delete(ctx, id, nil)
		if err != nil {
			fail(err)
		}

		emit(cmd, deleted, formatter.FormatBool(deleted, "deleted", "not found"))
	},
}
