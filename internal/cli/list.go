package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gistkit/gistkit/gists"
	"github.com/gistkit/gistkit/http"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List gists (own, public, starred, or another user's)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		public, _ := cmd.Flags().GetBool("public")
		starred, _ := cmd.Flags().GetBool("starred")
		user, _ := cmd.Flags().GetString("user")
		since, _ := cmd.Flags().GetString("since")
		limit, _ := cmd.Flags().GetInt("limit")

		svc, formatter, err := newService(cmd)
		if err != nil {
			fail(err)
		}

		var opts gists.Options
		if since != "" {
			opts = opts.With("since", since)
		}

		var it *http.Pages[gists.Gist]
		switch {
		case user != "":
			it = svc.ListForUser(user, opts)
		case public:
			it = svc.Public(opts)
		case starred:
			it = svc.Starred(opts)
		default:
			it = svc.List(opts)
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		items, err := collect(ctx, it, limit)
		if err != nil {
			fail(err)
		}

		emit(cmd, items, formatter.FormatGistList(items))
	},
}

// collect drains up to limit items from a paged sequence; limit <= 0
// means everything
func collect(ctx context.Context, it *http.Pages[gists.Gist], limit int) ([]gists.Gist, error) {
	if limit <= 0 {
		return it.All(ctx)
	}
	items := make([]gists.Gist, 0, limit)
	for len(items) < limit {
		item, ok := it.Next(ctx)
		if !ok {
			break
		}
		items = append(items, item)
	}
	return items, it.Err()
}

func init() {
	listCmd.Flags().Bool("public", false, "List public gists")
	listCmd.Flags().Bool("starred", false, "List starred gists")
	listCmd.Flags().StringP("user", "u", "", "List another user's gists")
	listCmd.Flags().String("since", "", "Only gists updated after this ISO 8601 timestamp")
	listCmd.Flags().IntP("limit", "n", 30, "Maximum number of gists to list (0 for all)")
}
