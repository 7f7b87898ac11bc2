package cli

import (
	"github.com/spf13/cobra"

	"github.com/gistkit/gistkit/gists"
)

var commentsCmd = &cobra.Command{
	Use:   "comments ID",
	Short: "List the comments on a gist",
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

		items, err := svc.Comments(id, nil).All(ctx)
		if err != nil {
			fail(err)
		}

		emit(cmd, items, formatter.FormatCommentList(items))
	},
}

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Work with gist comments",
}

var commentGetCmd = &cobra.Command{
	Use:   "get GIST_ID COMMENT_ID",
	Short: "Fetch a single comment",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id, commentID, err := commentIDs(args)
		if err != nil {
			fail(err)
		}

		svc, formatter, err := newService(cmd)
		if err != nil {
			fail(err)
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		comment, err := svc.Comment(ctx, id, commentID, nil)
		if err != nil {
			fail(err)
		}

		emit(cmd, comment, formatter.FormatComment(comment))
	},
}

var commentAddCmd = &cobra.Command{
	Use:   "add GIST_ID BODY",
	Short: "Add a comment to a gist",
	Args:  cobra.ExactArgs(2),
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

		comment, err := svc.CreateComment(ctx, id, args[1], nil)
		if err != nil {
			fail(err)
		}

		emit(cmd, comment, formatter.FormatComment(comment))
	},
}

var commentEditCmd = &cobra.Command{
	Use:   "edit GIST_ID COMMENT_ID BODY",
	Short: "Edit a comment",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		id, commentID, err := commentIDs(args)
		if err != nil {
			fail(err)
		}

		svc, formatter, err := newService(cmd)
		if err != nil {
			fail(err)
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		comment, err := svc.UpdateComment(ctx, id, commentID, args[2], nil)
		if err != nil {
			fail(err)
		}

		emit(cmd, comment, formatter.FormatComment(comment))
	},
}

var commentRmCmd = &cobra.Command{
	Use:   "rm GIST_ID COMMENT_ID",
	Short: "Delete a comment",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id, commentID, err := commentIDs(args)
		if err != nil {
			fail(err)
		}

		svc, formatter, err := newService(cmd)
		if err != nil {
			fail(err)
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		deleted, err := svc.DeleteComment(ctx, id, commentID, nil)
		if err != nil {
			fail(err)
		}

		emit(cmd, deleted, formatter.FormatBool(deleted, "deleted", "not found"))
	},
}

// commentIDs resolves the leading GIST_ID COMMENT_ID argument pair
func commentIDs(args []string) (gists.ID, gists.ID, error) {
	id, err := gists.NewID(args[0])
	if err != nil {
		return "", "", err
	}
	commentID, err := gists.NewID(args[1])
	if err != nil {
		return "", "", err
	}
	return id, commentID, nil
}

func init() {
	commentCmd.AddCommand(commentGetCmd)
	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentEditCmd)
	commentCmd.AddCommand(commentRmCmd)
}
