package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gistkit/gistkit/gists"
)

var errNothingToEdit = errors.New("nothing to edit: pass --desc, --add or --remove")

var editCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a gist's description or files",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := gists.NewID(args[0])
		if err != nil {
			fail(err)
		}
		description, _ := cmd.Flags().GetString("desc")
		filePaths, _ := cmd.Flags().GetStringArray("add")
		removeNames, _ := cmd.Flags().GetStringArray("remove")

		var opts gists.Options
		if description != "" {
			opts = opts.With("description", description)
		}

		if len(filePaths) > 0 || len(removeNames) > 0 {
			files := make(map[string]interface{})
			if len(filePaths) > 0 {
				added, readErr := readGistFiles(filePaths, "")
				if readErr != nil {
					fail(readErr)
				}
				for name, file := range added {
					files[name] = file
				}
			}
			// A null file entry deletes the file on the server
			for _, name := range removeNames {
				files[name] = nil
			}
			opts = opts.With("files", files)
		}

		if len(opts) == 0 {
			fail(errNothingToEdit)
		}

		svc, formatter, err := newService(cmd)
		if err != nil {
			fail(err)
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		gist, err := svc.Update(ctx, id, opts)
		if err != nil {
			fail(err)
		}

		emit(cmd, gist, formatter.FormatGist(gist))
	},
}

func init() {
	editCmd.Flags().StringP("desc", "d", "", "New description")
	editCmd.Flags().StringArray("add", []string{}, "Add or replace a file (can be used multiple times)")
	editCmd.Flags().StringArray("remove", []string{}, "Remove a file by name (can be used multiple times)")
}
