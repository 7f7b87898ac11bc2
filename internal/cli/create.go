package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gistkit/gistkit/gists"
)

var createCmd = &cobra.Command{
	Use:   "create FILE [FILE...]",
	Short: "Create a gist from one or more files",
	Long: `Create a gist from one or more local files. Pass "-" to read a single
file from stdin (name it with --filename).`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		description, _ := cmd.Flags().GetString("desc")
		public, _ := cmd.Flags().GetBool("public")
		stdinName, _ := cmd.Flags().GetString("filename")

		files, err := readGistFiles(args, stdinName)
		if err != nil {
			fail(err)
		}

		svc, formatter, err := newService(cmd)
		if err != nil {
			fail(err)
		}

		opts := gists.Options{"public": public}
		if description != "" {
			opts = opts.With("description", description)
		}

		ctx, cancel := requestContext(cmd)
		defer cancel()

		gist, err := svc.Create(ctx, files, opts)
		if err != nil {
			fail(err)
		}

		emit(cmd, gist, formatter.FormatGist(gist))
	},
}

// readGistFiles loads local files (or stdin for "-") into the files
// map the API expects
func readGistFiles(paths []string, stdinName string) (map[string]gists.GistFile, error) {
	files := make(map[string]gists.GistFile, len(paths))
	for _, path := range paths {
		var name string
		var data []byte
		var err error

		if path == "-" {
			name = stdinName
			if name == "" {
				name = "gistfile.txt"
			}
			data, err = io.ReadAll(os.Stdin)
		} else {
			name = filepath.Base(path)
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("%s is empty", path)
		}

		content := string(data)
		files[name] = gists.GistFile{Content: &content}
	}
	return files, nil
}

func init() {
	createCmd.Flags().StringP("desc", "d", "", "Gist description")
	createCmd.Flags().BoolP("public", "p", false, "Create a public gist")
	createCmd.Flags().String("filename", "", "Filename for content read from stdin")
}
