package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gistkit/gistkit/config"
	"github.com/gistkit/gistkit/gists"
	"github.com/gistkit/gistkit/http"
	"github.com/gistkit/gistkit/internal/output"
	"github.com/gistkit/gistkit/pkg/jsonpath"
	"github.com/gistkit/gistkit/pkg/jsonschema"
)

// newService builds the gists service and formatter from config file,
// environment and command flags, flags winning.
func newService(cmd *cobra.Command) (*gists.Service, *output.Formatter, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	if token, _ := cmd.Flags().GetString("token"); token != "" {
		cfg.Token = token
	}
	if baseURL, _ := cmd.Flags().GetString("base-url"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
	}

	client := http.NewClient(
		http.WithBaseURL(cfg.BaseURL),
		http.WithToken(cfg.Token),
		http.WithUserAgent(cfg.UserAgent),
		http.WithTimeout(cfg.Timeout),
	)

	format, _ := cmd.Flags().GetString("output")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")
	formatter := output.NewFormatter(output.Format(format), verbose, noColor)

	return gists.NewService(client), formatter, nil
}

// requestContext returns a context honoring the timeout flag
func requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

// emit prints a result, honoring the global --schema and --extract
// flags: schema validation failures abort, and an extract expression
// replaces the formatted output with the extracted value.
func emit(cmd *cobra.Command, result interface{}, formatted string) {
	schemaPath, _ := cmd.Flags().GetString("schema")
	extract, _ := cmd.Flags().GetString("extract")

	if schemaPath != "" || extract != "" {
		raw, err := json.Marshal(result)
		if err != nil {
			fail(err)
		}

		if schemaPath != "" {
			schema, err := os.ReadFile(schemaPath)
			if err != nil {
				fail(err)
			}
			valid, errs := jsonschema.ValidateWithErrors(string(raw), string(schema))
			if !valid {
				fail(fmt.Errorf("schema validation failed: %s", errs.Error()))
			}
		}

		if extract != "" {
			value, err := jsonpath.Extract(string(raw), extract)
			if err != nil {
				fail(err)
			}
			fmt.Println(value)
			return
		}
	}

	fmt.Print(formatted)
}
