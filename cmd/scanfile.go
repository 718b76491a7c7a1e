package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"filescan/internal/config"
	"filescan/internal/scan"
	"filescan/pkg/filescanner/vtotal"
	"filescan/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// scanFileCommand constructs the 'scan-file' subcommand that resolves a
// verdict for a single local file without touching the database or blob
// store. Useful for smoke testing credentials and the polling policy.
func scanFileCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan-file <path>",
		Short: "Scans a single local file and prints the verdict",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			contents, err := os.ReadFile(args[0])
			if err != nil {
				logger.Fatal(ctx, "could not read file", zap.Error(err))
			}

			client := vtotal.New(&http.Client{Timeout: remoteHTTPTimeout},
				cfg.Scanner.BaseURL, cfg.Scanner.APIKey)
			resolver := scan.New(client, scan.NewOptions(cfg))

			outcome := resolver.Resolve(ctx, contents, filepath.Base(args[0]))

			out, err := json.MarshalIndent(struct {
				Fingerprint string `json:"fingerprint"`
				Verdict     string `json:"verdict"`
				Handle      string `json:"handle,omitempty"`
				Degraded    bool   `json:"degraded,omitempty"`
			}{
				Fingerprint: scan.Fingerprint(contents),
				Verdict:     string(outcome.Verdict),
				Handle:      outcome.Handle,
				Degraded:    outcome.Degraded,
			}, "", "  ")
			if err != nil {
				logger.Fatal(ctx, "could not encode outcome", zap.Error(err))
			}

			fmt.Println(string(out)) //nolint: forbidigo
		},
	}

	return cmd
}
