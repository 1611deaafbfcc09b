package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/alliance-genome/agr-ai-curation-sub000/internal/version"
	"github.com/alliance-genome/agr-ai-curation-sub000/pkg/client"
)

var (
	serverURL string
	apiKey    string
)

var rootCmd = &cobra.Command{
	Use:     "chunkql",
	Short:   "Query a chunksearch server from the command line",
	Version: version.Version,
	Long: `chunkql talks to a running chunksearch server over HTTP.

Example usage:
  chunkql search -s paper-123 -q "daf-16 expression"   # hybrid search
  chunkql search -s paper-123 -q "p53" --json          # short queries escalate automatically
  chunkql health                                       # check server and store`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "chunksearch server URL")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", os.Getenv("CHUNKSEARCH_API_KEY"), "API key (default $CHUNKSEARCH_API_KEY)")
}

func newClient() *client.Client {
	var opts []client.Option
	if apiKey != "" {
		opts = append(opts, client.WithAPIKey(apiKey))
	}
	return client.New(serverURL, opts...)
}
