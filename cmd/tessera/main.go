package main

import (
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "tessera",
		Short:         "Plate-seeded heightmaps over Voronoi cells",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(generateCmd())

	if err := rootCmd.Execute(); err != nil {
		logs.Fatal(err)
	}
}

// setupLogs applies the configured level and encoder.
func setupLogs(level string, indent bool) {
	logs.SetLevel(logs.ParseLevel(level))
	logs.Encoder = json.Marshal
	if indent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}

	errors.Encoder = json.Marshal
}
