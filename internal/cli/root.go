package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd собирает корневую команду superheroes.
func NewRootCmd(version string) *cobra.Command {
	return newRoot(version, os.Stdout, os.Stderr)
}

func newRoot(version string, stdout, stderr io.Writer) *cobra.Command {
	var apiURL string
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "superheroes",
		Short:         "superheroes CLI — heroes, powers and hero powers",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "http://localhost:5555", "API server URL")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	clientFn := func() *Client { return NewClient(apiURL) }
	outputFn := func() *Output { return NewOutputTo(stdout, stderr, jsonOutput) }

	rootCmd.AddCommand(
		NewHeroCmd(clientFn, outputFn),
		NewPowerCmd(clientFn, outputFn),
		NewHeroPowerCmd(clientFn, outputFn),
		NewSeedCmd(clientFn, outputFn),
		NewEventsCmd(outputFn),
	)

	return rootCmd
}
