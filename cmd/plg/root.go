package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/plg"
	"github.com/viant/plg/internal/logging"
	"github.com/viant/plg/service/codec"
	"github.com/viant/plg/tracing"
)

var rootCmd = &cobra.Command{
	Use:           "plg",
	Short:         "plg inspects and converts PLG process models",
	Long:          `plg reads process models stored as PLG documents, validates them, renders them and generates sample values from their scripts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	_ = tracing.Shutdown(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
}

func newService(cmd *cobra.Command) (*plg.Service, error) {
	config := plg.DefaultConfig()
	if location, _ := cmd.Flags().GetString("config"); location != "" {
		loaded, err := plg.LoadConfig(cmd.Context(), location)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		config.Log.Level = level
	} else if !cmd.Flags().Changed("config") {
		config.Log.Level = "warn"
	}
	parsed, err := logging.ParseLevel(config.Log.Level)
	if err != nil {
		return nil, err
	}
	return plg.New(plg.WithConfig(config), plg.WithLogger(logging.New(parsed))), nil
}

func importProcess(ctx context.Context, srv *plg.Service, location string) (*codec.Result, error) {
	return srv.Import(ctx, resolve(location))
}

func resolve(location string) string {
	return url.Normalize(location, file.Scheme)
}
