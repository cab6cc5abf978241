// routekit CLI - inspect route declarations and test requests against them.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/routekit/routekit/pkg/config"
	"github.com/routekit/routekit/pkg/logging"
	"github.com/routekit/routekit/pkg/route"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:           "routekit",
	Short:         "Match requests against declared routes",
	Long:          "routekit loads route declarations from YAML files and matches request metadata against them.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")
}

func newLogger() *slog.Logger {
	return logging.New(logging.Config{
		Level:  logging.ParseLevel(logLevel),
		Format: logging.ParseFormat(logFormat),
	})
}

// loadRoutes loads a route file, treating patterns with glob metacharacters
// as globs.
func loadRoutes(path string) ([]*route.Route, error) {
	if strings.ContainsAny(path, "*?[") {
		return config.LoadGlob(path)
	}
	return config.LoadFile(path)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
