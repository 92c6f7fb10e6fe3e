// Command fsroutes lists the HTTP routes an endpoints tree describes.
//
// Endpoint .go files register their handlers from init(), so this binary
// only sees .go endpoints that are compiled into it. Build a copy that
// blank-imports your endpoint packages, or compile them with
// -buildmode=plugin and point fsroutes at the .so files. Parameter
// segments in .go endpoints must be directories (users/_id/get.go) because
// the go tool ignores files named _id.go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/fsroutes/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fsroutes",
		Short: "Discover HTTP routes from an endpoints directory tree",
		Long: `fsroutes maps files below directories named "endpoints" to HTTP routes.

  endpoints/users.go          exports get, post  → GET/POST /users
  endpoints/users/_id/get.go  default export     → GET /users/:id
  endpoints/index.go          exports get        → GET /`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		routesCmd(),
		filesCmd(),
		initCmd(),
		versionCmd(),
	)

	return rootCmd
}

// success prints a success message.
func success(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
