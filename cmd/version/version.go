// Package version handles the version command
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// These variables are set at build time using ldflags, for example:
//
//	go build -ldflags "-X 'fjacquet/labordist-csv/cmd/version.Version=1.2.0'"
var (
	// Version is the application version.
	Version = "dev"

	// BuildDate is the date the application was built.
	BuildDate = "unknown"
)

// Cmd represents the version command
var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Display the application version",
	Long:  `Display the application version, build date, and Go runtime version.`,
	Run:   versionFunc,
}

func versionFunc(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "labordist-csv")
	fmt.Fprintf(out, "Version:    %s\n", Version)
	fmt.Fprintf(out, "Build Date: %s\n", BuildDate)
	fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
}
