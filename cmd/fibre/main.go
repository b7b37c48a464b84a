package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐┬┌┐ ┬─┐┌─┐
  ├┤ │├┴┐├┬┘├┤
  └  ┴└─┘┴└─└─┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "fibre",
		Short: "A fine-grained reactive signal core and renderer for Go",
		Long: `fibre is a reactive signal core and renderer for Go.

A signal graph drives a fine-grained renderer against pluggable
backends — no virtual-DOM diff, no separate build step. Features:

  • Signals, memos, and effects with automatic dependency tracking
  • A fine-grained renderer that patches only what changed
  • A browser backend (domhost) driven over WebSocket
  • A terminal backend (termhost) driven by bubbletea`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		devCmd(),
		termCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the fibre ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
