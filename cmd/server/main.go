// Package main is the entry point for the battle server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "battle-api",
	Short: "Vygddrasil battle gRPC server",
	Long:  `battle-api runs the Vygddrasil battle engine: combat math, battle sessions, and reward resolution behind a gRPC interface.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(simulateCmd)
}
