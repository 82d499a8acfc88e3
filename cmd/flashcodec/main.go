// Command flashcodec is the operator-facing CLI around the engine/wire
// columnar codec: it converts single-column JSON fixtures through
// EncodeColumn/DecodeColumn, benchmarks concurrent column conversion,
// and serves Prometheus metrics.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/flashwire/flashcodec/internal/config"
	"github.com/flashwire/flashcodec/internal/telemetry/logger"
)

var version = "0.1.0"

var configFile string

func main() {
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:   "flashcodec",
		Short: "flashcodec converts columns between engine and wire representations",
		Long: `flashcodec is the reference CLI for the engine/wire columnar codec.
It encodes and decodes single-column fixtures, benchmarks concurrent
column conversion, and exposes Prometheus metrics over HTTP.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			return logger.Init(logger.Config{
				Level:    cfg.LogLevel,
				Encoding: cfg.LogEncoding,
			})
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "path to a flashcodec config file (optional)")
	_ = viper.BindPFlag("config", root.PersistentFlags().Lookup("config"))

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("flashcodec v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	root.AddCommand(newEncodeCmd())
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newBenchCmd())
	root.AddCommand(newServeCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
