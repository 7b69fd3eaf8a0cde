package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var (
	flagConfigDefaults bool
	flagConfigWrite    string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or write the configuration",
	Long: `Print the effective configuration (config file, difficulty preset and
global flags applied) as YAML.

With --write the effective configuration is saved to a file; "user" is
shorthand for ~/.t2048/config.yaml, which is loaded on every start.

Examples:
  t2048 config
  t2048 config --defaults
  t2048 config --difficulty easy --write user`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults instead")
	configCmd.Flags().StringVar(&flagConfigWrite, "write", "", `Write the effective config to a path ("user" for ~/.t2048/config.yaml)`)
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagConfigDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg := mustSettings()

	if flagConfigWrite != "" {
		path := flagConfigWrite
		if path == "user" {
			path = config.UserConfigPath()
		}
		if path == "" {
			fmt.Fprintln(os.Stderr, "Error: cannot determine home directory")
			os.Exit(1)
		}
		if err := config.Save(path, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
