package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd is the parent command for config operations.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Commands for inspecting the ledger configuration in .ai-ledger/config.json.`,
}

// configShowCmd shows the effective configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Long: `Display config.json merged with defaults and AI_LEDGER_* environment
overrides.`,
	Run: runConfigShow,
}

// configPathCmd shows the config file path.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config file path",
	Long:  `Display the path to the configuration file.`,
	Run:   runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	cfg := loadConfig(openLedger())

	if outputJSON {
		printFormatted(cfg)
		return
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		exitError("failed to marshal config: %v", err)
	}

	fmt.Println("Current configuration:")
	fmt.Println()
	fmt.Print(string(data))
}

func runConfigPath(cmd *cobra.Command, args []string) {
	l := openLedger()
	configPath := l.Layout.ConfigPath()
	fmt.Printf("Config file path: %s\n", configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Println("(file does not exist)")
	} else {
		fmt.Println("(file exists)")
	}
}
