package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mholden/chatex/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "chatex",
	Short: "Export chat conversation logs as JSON",
	Long: `Chatex reads a line-oriented chat log, filters its messages by sender
and/or keyword, optionally redacts forbidden words, and writes the
conversation out as a JSON document.

Examples:
  chatex export chat.txt chat.json
  chatex export -u alice chat.txt chat.json
  chatex export -k pie -w society,pie chat.txt chat.json
  chatex watch chat.txt chat.json`,
}

// Execute is called by main.main(). It runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chatex.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".chatex")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CHATEX")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("verbose", false)
	viper.SetDefault("separator", config.DefaultSeparator)
	viper.SetDefault("redaction.marker", config.DefaultMarker)

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}
