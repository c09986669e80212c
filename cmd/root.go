package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/golangdaddy/circuit/log"
	playCmd "github.com/golangdaddy/circuit/pkg/cmd/play"
	recordsCmd "github.com/golangdaddy/circuit/pkg/cmd/records"
	simulateCmd "github.com/golangdaddy/circuit/pkg/cmd/simulate"
	tracksCmd "github.com/golangdaddy/circuit/pkg/cmd/tracks"
	"github.com/golangdaddy/circuit/pkg/config"
)

const envPrefix = "CIRCUIT"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "circuit",
	Short: "Checkpoint racing against computer opponents",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.InitLogger(config.LogLevel, config.LogDev)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		log.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.circuit.yml)")

	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", "info",
		"controls the log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&config.LogDev, "log-dev", false,
		"human readable log output")
	rootCmd.PersistentFlags().StringVar(&config.Difficulty, "difficulty", "easy",
		"opponent difficulty (easy, medium, hard or 1-3)")
	rootCmd.PersistentFlags().StringVar(&config.Track, "track", "easy",
		"track to race on (easy, medium, hard)")
	rootCmd.PersistentFlags().IntVar(&config.Laps, "laps", 3,
		"laps needed to win")
	rootCmd.PersistentFlags().StringVar(&config.MediaDir, "media-dir", "",
		"directory with sprite PNGs (built-in sprites if empty)")
	rootCmd.PersistentFlags().StringVar(&config.RecordsFile, "records", "",
		"JSON file for best scores (disabled if empty)")

	// add commands here
	rootCmd.AddCommand(playCmd.NewPlayCmd())
	rootCmd.AddCommand(simulateCmd.NewSimulateCmd())
	rootCmd.AddCommand(tracksCmd.NewTracksCmd())
	rootCmd.AddCommand(recordsCmd.NewRecordsCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".circuit")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --log-level to CIRCUIT_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
