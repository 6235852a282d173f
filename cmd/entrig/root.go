package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd only hosts subcommands; `entrig` alone prints help.
var rootCmd = &cobra.Command{
	Use:   "entrig",
	Short: "Prepare native projects for Entrig push notifications",
	Long: `Entrig configures the native side of an Expo or React Native app so it
can receive push notifications. Run it from the project root after
"npx expo prebuild" has generated the ios/ directory.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		configureLogging()
	},
	SilenceUsage: true,
}

// Execute runs the CLI. Any returned error has already been printed by
// cobra, so only the exit status is left to set.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "user defaults file (default $HOME/.entrig.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every file checked and written")
}

// initConfig reads user-level defaults. ENTRIG_FORMAT, ENTRIG_NO_COLOR and
// friends override the file; a missing file is not an error.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Error("failed to find home directory", "error", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".entrig")
	}

	viper.SetEnvPrefix("entrig")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

// configureLogging sends logs to stderr so reports on stdout stay clean.
func configureLogging() {
	level := slog.LevelInfo
	if verbose || viper.GetBool("verbose") {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
