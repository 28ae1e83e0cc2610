package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	flagLogLevel string
	log          zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "observer-demo",
	Short: "Runs the pull and push observer scenarios against a simulated weather station",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		bindFlags(cmd.Flags())

		lvl, err := zerolog.ParseLevel(viper.GetString("log-level"))
		if err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		log = log.Level(lvl)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagLogLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error)")
	log = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(pushCmd)
}

func initConfig() {
	viper.SetEnvPrefix("OBSERVER_DEMO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// bindFlags makes every flag of the running command readable through viper, so that each one can
// also be set with an OBSERVER_DEMO_* environment variable.
func bindFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})
}
