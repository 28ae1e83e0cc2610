package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jeremyforan/observer/internal/demo"
)

var (
	flagStart int
	flagTicks int
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Signal a counter and a display on every new station reading",
	RunE: func(cmd *cobra.Command, _ []string) error {
		res, err := demo.RunPull(demo.PullConfig{
			Start: viper.GetInt("start"),
			Ticks: viper.GetInt("ticks"),
		}, log)
		if err != nil {
			return err
		}

		cmd.Printf("counter: %d\n", res.Counter)
		cmd.Printf("display: timestamp=%d celsius=%.1f\n", res.Shown.Timestamp, res.Shown.Celsius)
		return nil
	},
}

func init() {
	pullCmd.Flags().IntVar(&flagStart, "start", 5, "initial counter value")
	pullCmd.Flags().IntVar(&flagTicks, "ticks", 20, "number of readings to record")
}
