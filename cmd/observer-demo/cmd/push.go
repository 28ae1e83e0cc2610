package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jeremyforan/observer/internal/demo"
)

var (
	flagFirst  int64
	flagSecond int64
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push readings to recorders A and B, detaching A between the two readings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		res, err := demo.RunPush(demo.PushConfig{
			First:  viper.GetInt64("first"),
			Second: viper.GetInt64("second"),
		}, log)
		if err != nil {
			return err
		}

		for _, r := range []*demo.Recorder{res.A, res.B} {
			cmd.Printf("%s: timestamp=%d updates=%d\n", r.Name, r.Last().Timestamp, r.Updates())
		}
		return nil
	},
}

func init() {
	pushCmd.Flags().Int64Var(&flagFirst, "first", 42, "timestamp pushed to both recorders")
	pushCmd.Flags().Int64Var(&flagSecond, "second", 2500, "timestamp pushed after A is detached")
}
