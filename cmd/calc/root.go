package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd builds the command tree. Each call gets its own viper instance
// so tests can run commands independently.
func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("CALC")
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "calc",
		Short:         "BMI, BMR/TDEE, goal calories and macro targets",
		Long:          "calc evaluates a body profile against a goal and scales built-in foods to servings.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("units", "metric", "unit system for --height/--weight input: metric or imperial (env CALC_UNITS)")
	_ = v.BindPFlag("units", root.PersistentFlags().Lookup("units"))

	root.AddCommand(newEvaluateCmd(v), newServingCmd(), newFoodsCmd())
	return root
}
