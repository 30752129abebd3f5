package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lg/macro-calc-api/nutrition"
)

type evaluateOpts struct {
	age      int
	sex      string
	height   string
	weight   string
	activity string
	goal     string
	delta    float64
	asJSON   bool
}

func newEvaluateCmd(v *viper.Viper) *cobra.Command {
	var o evaluateOpts
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Compute BMI, body fat, BMR, TDEE, goal calories and macros",
		Long: `Evaluates a profile against a goal. --height and --weight are read in the
unit system given by --units (cm/kg or in/lbs) and converted before use.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEvaluate(cmd.OutOrStdout(), o, nutrition.UnitSystem(v.GetString("units")))
		},
	}

	f := cmd.Flags()
	f.IntVar(&o.age, "age", 30, "age in years")
	f.StringVar(&o.sex, "sex", "male", "male or female")
	f.StringVar(&o.height, "height", "175", "height (cm, or in with --units imperial)")
	f.StringVar(&o.weight, "weight", "70", "weight (kg, or lbs with --units imperial)")
	f.StringVar(&o.activity, "activity", "moderate", "sedentary, light, moderate, very or extra")
	f.StringVar(&o.goal, "goal", "maintain", "lose, maintain or gain")
	f.Float64Var(&o.delta, "delta", 500, "daily calorie delta for lose/gain")
	f.BoolVar(&o.asJSON, "json", false, "print the result as JSON")
	return cmd
}

func runEvaluate(w io.Writer, o evaluateOpts, sys nutrition.UnitSystem) error {
	if !sys.Valid() {
		return fmt.Errorf("units must be metric or imperial, got %q", sys)
	}
	heightCM, err := nutrition.ParseDisplayHeight(o.height, sys)
	if err != nil {
		return err
	}
	weightKG, err := nutrition.ParseDisplayWeight(o.weight, sys)
	if err != nil {
		return err
	}

	p := nutrition.UserProfile{
		Age:      o.age,
		Sex:      nutrition.Sex(o.sex),
		HeightCM: heightCM,
		WeightKG: weightKG,
		Activity: nutrition.Activity(o.activity),
	}
	g := nutrition.Goal{Mode: nutrition.GoalMode(o.goal), DeltaKcalPerDay: o.delta}
	if err := p.Validate(); err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return err
	}

	r := nutrition.Evaluate(p, g)
	if o.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	fmt.Fprintf(w, "BMI:            %.1f (%s)\n", r.Bmi.Value, r.Bmi.Category)
	fmt.Fprintf(w, "Body fat:       %.1f%%\n", r.BodyFatPct)
	fmt.Fprintf(w, "BMR:            %d kcal\n", r.Bmr)
	fmt.Fprintf(w, "TDEE:           %d kcal\n", r.Tdee)
	fmt.Fprintf(w, "Goal calories:  %d kcal\n", r.GoalCalories)
	fmt.Fprintf(w, "Macros:         P %dg (%d%%) / C %dg (%d%%) / F %dg (%d%%)\n",
		r.Macros.ProteinG, r.Macros.SplitsPct.P,
		r.Macros.CarbsG, r.Macros.SplitsPct.C,
		r.Macros.FatG, r.Macros.SplitsPct.F)
	return nil
}
