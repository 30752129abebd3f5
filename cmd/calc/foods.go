package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"lg/macro-calc-api/foods"
	"lg/macro-calc-api/nutrition"
)

func newServingCmd() *cobra.Command {
	var (
		unit string
		qty  float64
	)
	cmd := &cobra.Command{
		Use:   "serving <food-id>",
		Short: "Scale a built-in food to quantity × serving",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServing(cmd.OutOrStdout(), args[0], unit, qty)
		},
	}
	cmd.Flags().StringVar(&unit, "unit", "", "serving unit (default: the food's first serving)")
	cmd.Flags().Float64Var(&qty, "qty", 1, "number of servings")
	return cmd
}

func runServing(w io.Writer, id, unit string, qty float64) error {
	f, err := foods.Lookup(id)
	if err != nil {
		return err
	}
	if unit == "" && len(f.Servings) > 0 {
		unit = f.Servings[0].Unit
	}
	n, grams, err := f.NutrientsFor(unit, qty)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s: %s × %s (%s g)\n", f.Name, fmtNum(qty), unit, fmtNum(grams))
	fmt.Fprintln(w, fmtNutrient(n))
	return nil
}

func newFoodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "foods <term>",
		Short: "Search the built-in food table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFoods(cmd.OutOrStdout(), strings.Join(args, " "))
		},
	}
}

func runFoods(w io.Writer, term string) error {
	if len([]rune(strings.TrimSpace(term))) < foods.MinSearchLen {
		return fmt.Errorf("search term must be at least %d characters", foods.MinSearchLen)
	}
	results := foods.Merge(nil, foods.SearchLocal(term), foods.DefaultLimit)
	if len(results) == 0 {
		fmt.Fprintf(w, "No foods match %q.\n", term)
		return nil
	}
	for _, f := range results {
		units := make([]string, len(f.Servings))
		for i, s := range f.Servings {
			units[i] = s.Unit
		}
		fmt.Fprintf(w, "%-22s %-32s %4s kcal/100g  [%s]\n",
			f.ID, f.Name, fmtNum(f.Per100g.Kcal), strings.Join(units, ", "))
	}
	return nil
}

func fmtNum(x float64) string { return strconv.FormatFloat(x, 'f', -1, 64) }

func fmtNutrient(n nutrition.Nutrient) string {
	s := fmt.Sprintf("%s kcal  P %sg  C %sg  F %sg",
		fmtNum(n.Kcal), fmtNum(n.ProteinG), fmtNum(n.CarbsG), fmtNum(n.FatG))
	if n.FiberG != nil {
		s += fmt.Sprintf("  fiber %sg", fmtNum(*n.FiberG))
	}
	return s
}
