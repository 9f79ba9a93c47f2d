package main

import (
	"errors"
	"fmt"
	"strings"

	"petpal/internal/domain/tips"

	"github.com/spf13/cobra"
)

func newTipCmd(a *app) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "tip",
		Short: "Random care tip, personalized when a profile exists",
		Long: `Print a random care tip. Without --category any category may be picked.

Categories: ` + strings.Join(categoryNames(), ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ready(cmd.Context()); err != nil {
				return err
			}
			// sin sesión también responde, sin personalizar
			uc, _ := a.dash.User()

			c := tips.Category(strings.ToLower(strings.TrimSpace(category)))
			tip, err := a.tips.Random(cmd.Context(), uc, c)
			if err != nil {
				if errors.Is(err, tips.ErrInvalidInput) {
					return fmt.Errorf("unknown category %q (one of: %s)", category, strings.Join(categoryNames(), ", "))
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", tip.Category, tip.Text)
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "tip category")
	return cmd
}

func newVetsCmd(a *app) *cobra.Command {
	var withTip bool

	cmd := &cobra.Command{
		Use:   "vets",
		Short: "Nearby vet clinics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ready(cmd.Context()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, c := range a.vets.Directory() {
				emergency := ""
				if c.Emergency {
					emergency = "  [24/7 emergency]"
				}
				fmt.Fprintf(out, "%s (%.1f, %s)%s\n", c.Name, c.Rating, c.Distance, emergency)
				fmt.Fprintf(out, "  %s  %s\n", c.Address, c.Phone)
				fmt.Fprintf(out, "  %s  %s\n", c.Hours, strings.Join(c.Specialties, ", "))
			}
			if withTip {
				uc, _ := a.dash.User()
				fmt.Fprintf(out, "\nTip: %s\n", a.vets.Tip(cmd.Context(), uc))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&withTip, "tip", false, "also print a tip for choosing a vet")
	return cmd
}

func categoryNames() []string {
	out := make([]string, 0, len(tips.Categories))
	for _, c := range tips.Categories {
		out = append(out, string(c))
	}
	return out
}
