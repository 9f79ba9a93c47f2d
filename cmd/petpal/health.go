package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"petpal/internal/domain/health"

	"github.com/spf13/cobra"
)

func newHealthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Health log with symptom and weight advice",
	}
	cmd.AddCommand(newHealthListCmd(a), newHealthLogCmd(a), newHealthSuggestCmd(a))
	return cmd
}

func newHealthListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List health entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := a.user(cmd.Context())
			if err != nil {
				return err
			}
			entries, err := a.health.Load(cmd.Context(), uc)
			if err != nil {
				return err
			}
			printEntries(cmd.OutOrStdout(), entries)
			return nil
		},
	}
}

func newHealthLogCmd(a *app) *cobra.Command {
	var in health.AppendInput

	cmd := &cobra.Command{
		Use:   "log <symptom>",
		Short: "Record a symptom (and optional weight) and get advice",
		Long: `Record an observation. The date defaults to today (YYYY-MM-DD).
Advice compares the weight against the most recent entry that has one.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.user(cmd.Context())
			if err != nil {
				return err
			}
			in.Symptom = strings.Join(args, " ")

			e, adv, entries, err := a.health.Append(cmd.Context(), uc, in)
			if err != nil {
				if errors.Is(err, health.ErrInvalidInput) {
					return errors.New("symptom is required; date must be YYYY-MM-DD and weight a positive number")
				}
				return err
			}
			a.dash.OnHealthLogged(uc, entries)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Logged %s: %s (%s)\n", e.Date, e.Symptom, e.Weight)
			printAdvice(out, adv)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Weight, "weight", "", "weight (kg)")
	cmd.Flags().StringVar(&in.Date, "date", "", "date YYYY-MM-DD (default today)")
	return cmd
}

func newHealthSuggestCmd(a *app) *cobra.Command {
	var weight string

	cmd := &cobra.Command{
		Use:   "suggest <symptom>",
		Short: "Preview advice without recording anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.user(cmd.Context())
			if err != nil {
				return err
			}
			adv, err := a.health.Suggest(cmd.Context(), uc, strings.Join(args, " "), weight)
			if err != nil {
				return err
			}
			printAdvice(cmd.OutOrStdout(), adv)
			return nil
		},
	}
	cmd.Flags().StringVar(&weight, "weight", "", "weight (kg)")
	return cmd
}

func printAdvice(w io.Writer, adv health.Advice) {
	label := "Advice"
	if adv.Kind == health.KindUrgent {
		label = "URGENT"
	}
	fmt.Fprintf(w, "%s: %s\n", label, adv.Message)
}
