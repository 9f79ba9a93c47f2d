package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"petpal/internal/domain/reminders"
	"petpal/internal/ports/auth"

	"github.com/spf13/cobra"
)

func newRemindersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reminders",
		Aliases: []string{"rem"},
		Short:   "Daily care reminders (+10 Paw Points each on completion)",
	}
	cmd.AddCommand(
		newRemindersListCmd(a),
		newRemindersAddCmd(a),
		newRemindersDoneCmd(a),
		newRemindersRmCmd(a),
		newRemindersSuggestCmd(a),
	)
	return cmd
}

func newRemindersListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reminders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := a.user(cmd.Context())
			if err != nil {
				return err
			}
			b, err := a.reminders.Load(cmd.Context(), uc)
			if err != nil {
				return err
			}
			printReminders(cmd.OutOrStdout(), b.Reminders)
			fmt.Fprintf(cmd.OutOrStdout(), "Paw Points: %d\n", b.Points)
			return nil
		},
	}
}

func newRemindersAddCmd(a *app) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "add <task>",
		Short: "Add a pending reminder",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.user(cmd.Context())
			if err != nil {
				return err
			}
			rem, err := a.reminders.Create(cmd.Context(), uc, strings.Join(args, " "), at)
			if err != nil {
				if errors.Is(err, reminders.ErrInvalidInput) {
					return errors.New("task is required and --at must be HH:MM")
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q at %s (%s)\n", rem.Task, rem.Time, rem.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "time of day HH:MM")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}

func newRemindersDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id|#>",
		Short: "Complete a reminder by ID or list position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.user(cmd.Context())
			if err != nil {
				return err
			}
			id, err := a.resolveReminder(cmd.Context(), uc, args[0])
			if err != nil {
				return err
			}
			c, err := a.reminders.Complete(cmd.Context(), uc, id)
			if err != nil {
				return reminderErr(err, args[0])
			}
			a.dash.OnPointsAwarded(uc, c.Points)

			out := cmd.OutOrStdout()
			if c.Awarded == 0 {
				fmt.Fprintf(out, "%q was already done. Paw Points: %d\n", c.Reminder.Task, c.Points)
				return nil
			}
			fmt.Fprintf(out, "Done: %s. +%d Paw Points! Total: %d\n", c.Reminder.Task, c.Awarded, c.Points)
			return nil
		},
	}
}

func newRemindersRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id|#>",
		Short: "Delete a reminder (points are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.user(cmd.Context())
			if err != nil {
				return err
			}
			id, err := a.resolveReminder(cmd.Context(), uc, args[0])
			if err != nil {
				return err
			}
			if err := a.reminders.Delete(cmd.Context(), uc, id); err != nil {
				return reminderErr(err, args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}
}

func newRemindersSuggestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Suggested daily tasks for your pet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := a.user(cmd.Context())
			if err != nil {
				return err
			}
			for _, task := range a.reminders.Suggestions(cmd.Context(), uc) {
				fmt.Fprintln(cmd.OutOrStdout(), task)
			}
			return nil
		},
	}
}

func newPointsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "points",
		Short: "Show the Paw Points total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := a.user(cmd.Context())
			if err != nil {
				return err
			}
			pts, err := a.reminders.Points(cmd.Context(), uc)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Paw Points: %d\n", pts)
			return nil
		},
	}
}

// resolveReminder acepta un ID o la posición (1-based) de `reminders list`.
func (a *app) resolveReminder(ctx context.Context, uc auth.UserContext, arg string) (string, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return arg, nil
	}
	b, err := a.reminders.Load(ctx, uc)
	if err != nil {
		return "", err
	}
	if n < 1 || n > len(b.Reminders) {
		return "", fmt.Errorf("no reminder #%d (have %d)", n, len(b.Reminders))
	}
	return b.Reminders[n-1].ID, nil
}

func reminderErr(err error, arg string) error {
	if errors.Is(err, reminders.ErrNotFound) {
		return fmt.Errorf("reminder %q not found", arg)
	}
	return err
}
