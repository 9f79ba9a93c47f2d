package main

import (
	"errors"
	"fmt"
	"strings"

	"petpal/internal/dashboard"
	"petpal/internal/ports/auth"

	"github.com/spf13/cobra"
)

func newLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email>",
		Short: "Log in and remember the session",
		Long: `Log in with an email address. New users (no complete pet profile yet)
are sent to the profile screen; returning users land on home.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ready(cmd.Context()); err != nil {
				return err
			}
			res, err := a.dash.Login(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, auth.ErrInvalidEmail) {
					return fmt.Errorf("invalid email %q", args[0])
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Logged in as %s\n", res.User)
			if res.NewUser {
				fmt.Fprintln(out, "Welcome! Set up your pet: petpal profile set --name <name> --age <years>")
			} else if p := res.State.Profile; p != nil {
				fmt.Fprintf(out, "Welcome back! %s has %d Paw Points.\n", p.Name, res.State.Points)
			}
			return nil
		},
	}
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the current session (records are kept)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ready(cmd.Context()); err != nil {
				return err
			}
			if err := a.dash.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := a.user(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), uc.Email)
			return nil
		},
	}
}

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"home"},
		Short:   "Show the home screen summary",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.user(cmd.Context()); err != nil {
				return err
			}
			st := a.dash.State()
			out := cmd.OutOrStdout()

			name := "your pet"
			if st.Profile != nil && st.Profile.Name != "" {
				name = st.Profile.Name
			}
			pending := 0
			for _, r := range st.Reminders {
				if !r.Completed {
					pending++
				}
			}
			fmt.Fprintf(out, "Welcome back! How is %s today?\n", name)
			fmt.Fprintf(out, "Paw Points: %d\n", st.Points)
			fmt.Fprintf(out, "Health entries: %d  Pending reminders: %d\n", len(st.Entries), pending)
			fmt.Fprintf(out, "Actions: %s\n", strings.Join(dashboard.Actions(), ", "))
			return nil
		},
	}
}

func newPetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pet",
		Short: "Pet your pet's avatar (+5 Paw Points)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.user(cmd.Context()); err != nil {
				return err
			}
			st, err := a.dash.PetAvatar(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if st.Profile != nil {
				printProfile(out, *st.Profile)
			} else {
				fmt.Fprintln(out, "No profile yet.")
			}
			fmt.Fprintf(out, "+5 Paw Points! Total: %d\n", st.Points)
			return nil
		},
	}
}

func newActionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "action <label>",
		Short: "Press a home action button (+10 Paw Points)",
		Long: `Press one of the home screen action buttons. Each press awards 10 Paw Points
and opens the matching screen.

Buttons: ` + strings.Join(dashboard.Actions(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := a.user(cmd.Context()); err != nil {
				return err
			}
			st, err := a.dash.ClickAction(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, dashboard.ErrUnknownAction) {
					return fmt.Errorf("unknown action %q (one of: %s)", args[0], strings.Join(dashboard.Actions(), ", "))
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Opened %s. +10 Paw Points! Total: %d\n", st.Screen, st.Points)
			return nil
		},
	}
}
