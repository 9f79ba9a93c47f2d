package main

import (
	"errors"
	"fmt"
	"strings"

	"petpal/internal/domain/profile"

	"github.com/spf13/cobra"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the pet profile",
	}
	cmd.AddCommand(newProfileShowCmd(a), newProfileSetCmd(a), newBreedsCmd())
	return cmd
}

func newProfileShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := a.user(cmd.Context())
			if err != nil {
				return err
			}
			p, err := a.profiles.Load(cmd.Context(), uc)
			if err != nil {
				if errors.Is(err, profile.ErrNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), "No profile yet. Run: petpal profile set --name <name> --age <years>")
					return nil
				}
				return err
			}
			printProfile(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func newProfileSetCmd(a *app) *cobra.Command {
	var in profile.SaveInput

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save the pet profile (name and a positive age are required)",
		Long: `Save the pet profile. Breed defaults to "` + string(profile.DefaultBreed) + `".

Breeds: ` + strings.Join(breedNames(), ", "),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := a.user(cmd.Context())
			if err != nil {
				return err
			}
			p, err := a.profiles.Save(cmd.Context(), uc, in)
			if err != nil {
				if errors.Is(err, profile.ErrInvalidInput) {
					return errors.New("name and a positive age are required")
				}
				return err
			}
			a.dash.OnProfileSaved(uc, p)

			fmt.Fprintln(cmd.OutOrStdout(), "Profile saved.")
			printProfile(cmd.OutOrStdout(), p)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "pet name")
	cmd.Flags().StringVar(&in.Breed, "breed", "", "breed")
	cmd.Flags().IntVar(&in.Age, "age", 0, "age in years")
	cmd.Flags().StringVar(&in.Health, "health", "", "health notes")
	return cmd
}

func newBreedsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "breeds",
		Short: "List breed options",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, b := range breedNames() {
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
		},
	}
}

func breedNames() []string {
	out := make([]string, 0, len(profile.Breeds))
	for _, b := range profile.Breeds {
		out = append(out, string(b))
	}
	return out
}
