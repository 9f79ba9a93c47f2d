package main

import (
	"fmt"
	"net/http"
	"time"

	"petpal/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	var (
		serverURL string
		user      string
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check a running petpal API server",
		Long: `Check the health of a petpal API server and show its session and Paw Points.

Examples:
  petpal status
  petpal status --server http://localhost:9090 --user ana@example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := httpclient.New(serverURL, timeout)
			if err != nil {
				return err
			}
			c.User = user

			st, err := c.Status(cmd.Context())
			out := cmd.OutOrStdout()
			if !st.Healthy {
				fmt.Fprintf(out, "Server %s: unreachable\n", serverURL)
				return err
			}
			fmt.Fprintf(out, "Server %s: ok\n", serverURL)
			if err != nil {
				if httpclient.IsStatus(err, http.StatusUnauthorized) {
					return fmt.Errorf("user %q rejected by server", user)
				}
				return err
			}

			switch {
			case user != "":
				fmt.Fprintf(out, "User: %s\n", user)
			case st.Session.Authenticated:
				fmt.Fprintf(out, "Session: %s\n", st.Session.User)
			default:
				fmt.Fprintln(out, "Session: none")
				return nil
			}
			fmt.Fprintf(out, "Paw Points: %d\n", st.Points)
			return nil
		},
	}
	cmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "petpal API base URL")
	cmd.Flags().StringVar(&user, "user", "", "query as this user (X-User-Email)")
	cmd.Flags().DurationVar(&timeout, "timeout", httpclient.DefaultTimeout, "request timeout")
	return cmd
}
