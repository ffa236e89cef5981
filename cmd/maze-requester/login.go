package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dvcrn/maze-requester/internal/credentials"
)

func newLoginCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a bearer token in the credentials file",
		RunE: func(cmd *cobra.Command, args []string) error {
			token = strings.TrimSpace(token)
			if token == "" {
				return credentials.ErrEmptyToken
			}

			provider, err := credentials.NewFileProvider()
			if err != nil {
				return err
			}
			if err := provider.SaveCredentials(&credentials.Credentials{AccessToken: token, TokenType: "Bearer"}); err != nil {
				return err
			}

			green := color.New(color.FgGreen).SprintFunc()
			fmt.Fprintf(cmd.OutOrStdout(), "%s credentials saved to %s\n", green("✓"), provider.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "bearer token to store")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}
