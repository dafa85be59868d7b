package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bookcatalog/internal/platform/crypto"
)

func newTokenCommand(ctx *commandContext) *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for PATCH /books/update-all-with-year",
		RunE: func(cmd *cobra.Command, args []string) error {
			if ctx.cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET is not set")
			}
			token, err := crypto.GenerateToken(ctx.cfg.JWTSecret, subject, role, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "operator", "Token subject")
	cmd.Flags().StringVar(&role, "role", crypto.RoleAdmin, "Role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	return cmd
}
