package main

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"mangatrade/internal/config"
	"mangatrade/pkg/logger"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tokenIssuer is the iss claim of every issued API token.
const tokenIssuer = "mangatrade"

// signToken issues an RS256 token whose subject is the owner id.
func signToken(key *rsa.PrivateKey, owner string, ttl time.Duration, now time.Time) (string, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return "", errors.New("subject must not be empty")
	}
	if ttl <= 0 {
		return "", errors.New("ttl must be positive")
	}

	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    tokenIssuer,
		Subject:   owner,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}

// JWTCommand constructs the 'jwt' subcommand that prints a signed API token
// for an owner, using the configured private key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates an API token for the given owner ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(cfg.JWT.PrivateKey))
			if err != nil {
				logger.Fatal(ctx, "could not parse RSA private key", zap.Error(err))
			}

			signed, err := signToken(key, subject, ttl, time.Now())
			if err != nil {
				logger.Fatal(ctx, "could not issue token", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "Owner ID the token acts for, e.g. a Discord user ID")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)") //nolint: mnd
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
