package commands

import (
	"fmt"
	"io"

	authService "github.com/allisson/cryptobox/internal/auth/service"
)

// RunHashToken produces the AUTH_TOKEN_HASH value for bearer authentication.
// With an empty plainToken a new random token is generated and printed once;
// otherwise the provided token is hashed. Only the hash is stored server-side.
func RunHashToken(tokens authService.TokenService, w io.Writer, plainToken string) error {
	var hashedToken string
	var err error

	if plainToken == "" {
		plainToken, hashedToken, err = tokens.GenerateToken()
		if err != nil {
			return fmt.Errorf("failed to generate token: %w", err)
		}

		fmt.Fprintln(w, "# Store the token securely - it is shown only once")
		fmt.Fprintf(w, "TOKEN=\"%s\"\n", plainToken)
	} else {
		hashedToken, err = tokens.HashToken(plainToken)
		if err != nil {
			return fmt.Errorf("failed to hash token: %w", err)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "# Server configuration")
	fmt.Fprintln(w, "AUTH_ENABLED=\"true\"")
	fmt.Fprintf(w, "AUTH_TOKEN_HASH=\"%s\"\n", hashedToken)

	return nil
}
