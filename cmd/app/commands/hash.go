package commands

import (
	"fmt"
	"io"

	hashDomain "github.com/allisson/cryptobox/internal/hash/domain"
	hashService "github.com/allisson/cryptobox/internal/hash/service"
)

// RunHash digests a value with the selected algorithm, optionally salted and
// repeated, and prints the lowercase hex result.
func RunHash(w io.Writer, algorithmStr, value, salt string, repeats int) error {
	alg, err := hashDomain.ParseDigestAlgorithm(algorithmStr)
	if err != nil {
		return fmt.Errorf(
			"invalid digest algorithm: %s (valid options: sha224, sha256, sha384, sha512)",
			algorithmStr,
		)
	}

	var digester hashService.Digester
	digester, err = hashService.NewDigesterService(alg)
	if err != nil {
		return fmt.Errorf("failed to create digester: %w", err)
	}

	if salt != "" {
		digester, err = hashService.NewSaltingDigester(digester, []byte(salt))
		if err != nil {
			return fmt.Errorf("failed to apply salt: %w", err)
		}
	}

	if repeats > 1 {
		digester, err = hashService.NewRepeatingDigester(digester, repeats)
		if err != nil {
			return fmt.Errorf("failed to apply repeats: %w", err)
		}
	}

	digest, err := digester.HashString(value)
	if err != nil {
		return fmt.Errorf("failed to hash value: %w", err)
	}

	fmt.Fprintln(w, digest)
	return nil
}
