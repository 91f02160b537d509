package app

import (
	"fmt"

	cryptoDomain "github.com/allisson/cryptobox/internal/crypto/domain"
	cryptoService "github.com/allisson/cryptobox/internal/crypto/service"
)

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManagerService()
	})
	return c.aeadManager
}

// KeyManager returns the key manager service.
func (c *Container) KeyManager() cryptoService.KeyManager {
	c.keyManagerInit.Do(func() {
		c.keyManager = cryptoService.NewKeyManagerService()
	})
	return c.keyManager
}

// Sealer returns the sealer service backed by the active keychain key.
func (c *Container) Sealer() (cryptoService.Sealer, error) {
	var err error
	c.sealerInit.Do(func() {
		c.sealer, err = c.initSealer()
		if err != nil {
			c.initErrors["sealer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sealer"]; exists {
		return nil, storedErr
	}
	return c.sealer, nil
}

// initSealer creates the sealer from the active keychain key and configuration.
func (c *Container) initSealer() (cryptoService.Sealer, error) {
	keychain, err := c.Keychain()
	if err != nil {
		return nil, fmt.Errorf("failed to get keychain for sealer: %w", err)
	}

	activeKey, ok := keychain.Active()
	if !ok {
		return nil, fmt.Errorf("no active key in keychain")
	}

	alg, err := cryptoDomain.ParseAlgorithm(c.config.SealerAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("invalid sealer algorithm %q: %w", c.config.SealerAlgorithm, err)
	}

	enc, err := cryptoDomain.ParseEncoding(c.config.SealerEncoding)
	if err != nil {
		return nil, fmt.Errorf("invalid sealer encoding %q: %w", c.config.SealerEncoding, err)
	}

	sealer, err := cryptoService.NewSealerService(activeKey.Key, alg, enc)
	if err != nil {
		return nil, fmt.Errorf("failed to create sealer: %w", err)
	}

	return sealer, nil
}
