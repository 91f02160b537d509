package app

import (
	"fmt"

	transitHTTP "github.com/allisson/cryptobox/internal/transit/http"
	transitRepository "github.com/allisson/cryptobox/internal/transit/repository"
	transitUseCase "github.com/allisson/cryptobox/internal/transit/usecase"
)

// TransitKeyRepository returns the transit key repository instance.
func (c *Container) TransitKeyRepository() (transitUseCase.TransitKeyRepository, error) {
	var err error
	c.transitKeyRepositoryInit.Do(func() {
		c.transitKeyRepository, err = c.initTransitKeyRepository()
		if err != nil {
			c.initErrors["transitKeyRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["transitKeyRepository"]; exists {
		return nil, storedErr
	}
	return c.transitKeyRepository, nil
}

// TransitKeyUseCase returns the transit key use case instance.
func (c *Container) TransitKeyUseCase() (transitUseCase.TransitKeyUseCase, error) {
	var err error
	c.transitKeyUseCaseInit.Do(func() {
		c.transitKeyUseCase, err = c.initTransitKeyUseCase()
		if err != nil {
			c.initErrors["transitKeyUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["transitKeyUseCase"]; exists {
		return nil, storedErr
	}
	return c.transitKeyUseCase, nil
}

// TransitKeyHandler returns the transit key HTTP handler instance.
func (c *Container) TransitKeyHandler() (*transitHTTP.TransitKeyHandler, error) {
	var err error
	c.transitKeyHandlerInit.Do(func() {
		c.transitKeyHandler, err = c.initTransitKeyHandler()
		if err != nil {
			c.initErrors["transitKeyHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["transitKeyHandler"]; exists {
		return nil, storedErr
	}
	return c.transitKeyHandler, nil
}

// CryptoHandler returns the crypto HTTP handler instance.
func (c *Container) CryptoHandler() (*transitHTTP.CryptoHandler, error) {
	var err error
	c.cryptoHandlerInit.Do(func() {
		c.cryptoHandler, err = c.initCryptoHandler()
		if err != nil {
			c.initErrors["cryptoHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cryptoHandler"]; exists {
		return nil, storedErr
	}
	return c.cryptoHandler, nil
}

// initTransitKeyRepository opens the sealed file keystore.
func (c *Container) initTransitKeyRepository() (transitUseCase.TransitKeyRepository, error) {
	keychain, err := c.Keychain()
	if err != nil {
		return nil, fmt.Errorf("failed to get keychain for transit key repository: %w", err)
	}

	repo, err := transitRepository.NewFileTransitKeyRepository(
		c.config.KeystorePath,
		keychain,
		c.AEADManager(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open keystore at %s: %w", c.config.KeystorePath, err)
	}

	return repo, nil
}

// initTransitKeyUseCase creates the transit key use case with all its dependencies.
func (c *Container) initTransitKeyUseCase() (transitUseCase.TransitKeyUseCase, error) {
	repo, err := c.TransitKeyRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get transit key repository for transit key use case: %w", err)
	}

	useCase := transitUseCase.NewTransitKeyUseCase(repo, c.KeyManager(), c.AEADManager())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for transit key use case: %w", err)
		}
		useCase = transitUseCase.NewTransitKeyUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}

// initTransitKeyHandler creates the transit key HTTP handler.
func (c *Container) initTransitKeyHandler() (*transitHTTP.TransitKeyHandler, error) {
	useCase, err := c.TransitKeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get transit key use case for transit key handler: %w", err)
	}

	return transitHTTP.NewTransitKeyHandler(useCase, c.Logger()), nil
}

// initCryptoHandler creates the crypto HTTP handler.
func (c *Container) initCryptoHandler() (*transitHTTP.CryptoHandler, error) {
	useCase, err := c.TransitKeyUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get transit key use case for crypto handler: %w", err)
	}

	return transitHTTP.NewCryptoHandler(useCase, c.Logger()), nil
}
