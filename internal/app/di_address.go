package app

import (
	"fmt"
	"sync"

	addressHTTP "github.com/Santosha2001/ecommerce/internal/address/http"
	addressRepository "github.com/Santosha2001/ecommerce/internal/address/repository"
	addressUseCase "github.com/Santosha2001/ecommerce/internal/address/usecase"
)

// addressComponents holds the delivery address components.
type addressComponents struct {
	addressRepo    addressUseCase.AddressRepository
	addressUseCase addressUseCase.AddressUseCase
	addressHandler *addressHTTP.AddressHandler

	addressRepoInit    sync.Once
	addressUseCaseInit sync.Once
	addressHandlerInit sync.Once
}

// AddressRepository returns the address repository based on database driver.
func (c *Container) AddressRepository() (addressUseCase.AddressRepository, error) {
	var err error
	c.addressRepoInit.Do(func() {
		c.addressRepo, err = c.initAddressRepository()
		if err != nil {
			c.initErrors["addressRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["addressRepo"]; exists {
		return nil, storedErr
	}
	return c.addressRepo, nil
}

// AddressUseCase returns the address use case instance.
func (c *Container) AddressUseCase() (addressUseCase.AddressUseCase, error) {
	var err error
	c.addressUseCaseInit.Do(func() {
		var repo addressUseCase.AddressRepository
		repo, err = c.AddressRepository()
		if err != nil {
			c.initErrors["addressUseCase"] = err
			return
		}
		c.addressUseCase = addressUseCase.NewAddressUseCase(repo)
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["addressUseCase"]; exists {
		return nil, storedErr
	}
	return c.addressUseCase, nil
}

// AddressHandler returns the address handler instance.
func (c *Container) AddressHandler() (*addressHTTP.AddressHandler, error) {
	var err error
	c.addressHandlerInit.Do(func() {
		var addressUC addressUseCase.AddressUseCase
		addressUC, err = c.AddressUseCase()
		if err != nil {
			c.initErrors["addressHandler"] = err
			return
		}
		c.addressHandler = addressHTTP.NewAddressHandler(addressUC, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["addressHandler"]; exists {
		return nil, storedErr
	}
	return c.addressHandler, nil
}

// initAddressRepository creates the address repository for the configured driver.
func (c *Container) initAddressRepository() (addressUseCase.AddressRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for address repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return addressRepository.NewPostgreSQLAddressRepository(db), nil
	case "mysql":
		return addressRepository.NewMySQLAddressRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}
