package app

import (
	"fmt"
	"sync"

	orderHTTP "github.com/Santosha2001/ecommerce/internal/order/http"
	orderRepository "github.com/Santosha2001/ecommerce/internal/order/repository"
	orderUseCase "github.com/Santosha2001/ecommerce/internal/order/usecase"
)

// orderComponents holds the order components.
type orderComponents struct {
	orderRepo    orderUseCase.OrderRepository
	orderUseCase orderUseCase.OrderUseCase
	orderHandler *orderHTTP.OrderHandler

	orderRepoInit    sync.Once
	orderUseCaseInit sync.Once
	orderHandlerInit sync.Once
}

// OrderRepository returns the order repository based on database driver.
func (c *Container) OrderRepository() (orderUseCase.OrderRepository, error) {
	var err error
	c.orderRepoInit.Do(func() {
		c.orderRepo, err = c.initOrderRepository()
		if err != nil {
			c.initErrors["orderRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["orderRepo"]; exists {
		return nil, storedErr
	}
	return c.orderRepo, nil
}

// OrderUseCase returns the order use case instance.
func (c *Container) OrderUseCase() (orderUseCase.OrderUseCase, error) {
	var err error
	c.orderUseCaseInit.Do(func() {
		c.orderUseCase, err = c.initOrderUseCase()
		if err != nil {
			c.initErrors["orderUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["orderUseCase"]; exists {
		return nil, storedErr
	}
	return c.orderUseCase, nil
}

// OrderHandler returns the order handler instance.
func (c *Container) OrderHandler() (*orderHTTP.OrderHandler, error) {
	var err error
	c.orderHandlerInit.Do(func() {
		var orderUC orderUseCase.OrderUseCase
		orderUC, err = c.OrderUseCase()
		if err != nil {
			c.initErrors["orderHandler"] = err
			return
		}
		c.orderHandler = orderHTTP.NewOrderHandler(orderUC, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["orderHandler"]; exists {
		return nil, storedErr
	}
	return c.orderHandler, nil
}

// initOrderRepository creates the order repository for the configured driver.
func (c *Container) initOrderRepository() (orderUseCase.OrderRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for order repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return orderRepository.NewPostgreSQLOrderRepository(db), nil
	case "mysql":
		return orderRepository.NewMySQLOrderRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initOrderUseCase creates the order use case with its dependencies.
func (c *Container) initOrderUseCase() (orderUseCase.OrderUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for order use case: %w", err)
	}

	orderRepo, err := c.OrderRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get order repository for order use case: %w", err)
	}

	productRepo, err := c.ProductRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get product repository for order use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for order use case: %w", err)
	}

	return orderUseCase.NewOrderUseCase(txManager, orderRepo, productRepo, businessMetrics), nil
}
