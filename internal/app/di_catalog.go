package app

import (
	"fmt"
	"sync"

	catalogHTTP "github.com/Santosha2001/ecommerce/internal/catalog/http"
	catalogRepository "github.com/Santosha2001/ecommerce/internal/catalog/repository"
	catalogUseCase "github.com/Santosha2001/ecommerce/internal/catalog/usecase"
)

// catalogComponents holds the category and product components.
type catalogComponents struct {
	categoryRepo    catalogUseCase.CategoryRepository
	productRepo     catalogUseCase.ProductRepository
	categoryUseCase catalogUseCase.CategoryUseCase
	productUseCase  catalogUseCase.ProductUseCase
	categoryHandler *catalogHTTP.CategoryHandler
	productHandler  *catalogHTTP.ProductHandler

	categoryRepoInit    sync.Once
	productRepoInit     sync.Once
	categoryUseCaseInit sync.Once
	productUseCaseInit  sync.Once
	categoryHandlerInit sync.Once
	productHandlerInit  sync.Once
}

// CategoryRepository returns the category repository based on database driver.
func (c *Container) CategoryRepository() (catalogUseCase.CategoryRepository, error) {
	var err error
	c.categoryRepoInit.Do(func() {
		c.categoryRepo, err = c.initCategoryRepository()
		if err != nil {
			c.initErrors["categoryRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryRepo"]; exists {
		return nil, storedErr
	}
	return c.categoryRepo, nil
}

// ProductRepository returns the product repository based on database driver.
func (c *Container) ProductRepository() (catalogUseCase.ProductRepository, error) {
	var err error
	c.productRepoInit.Do(func() {
		c.productRepo, err = c.initProductRepository()
		if err != nil {
			c.initErrors["productRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productRepo"]; exists {
		return nil, storedErr
	}
	return c.productRepo, nil
}

// CategoryUseCase returns the category use case instance.
func (c *Container) CategoryUseCase() (catalogUseCase.CategoryUseCase, error) {
	var err error
	c.categoryUseCaseInit.Do(func() {
		var repo catalogUseCase.CategoryRepository
		repo, err = c.CategoryRepository()
		if err != nil {
			c.initErrors["categoryUseCase"] = err
			return
		}
		c.categoryUseCase = catalogUseCase.NewCategoryUseCase(repo)
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryUseCase"]; exists {
		return nil, storedErr
	}
	return c.categoryUseCase, nil
}

// ProductUseCase returns the product use case instance.
func (c *Container) ProductUseCase() (catalogUseCase.ProductUseCase, error) {
	var err error
	c.productUseCaseInit.Do(func() {
		c.productUseCase, err = c.initProductUseCase()
		if err != nil {
			c.initErrors["productUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productUseCase"]; exists {
		return nil, storedErr
	}
	return c.productUseCase, nil
}

// CategoryHandler returns the category handler instance.
func (c *Container) CategoryHandler() (*catalogHTTP.CategoryHandler, error) {
	var err error
	c.categoryHandlerInit.Do(func() {
		var categoryUC catalogUseCase.CategoryUseCase
		categoryUC, err = c.CategoryUseCase()
		if err != nil {
			c.initErrors["categoryHandler"] = err
			return
		}
		c.categoryHandler = catalogHTTP.NewCategoryHandler(categoryUC, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryHandler"]; exists {
		return nil, storedErr
	}
	return c.categoryHandler, nil
}

// ProductHandler returns the product handler instance.
func (c *Container) ProductHandler() (*catalogHTTP.ProductHandler, error) {
	var err error
	c.productHandlerInit.Do(func() {
		var productUC catalogUseCase.ProductUseCase
		productUC, err = c.ProductUseCase()
		if err != nil {
			c.initErrors["productHandler"] = err
			return
		}
		c.productHandler = catalogHTTP.NewProductHandler(productUC, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productHandler"]; exists {
		return nil, storedErr
	}
	return c.productHandler, nil
}

// initCategoryRepository creates the category repository for the configured driver.
func (c *Container) initCategoryRepository() (catalogUseCase.CategoryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for category repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return catalogRepository.NewPostgreSQLCategoryRepository(db), nil
	case "mysql":
		return catalogRepository.NewMySQLCategoryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initProductRepository creates the product repository for the configured driver.
func (c *Container) initProductRepository() (catalogUseCase.ProductRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for product repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return catalogRepository.NewPostgreSQLProductRepository(db), nil
	case "mysql":
		return catalogRepository.NewMySQLProductRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initProductUseCase creates the product use case with its dependencies.
func (c *Container) initProductUseCase() (catalogUseCase.ProductUseCase, error) {
	productRepo, err := c.ProductRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get product repository for product use case: %w", err)
	}

	categoryRepo, err := c.CategoryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get category repository for product use case: %w", err)
	}

	mediaStore, err := c.MediaStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get media store for product use case: %w", err)
	}

	return catalogUseCase.NewProductUseCase(productRepo, categoryRepo, mediaStore), nil
}
