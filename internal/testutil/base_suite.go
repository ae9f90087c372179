package testutil

import (
	"context"

	"github.com/stretchr/testify/suite"
	"github.com/tillcore/tillcore/internal/config"
	"github.com/tillcore/tillcore/internal/logger"
	"github.com/tillcore/tillcore/internal/types"
)

// Stores holds the in-memory repository implementations for a test run.
type Stores struct {
	ProductStore *InMemoryProductStore
	SchemeStore  *InMemorySchemeStore
	InvoiceStore *InMemoryInvoiceStore
}

// BaseServiceTestSuite provides common setup for service tests: logger,
// config and fresh in-memory stores per test.
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	cfg    *config.Configuration
	logger *logger.Logger
	stores Stores
}

// SetupTest prepares fresh state before each test.
func (s *BaseServiceTestSuite) SetupTest() {
	ctx := types.SetRequestID(context.Background(), types.GenerateUUID())
	s.ctx = types.SetUserID(ctx, types.GenerateUUID())
	s.cfg = config.GetDefaultConfig()
	s.logger = logger.GetLogger()
	s.stores = Stores{
		ProductStore: NewInMemoryProductStore(),
		SchemeStore:  NewInMemorySchemeStore(),
		InvoiceStore: NewInMemoryInvoiceStore(),
	}
}

// TearDownTest cleans up after each test.
func (s *BaseServiceTestSuite) TearDownTest() {
	s.stores.ProductStore.Clear()
	s.stores.SchemeStore.Clear()
	s.stores.InvoiceStore.Clear()
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.cfg
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}
