package service

import (
	"github.com/tillcore/tillcore/internal/config"
	"github.com/tillcore/tillcore/internal/domain/product"
	"github.com/tillcore/tillcore/internal/domain/scheme"
	"github.com/tillcore/tillcore/internal/logger"
)

// ServiceParams holds common dependencies for services.
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration

	// Reference-data ports, read strictly before the engine is exercised.
	ProductRepo product.Repository
	SchemeRepo  scheme.Repository
}
