// Package di provides dependency injection configuration for the Editoria server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/editoria/editoria-server/internal/di/providers"
	"github.com/editoria/editoria-server/internal/taxonomy"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Storage layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideContentSource)

	// Business services
	do.Provide(injector, providers.ProvideTaxonomyService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.ContentSourceHandle](injector)
	_ = do.MustInvoke[*taxonomy.Service](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)
	return nil
}
