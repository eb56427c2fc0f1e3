package providers

import (
	"github.com/samber/do/v2"

	"github.com/editoria/editoria-server/internal/config"
	"github.com/editoria/editoria-server/internal/content"
	"github.com/editoria/editoria-server/internal/logger"
	"github.com/editoria/editoria-server/internal/store"
)

// StoreHandle wraps the blob store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the taxonomy blob store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	dbPath := cfg.TaxonomyDBPath()
	db, err := store.New(dbPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Taxonomy store initialized", "path", dbPath)
	return &StoreHandle{Store: db}, nil
}

// ContentSourceHandle wraps the content database with shutdown capability.
type ContentSourceHandle struct {
	*content.SQLiteSource
}

// Shutdown implements do.Shutdownable.
func (h *ContentSourceHandle) Shutdown() error {
	return h.Close()
}

// ProvideContentSource provides the read-only content universe.
func ProvideContentSource(i do.Injector) (*ContentSourceHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	src, err := content.Open(cfg.Data.ContentDBPath, log.Logger)
	if err != nil {
		return nil, err
	}

	log.Info("Content database opened", "path", cfg.Data.ContentDBPath)
	return &ContentSourceHandle{SQLiteSource: src}, nil
}
