package providers

import (
	"github.com/samber/do/v2"

	"github.com/editoria/editoria-server/internal/config"
	"github.com/editoria/editoria-server/internal/logger"
	"github.com/editoria/editoria-server/internal/taxonomy"
)

// ProvideTaxonomyService provides the taxonomy core.
func ProvideTaxonomyService(i do.Injector) (*taxonomy.Service, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	sourceHandle := do.MustInvoke[*ContentSourceHandle](i)

	svc := taxonomy.New(storeHandle.Store, sourceHandle.SQLiteSource, cfg.Search.CacheTTL, log.Logger)
	return svc, nil
}
