package catalog

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
	"github.com/m04kA/SMC-FacilityBooking/internal/service/catalog/models"
)

// Service отдает неизменяемый каталог ресурсов клиентам API
type Service struct {
	catalog *domain.Catalog
	logger  Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalog *domain.Catalog, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// Get возвращает каталог целиком
func (s *Service) Get(_ context.Context) (*models.CatalogResponse, error) {
	return models.FromDomainCatalog(s.catalog), nil
}

// GetResource возвращает описание одного ресурса; принимает "hvc"
func (s *Service) GetResource(_ context.Context, name string) (*models.ResourceResponse, error) {
	kind, ok := domain.ParseResourceKind(name)
	if !ok {
		s.logger.Warn("GetResource: unknown resource %q", name)
		return nil, ErrResourceNotFound
	}
	r, ok := s.catalog.Resource(kind)
	if !ok {
		return nil, ErrResourceNotFound
	}

	resp := models.FromDomainResource(r)
	return &resp, nil
}
