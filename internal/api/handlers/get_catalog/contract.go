package get_catalog

import (
	"context"

	"github.com/m04kA/SMC-FacilityBooking/internal/service/catalog/models"
)

type CatalogService interface {
	Get(ctx context.Context) (*models.CatalogResponse, error)
	GetResource(ctx context.Context, name string) (*models.ResourceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
