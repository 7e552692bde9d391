package get_business

import (
	"github.com/google/uuid"

	"github.com/m04kA/barberbook/internal/domain"
	schedulemodels "github.com/m04kA/barberbook/internal/service/schedule/models"
)

// BusinessResponse публичная карточка барбершопа
type BusinessResponse struct {
	ID     uuid.UUID                      `json:"id"`
	Slug   string                         `json:"slug"`
	Name   string                         `json:"name"`
	Config *schedulemodels.ConfigResponse `json:"config"`
}

// FromDomain конвертирует domain модель в DTO
func FromDomain(b *domain.Business) *BusinessResponse {
	return &BusinessResponse{
		ID:     b.ID,
		Slug:   b.Slug,
		Name:   b.Name,
		Config: schedulemodels.FromDomainConfig(b.Config, !b.HasStoredConfig),
	}
}
