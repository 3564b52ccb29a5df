package models

import (
	"time"

	"github.com/m04kA/PT-BookingService/internal/domain"
)

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	SessionsRemaining int       `json:"sessionsRemaining"`
	SessionsExpiresAt *string   `json:"sessionsExpiresAt,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// FromDomainClient конвертирует domain модель в DTO.
// PIN в ответ не попадает никогда.
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}

	return &ClientResponse{
		ID:                c.ID,
		Name:              c.Name,
		SessionsRemaining: c.SessionsRemaining,
		SessionsExpiresAt: c.SessionsExpiresAt,
		CreatedAt:         c.CreatedAt,
	}
}

// FromDomainClientList конвертирует список domain моделей в DTO
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	resp := &ClientListResponse{
		Clients: make([]ClientResponse, 0, len(clients)),
	}

	for _, c := range clients {
		if cr := FromDomainClient(c); cr != nil {
			resp.Clients = append(resp.Clients, *cr)
		}
	}

	return resp
}
