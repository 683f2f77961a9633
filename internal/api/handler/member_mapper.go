package handler

import (
	"github.com/kosaboard/board-api/internal/core/domain"
)

// toMemberResponse projects a persisted member onto the wire shape.
// Pure function; keeps the JSON contract decoupled from the domain record.
func toMemberResponse(m *domain.Member) memberResponse {
	return memberResponse{
		ID:        m.ID,
		Username:  m.Username,
		Name:      m.Name,
		Role:      string(m.Role),
		CreatedAt: m.CreatedAt,
	}
}
