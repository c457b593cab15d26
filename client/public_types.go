package client

import "github.com/DevIBlogistica/frontend-tratativas/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
// Requests
type (
	CreateTratativaRequest = types.CreateTratativaRequest
	UpdateTratativaRequest = types.UpdateTratativaRequest

	// Domain entities
	Tratativa      = types.Tratativa
	DashboardStats = types.DashboardStats
	Status         = types.Status
	Prioridade     = types.Prioridade
)

const (
	StatusPendente    = types.StatusPendente
	StatusEmAndamento = types.StatusEmAndamento
	StatusConcluida   = types.StatusConcluida

	PrioridadeBaixa = types.PrioridadeBaixa
	PrioridadeMedia = types.PrioridadeMedia
	PrioridadeAlta  = types.PrioridadeAlta
)
