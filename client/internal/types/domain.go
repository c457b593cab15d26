package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Status is the workflow state of a tratativa.
type Status string

const (
	StatusPendente    Status = "pendente"
	StatusEmAndamento Status = "em_andamento"
	StatusConcluida   Status = "concluida"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPendente, StatusEmAndamento, StatusConcluida:
		return true
	}
	return false
}

// Prioridade is the priority of a tratativa.
type Prioridade string

const (
	PrioridadeBaixa Prioridade = "baixa"
	PrioridadeMedia Prioridade = "media"
	PrioridadeAlta  Prioridade = "alta"
)

// Valid reports whether p is one of the known priorities.
func (p Prioridade) Valid() bool {
	switch p {
	case PrioridadeBaixa, PrioridadeMedia, PrioridadeAlta:
		return true
	}
	return false
}

// Tratativa represents a task/ticket record. Timestamps are kept as the
// RFC 3339 strings the backend sends.
type Tratativa struct {
	ID              int64      `json:"id"`
	Titulo          string     `json:"titulo"`
	Descricao       string     `json:"descricao"`
	Status          Status     `json:"status"`
	Prioridade      Prioridade `json:"prioridade"`
	DataCriacao     string     `json:"dataCriacao"`
	DataAtualizacao string     `json:"dataAtualizacao"`
	Responsavel     string     `json:"responsavel"`
}

// DashboardStats holds the aggregate counters shown on the dashboard.
type DashboardStats struct {
	Total      int    `json:"total"`
	Pendentes  int    `json:"pendentes"`
	Concluidas int    `json:"concluidas"`
	TempoMedio string `json:"tempoMedio"`
}
