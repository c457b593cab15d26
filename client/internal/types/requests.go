package types

// ------------------------------
// Request Types
// ------------------------------

// CreateTratativaRequest holds parameters for a new tratativa.
type CreateTratativaRequest struct {
	Titulo      string     `json:"titulo" validate:"required"`
	Descricao   string     `json:"descricao" validate:"required"`
	Prioridade  Prioridade `json:"prioridade" validate:"required,oneof=baixa media alta"`
	Responsavel string     `json:"responsavel" validate:"required"`
}

// UpdateTratativaRequest holds a partial update. Nil fields are left
// untouched by the backend and are not serialized.
type UpdateTratativaRequest struct {
	Titulo      *string     `json:"titulo,omitempty" validate:"omitnil,min=1"`
	Descricao   *string     `json:"descricao,omitempty" validate:"omitnil,min=1"`
	Prioridade  *Prioridade `json:"prioridade,omitempty" validate:"omitnil,oneof=baixa media alta"`
	Responsavel *string     `json:"responsavel,omitempty" validate:"omitnil,min=1"`
	Status      *Status     `json:"status,omitempty" validate:"omitnil,oneof=pendente em_andamento concluida"`
}

// Empty reports whether the update carries no fields.
func (r UpdateTratativaRequest) Empty() bool {
	return r.Titulo == nil && r.Descricao == nil && r.Prioridade == nil &&
		r.Responsavel == nil && r.Status == nil
}
