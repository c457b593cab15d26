package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateCreate(t *testing.T) {
	t.Parallel()
	ok := CreateTratativaRequest{Titulo: "X", Descricao: "Y", Prioridade: PrioridadeAlta, Responsavel: "A"}
	require.NoError(t, ValidateCreate(ok))

	cases := map[string]CreateTratativaRequest{
		"missing titulo":   {Descricao: "Y", Prioridade: PrioridadeAlta, Responsavel: "A"},
		"bad prioridade":   {Titulo: "X", Descricao: "Y", Prioridade: "urgente", Responsavel: "A"},
		"missing everyone": {},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			err := ValidateCreate(req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid request")
		})
	}
}

func TestValidateCreate_MessageNamesField(t *testing.T) {
	t.Parallel()
	err := ValidateCreate(CreateTratativaRequest{Titulo: "X", Descricao: "Y", Prioridade: "x", Responsavel: "A"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prioridade: oneof=baixa media alta")
}

func TestValidateUpdate(t *testing.T) {
	t.Parallel()
	require.Error(t, ValidateUpdate(UpdateTratativaRequest{}))

	st := StatusConcluida
	require.NoError(t, ValidateUpdate(UpdateTratativaRequest{Status: &st}))

	bad := Status("arquivada")
	require.Error(t, ValidateUpdate(UpdateTratativaRequest{Status: &bad}))

	require.Error(t, ValidateUpdate(UpdateTratativaRequest{Titulo: strPtr("")}))
	require.NoError(t, ValidateUpdate(UpdateTratativaRequest{Titulo: strPtr("novo")}))
}

func TestValidateID(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateID(1))
	assert.Error(t, ValidateID(0))
	assert.Error(t, ValidateID(-4))
}

func TestEnumsValid(t *testing.T) {
	t.Parallel()
	assert.True(t, StatusEmAndamento.Valid())
	assert.False(t, Status("").Valid())
	assert.True(t, PrioridadeMedia.Valid())
	assert.False(t, Prioridade("urgente").Valid())
}
