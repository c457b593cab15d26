package mockapi

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/DevIBlogistica/frontend-tratativas/client"
)

// ErrNotFound is returned for unknown record ids.
var ErrNotFound = errors.New("tratativa not found")

// Store is an in-memory tratativa table. Ids start at 1 and are never
// reused.
type Store struct {
	mu    sync.RWMutex
	next  int64
	items map[int64]client.Tratativa
	now   func() time.Time
}

// NewStore returns an empty Store. now defaults to time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{items: make(map[int64]client.Tratativa), now: now}
}

func (s *Store) stamp() string { return s.now().UTC().Format(time.RFC3339) }

// Create inserts a new record with status pendente and both timestamps set.
func (s *Store) Create(req client.CreateTratativaRequest) client.Tratativa {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	ts := s.stamp()
	t := client.Tratativa{
		ID:              s.next,
		Titulo:          req.Titulo,
		Descricao:       req.Descricao,
		Status:          client.StatusPendente,
		Prioridade:      req.Prioridade,
		DataCriacao:     ts,
		DataAtualizacao: ts,
		Responsavel:     req.Responsavel,
	}
	s.items[t.ID] = t
	return t
}

// List returns all records ordered by id.
func (s *Store) List() []client.Tratativa {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]client.Tratativa, 0, len(s.items))
	for _, t := range s.items {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Get(id int64) (client.Tratativa, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.items[id]
	if !ok {
		return client.Tratativa{}, ErrNotFound
	}
	return t, nil
}

// Update applies the non-nil fields of req and refreshes dataAtualizacao.
func (s *Store) Update(id int64, req client.UpdateTratativaRequest) (client.Tratativa, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.items[id]
	if !ok {
		return client.Tratativa{}, ErrNotFound
	}
	if req.Titulo != nil {
		t.Titulo = *req.Titulo
	}
	if req.Descricao != nil {
		t.Descricao = *req.Descricao
	}
	if req.Prioridade != nil {
		t.Prioridade = *req.Prioridade
	}
	if req.Responsavel != nil {
		t.Responsavel = *req.Responsavel
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	t.DataAtualizacao = s.stamp()
	s.items[id] = t
	return t, nil
}

func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

// Stats counts records by status. TempoMedio is the mean time between
// creation and last update of concluded records.
func (s *Store) Stats() client.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var st client.DashboardStats
	var total time.Duration
	for _, t := range s.items {
		st.Total++
		switch t.Status {
		case client.StatusPendente:
			st.Pendentes++
		case client.StatusConcluida:
			st.Concluidas++
			created, err1 := time.Parse(time.RFC3339, t.DataCriacao)
			updated, err2 := time.Parse(time.RFC3339, t.DataAtualizacao)
			if err1 == nil && err2 == nil && updated.After(created) {
				total += updated.Sub(created)
			}
		}
	}
	var mean time.Duration
	if st.Concluidas > 0 {
		mean = total / time.Duration(st.Concluidas)
	}
	st.TempoMedio = formatDuration(mean)
	return st
}

// formatDuration renders d as hours and minutes, e.g. "2h30m".
func formatDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	return fmt.Sprintf("%dh%dm", h, m)
}
