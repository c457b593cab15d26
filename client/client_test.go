package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClient_CRUDRoundTrip(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/tratativas", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var req CreateTratativaRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(Tratativa{
				ID: 1, Titulo: req.Titulo, Descricao: req.Descricao, Prioridade: req.Prioridade,
				Responsavel: req.Responsavel, Status: StatusPendente,
				DataCriacao: "2024-05-01T10:00:00Z", DataAtualizacao: "2024-05-01T10:00:00Z",
			})
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode([]Tratativa{{ID: 1, Titulo: "X"}})
		}
	})
	mux.HandleFunc("/tratativas/1", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(Tratativa{ID: 1, Titulo: "X"})
		case http.MethodPatch:
			_ = json.NewEncoder(w).Encode(Tratativa{ID: 1, Titulo: "X", Status: StatusConcluida})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	created, err := c.CreateTratativa(ctx, CreateTratativaRequest{Titulo: "X", Descricao: "Y", Prioridade: PrioridadeAlta, Responsavel: "A"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, StatusPendente, created.Status)
	assert.NotEmpty(t, created.DataCriacao)
	assert.NotEmpty(t, created.DataAtualizacao)

	list, err := c.ListTratativas(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	got, err := c.GetTratativa(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "X", got.Titulo)

	st := StatusConcluida
	upd, err := c.UpdateTratativa(ctx, 1, UpdateTratativaRequest{Status: &st})
	require.NoError(t, err)
	assert.Equal(t, StatusConcluida, upd.Status)

	require.NoError(t, c.DeleteTratativa(ctx, 1))
}

func TestClient_SendsRequestID(t *testing.T) {
	var id string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id = r.Header.Get(RequestIDHeader)
		_, _ = w.Write([]byte(`{"total":1,"pendentes":1,"concluidas":0,"tempoMedio":"0s"}`))
	}))
	_, err := c.GetDashboardStats(context.Background())
	require.NoError(t, err)
	assert.Len(t, id, 36)
}

func TestClient_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Tratativa não encontrada","code":"NOT_FOUND"}`))
	}))
	_, err := c.GetTratativa(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	info, ok := AsErrorInfo(err)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", info.Code)
}

func TestClient_RetryOnServerErrorForReads(t *testing.T) {
	var calls int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode([]Tratativa{})
	}), WithRetry(3), WithRetryBackoff(time.Millisecond, 5*time.Millisecond))

	_, err := c.ListTratativas(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_RetryGivesUpWithLastError(t *testing.T) {
	var calls int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}), WithRetry(2), WithRetryBackoff(time.Millisecond, 2*time.Millisecond))

	_, err := c.GetDashboardStats(context.Background())
	info, ok := AsErrorInfo(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, info.StatusCode)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_NoRetryOnClientError(t *testing.T) {
	var calls int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}), WithRetry(5), WithRetryBackoff(time.Millisecond, 2*time.Millisecond))

	_, err := c.GetTratativa(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_WritesAreNeverRetried(t *testing.T) {
	var calls int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}), WithRetry(5), WithRetryBackoff(time.Millisecond, 2*time.Millisecond))

	err := c.DeleteTratativa(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_NoResponse(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c, err := New("http://example.com", WithHTTPClient(&http.Client{Transport: rt}))
	require.NoError(t, err)
	_, err = c.ListTratativas(context.Background())
	assert.True(t, IsNoResponse(err))
	info, _ := AsErrorInfo(err)
	assert.Equal(t, CodeNoResponse, info.Code)
}

func TestClient_CloseIdempotent(t *testing.T) {
	c, err := New("http://example.com")
	require.NoError(t, err)
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	_, err = c.ListTratativas(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClientClosed)
}

func TestNormalizeError(t *testing.T) {
	assert.Nil(t, NormalizeError(nil))
	info := NormalizeError(assert.AnError)
	assert.Equal(t, CodeUnknown, info.Code)
	assert.Equal(t, assert.AnError.Error(), info.Message)
}
