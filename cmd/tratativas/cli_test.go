package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevIBlogistica/frontend-tratativas/client"
	"github.com/DevIBlogistica/frontend-tratativas/internal/mockapi"
	"github.com/DevIBlogistica/frontend-tratativas/notify"
	"github.com/DevIBlogistica/frontend-tratativas/theme"
)

type harness struct {
	t      *testing.T
	url    string
	app    *app
	system *theme.StaticSource
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	srv := httptest.NewServer(mockapi.NewRouter(mockapi.NewStore(nil)))
	t.Cleanup(srv.Close)
	t.Setenv("TRATATIVAS_THEME_FILE", filepath.Join(t.TempDir(), "preferences.yaml"))

	h := &harness{t: t, url: srv.URL, system: theme.NewStaticSource(true)}
	h.app = &app{
		center: notify.New(notify.WithAfterFunc(func(_ time.Duration, _ func()) {})),
		system: func() theme.SystemSource { return h.system },
	}
	return h
}

// run executes one command line and returns stdout, stderr and the error.
func (h *harness) run(args ...string) (string, string, error) {
	h.t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(h.app)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--api-url", h.url}, args...))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestCLI_TratativaLifecycle(t *testing.T) {
	h := newHarness(t)

	out, stderr, err := h.run("create", "--titulo", "X", "--descricao", "Y", "--prioridade", "alta", "--responsavel", "A", "--json")
	require.NoError(t, err)
	var created client.Tratativa
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, client.StatusPendente, created.Status)
	assert.Contains(t, stderr, "[success] Tratativa criada com sucesso")

	out, _, err = h.run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "TITULO")
	assert.Contains(t, out, "pendente")

	_, stderr, err = h.run("update", "1", "--status", "concluida")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Tratativa atualizada com sucesso")

	out, _, err = h.run("get", "1", "--json")
	require.NoError(t, err)
	var got client.Tratativa
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, client.StatusConcluida, got.Status)
	assert.Equal(t, "X", got.Titulo)

	out, _, err = h.run("dashboard", "--json")
	require.NoError(t, err)
	var stats client.DashboardStats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Concluidas)

	_, stderr, err = h.run("delete", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Tratativa excluída com sucesso")

	_, stderr, err = h.run("get", "1")
	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))
	assert.Contains(t, stderr, "[error] Tratativa não encontrada")
}

func TestCLI_NotificationsAreNotRepeated(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.run("create", "--titulo", "X", "--descricao", "Y", "--responsavel", "A")
	require.NoError(t, err)

	_, stderr, err := h.run("list")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "criada")
	assert.Len(t, h.app.center.Notifications(), 1)
}

func TestCLI_ValidationFailsBeforeDispatch(t *testing.T) {
	h := newHarness(t)
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits++ }))
	defer srv.Close()
	h.url = srv.URL

	_, stderr, err := h.run("create", "--titulo", "X", "--descricao", "Y", "--prioridade", "urgente", "--responsavel", "A")
	require.Error(t, err)
	info, ok := client.AsErrorInfo(err)
	require.True(t, ok)
	assert.Equal(t, client.CodeValidation, info.Code)
	assert.Contains(t, stderr, "[error]")
	assert.Zero(t, hits)
}

func TestCLI_ServerDown(t *testing.T) {
	h := newHarness(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	h.url = srv.URL
	srv.Close()

	_, stderr, err := h.run("list")
	require.Error(t, err)
	assert.True(t, client.IsNoResponse(err))
	assert.Contains(t, stderr, "Servidor não respondeu à requisição")
}

func TestCLI_InvalidID(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.run("get", "abc")
	assert.Error(t, err)
	_, _, err = h.run("delete", "0")
	assert.Error(t, err)
}

func TestCLI_Theme(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run("theme", "show", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"light","system":"dark"}`, out)

	out, stderr, err := h.run("theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)
	assert.Contains(t, stderr, "[info] Tema alterado para dark")

	out, _, err = h.run("theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	_, _, err = h.run("theme", "set", "dark")
	require.NoError(t, err)
	out, _, err = h.run("theme", "show", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark","system":"dark"}`, out)

	_, _, err = h.run("theme", "set", "sepia")
	assert.Error(t, err)
}

func TestCLI_DebugFlagLeavesEnvironmentAlone(t *testing.T) {
	h := newHarness(t)
	t.Setenv("TRATATIVAS_DEBUG", "")
	require.NoError(t, os.Unsetenv("TRATATIVAS_DEBUG"))

	_, _, err := h.run("--debug", "theme", "show", "--json")
	require.NoError(t, err)
	assert.True(t, h.app.cfg.Debug)

	_, set := os.LookupEnv("TRATATIVAS_DEBUG")
	assert.False(t, set)
}
