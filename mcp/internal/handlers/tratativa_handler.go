package handlers

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/DevIBlogistica/frontend-tratativas/client"
)

// TratativaHandler exposes CRUD tools over tratativas.
type TratativaHandler struct {
	client *client.Client
}

func NewTratativaHandler(c *client.Client) *TratativaHandler { return &TratativaHandler{client: c} }

func (th *TratativaHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_tratativas",
		mcp.WithDescription("List every tratativa"),
	)
	get := mcp.NewTool("get_tratativa",
		mcp.WithDescription("Fetch one tratativa by id"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Tratativa id")),
	)
	create := mcp.NewTool("create_tratativa",
		mcp.WithDescription("Create a tratativa; the server assigns id, status and timestamps"),
		mcp.WithString("titulo", mcp.Required(), mcp.Description("Title")),
		mcp.WithString("descricao", mcp.Required(), mcp.Description("Description")),
		mcp.WithString("prioridade", mcp.Required(), mcp.Description("Priority"), mcp.Enum("baixa", "media", "alta")),
		mcp.WithString("responsavel", mcp.Required(), mcp.Description("Owner")),
	)
	update := mcp.NewTool("update_tratativa",
		mcp.WithDescription("Update some fields of a tratativa; omitted fields are left unchanged"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Tratativa id")),
		mcp.WithString("titulo", mcp.Description("New title")),
		mcp.WithString("descricao", mcp.Description("New description")),
		mcp.WithString("prioridade", mcp.Description("New priority"), mcp.Enum("baixa", "media", "alta")),
		mcp.WithString("responsavel", mcp.Description("New owner")),
		mcp.WithString("status", mcp.Description("New status"), mcp.Enum("pendente", "em_andamento", "concluida")),
	)
	del := mcp.NewTool("delete_tratativa",
		mcp.WithDescription("Delete a tratativa by id"),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Tratativa id")),
	)

	s.AddTool(list, th.handleList)
	s.AddTool(get, th.handleGet)
	s.AddTool(create, th.handleCreate)
	s.AddTool(update, th.handleUpdate)
	s.AddTool(del, th.handleDelete)
	return nil
}

func (th *TratativaHandler) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Debug().Msg("list_tratativas invoked")

	start := time.Now()
	list, err := th.client.ListTratativas(ctx)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("list_tratativas failed")
		return errorResult("list tratativas", err), nil
	}
	return jsonResult(list)
}

func (th *TratativaHandler) handleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := argID(req, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Debug().Int64("id", id).Msg("get_tratativa invoked")

	start := time.Now()
	t, err := th.client.GetTratativa(ctx, id)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Dur("elapsed", elapsed).Msg("get_tratativa failed")
		return errorResult("get tratativa", err), nil
	}
	return jsonResult(t)
}

func (th *TratativaHandler) handleCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args [4]string
	for i, key := range []string{"titulo", "descricao", "prioridade", "responsavel"} {
		v, err := req.RequireString(key)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		args[i] = v
	}
	titulo, descricao, prioridade, responsavel := args[0], args[1], args[2], args[3]

	log.Debug().Str("titulo", titulo).Str("prioridade", prioridade).Msg("create_tratativa invoked")

	start := time.Now()
	t, err := th.client.CreateTratativa(ctx, client.CreateTratativaRequest{
		Titulo:      titulo,
		Descricao:   descricao,
		Prioridade:  client.Prioridade(prioridade),
		Responsavel: responsavel,
	})
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("create_tratativa failed")
		return errorResult("create tratativa", err), nil
	}
	return jsonResult(t)
}

func (th *TratativaHandler) handleUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := argID(req, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var upd client.UpdateTratativaRequest
	upd.Titulo, _ = optString(req, "titulo")
	upd.Descricao, _ = optString(req, "descricao")
	upd.Responsavel, _ = optString(req, "responsavel")
	if p, ok := optString(req, "prioridade"); ok {
		v := client.Prioridade(*p)
		upd.Prioridade = &v
	}
	if s, ok := optString(req, "status"); ok {
		v := client.Status(*s)
		upd.Status = &v
	}

	log.Debug().Int64("id", id).Msg("update_tratativa invoked")

	start := time.Now()
	t, err := th.client.UpdateTratativa(ctx, id, upd)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Dur("elapsed", elapsed).Msg("update_tratativa failed")
		return errorResult("update tratativa", err), nil
	}
	return jsonResult(t)
}

func (th *TratativaHandler) handleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := argID(req, "id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	log.Debug().Int64("id", id).Msg("delete_tratativa invoked")

	start := time.Now()
	err = th.client.DeleteTratativa(ctx, id)
	elapsed := time.Since(start)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Dur("elapsed", elapsed).Msg("delete_tratativa failed")
		return errorResult("delete tratativa", err), nil
	}
	return jsonResult(map[string]any{"id": id, "deleted": true})
}
