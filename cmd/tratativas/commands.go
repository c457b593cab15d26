package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/DevIBlogistica/frontend-tratativas/async"
	"github.com/DevIBlogistica/frontend-tratativas/client"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show dashboard statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			pal := a.palette()
			defer follow(a.center, cmd.ErrOrStderr(), pal)()

			state := async.NewState[*client.DashboardStats](nil)
			stats, ok := async.Run(cmd.Context(), state, c.GetDashboardStats, hooks[*client.DashboardStats](a, ""))
			if !ok {
				return failure(state)
			}
			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), stats)
			}
			renderStats(cmd.OutOrStdout(), pal, stats)
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tratativas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			pal := a.palette()
			defer follow(a.center, cmd.ErrOrStderr(), pal)()

			start := time.Now()
			state := async.NewState([]client.Tratativa{})
			list, ok := async.Run(cmd.Context(), state, c.ListTratativas, hooks[[]client.Tratativa](a, ""))
			if !ok {
				return failure(state)
			}
			log.Debug().Int("count", len(list)).Dur("elapsed", elapsedSince(start)).Msg("list tratativas completed")

			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), list)
			}
			renderTratativas(cmd.OutOrStdout(), pal, list)
			return nil
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one tratativa",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			pal := a.palette()
			defer follow(a.center, cmd.ErrOrStderr(), pal)()

			state := async.NewState[*client.Tratativa](nil)
			t, ok := async.Run(cmd.Context(), state, func(ctx context.Context) (*client.Tratativa, error) {
				return c.GetTratativa(ctx, id)
			}, hooks[*client.Tratativa](a, ""))
			if !ok {
				return failure(state)
			}
			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), t)
			}
			renderTratativa(cmd.OutOrStdout(), pal, t)
			return nil
		},
	}
}

func newCreateCmd(a *app) *cobra.Command {
	var req client.CreateTratativaRequest
	var prioridade string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new tratativa",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Prioridade = client.Prioridade(prioridade)
			log.Debug().
				Str("titulo", req.Titulo).
				Str("prioridade", prioridade).
				Str("responsavel", req.Responsavel).
				Str("api_url", a.cfg.APIURL).
				Msg("creating tratativa")

			c, err := a.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			pal := a.palette()
			defer follow(a.center, cmd.ErrOrStderr(), pal)()

			state := async.NewState[*client.Tratativa](nil)
			t, ok := async.Run(cmd.Context(), state, func(ctx context.Context) (*client.Tratativa, error) {
				return c.CreateTratativa(ctx, req)
			}, hooks[*client.Tratativa](a, "Tratativa criada com sucesso"))
			if !ok {
				return failure(state)
			}
			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), t)
			}
			renderTratativa(cmd.OutOrStdout(), pal, t)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Titulo, "titulo", "", "Title (required)")
	cmd.Flags().StringVar(&req.Descricao, "descricao", "", "Description (required)")
	cmd.Flags().StringVar(&prioridade, "prioridade", string(client.PrioridadeMedia), "Priority: baixa|media|alta")
	cmd.Flags().StringVar(&req.Responsavel, "responsavel", "", "Owner (required)")

	_ = cmd.MarkFlagRequired("titulo")
	_ = cmd.MarkFlagRequired("descricao")
	_ = cmd.MarkFlagRequired("responsavel")

	return cmd
}

func newUpdateCmd(a *app) *cobra.Command {
	var titulo, descricao, prioridade, responsavel, status string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a tratativa",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			// Only flags given on the command line are sent.
			var req client.UpdateTratativaRequest
			flags := cmd.Flags()
			if flags.Changed("titulo") {
				req.Titulo = &titulo
			}
			if flags.Changed("descricao") {
				req.Descricao = &descricao
			}
			if flags.Changed("prioridade") {
				p := client.Prioridade(prioridade)
				req.Prioridade = &p
			}
			if flags.Changed("responsavel") {
				req.Responsavel = &responsavel
			}
			if flags.Changed("status") {
				s := client.Status(status)
				req.Status = &s
			}

			c, err := a.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			pal := a.palette()
			defer follow(a.center, cmd.ErrOrStderr(), pal)()

			state := async.NewState[*client.Tratativa](nil)
			t, ok := async.Run(cmd.Context(), state, func(ctx context.Context) (*client.Tratativa, error) {
				return c.UpdateTratativa(ctx, id, req)
			}, hooks[*client.Tratativa](a, "Tratativa atualizada com sucesso"))
			if !ok {
				return failure(state)
			}
			if a.asJSON {
				return printJSON(cmd.OutOrStdout(), t)
			}
			renderTratativa(cmd.OutOrStdout(), pal, t)
			return nil
		},
	}

	cmd.Flags().StringVar(&titulo, "titulo", "", "New title")
	cmd.Flags().StringVar(&descricao, "descricao", "", "New description")
	cmd.Flags().StringVar(&prioridade, "prioridade", "", "New priority: baixa|media|alta")
	cmd.Flags().StringVar(&responsavel, "responsavel", "", "New owner")
	cmd.Flags().StringVar(&status, "status", "", "New status: pendente|em_andamento|concluida")

	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tratativa",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := a.newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			pal := a.palette()
			defer follow(a.center, cmd.ErrOrStderr(), pal)()

			state := async.NewState(false)
			_, ok := async.Run(cmd.Context(), state, func(ctx context.Context) (bool, error) {
				return true, c.DeleteTratativa(ctx, id)
			}, hooks[bool](a, "Tratativa excluída com sucesso"))
			if !ok {
				return failure(state)
			}
			return nil
		},
	}
}
