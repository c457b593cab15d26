package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/DevIBlogistica/frontend-tratativas/client"
	"github.com/DevIBlogistica/frontend-tratativas/internal/config"
	"github.com/DevIBlogistica/frontend-tratativas/internal/logger"
	"github.com/DevIBlogistica/frontend-tratativas/internal/mockapi"
)

var sampleData = []client.CreateTratativaRequest{
	{Titulo: "Atraso na entrega", Descricao: "Pedido 1042 não chegou no prazo", Prioridade: client.PrioridadeAlta, Responsavel: "Ana"},
	{Titulo: "Avaria no transporte", Descricao: "Caixa danificada no recebimento", Prioridade: client.PrioridadeMedia, Responsavel: "Bruno"},
	{Titulo: "Nota fiscal divergente", Descricao: "Valor da NF difere do pedido", Prioridade: client.PrioridadeBaixa, Responsavel: "Carla"},
}

func main() {
	log := logger.New("tratativas-mock")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(cfg.Level())

	addr := flag.String("addr", cfg.MockAddr, "Listen address")
	seed := flag.Bool("seed", false, "Start with sample tratativas")
	flag.Parse()

	var records []client.CreateTratativaRequest
	if *seed {
		records = sampleData
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := mockapi.Serve(ctx, *addr, log, records...); err != nil {
		log.Error().Err(err).Msg("tratativas-mock exited with error")
		os.Exit(1)
	}
}
