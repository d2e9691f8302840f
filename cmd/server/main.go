package main

import (
	"context"
	"log"
	"net/http"

	"github.com/matst80/slask-card/pkg/common"
	"github.com/matst80/slask-card/pkg/config"
	"github.com/matst80/slask-card/pkg/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	mux := http.NewServeMux()
	server.NewCardServer(cfg.Card.CardOptions(), cfg.Server.MaxBodyBytes).Handle(mux)

	srv := common.NewServerWithTimeouts(&http.Server{Addr: cfg.Server.Addr, Handler: mux}, cfg.Server.Timeouts())
	if err := common.RunServerWithShutdown(context.Background(), srv, "card server", cfg.Server.Timeouts()); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
}
