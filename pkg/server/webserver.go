package server

import (
	"net/http"

	"github.com/matst80/slask-card/pkg/card"
	"github.com/matst80/slask-card/pkg/common"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultMaxBodyBytes = 1 << 20

// CardServer answers card and variant resolution requests over http.
type CardServer struct {
	Options      card.Options
	MaxBodyBytes int64
}

func NewCardServer(opts card.Options, maxBodyBytes int64) *CardServer {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &CardServer{
		Options:      opts,
		MaxBodyBytes: maxBodyBytes,
	}
}

func (ws *CardServer) Handle(mux *http.ServeMux) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("/api/card", common.JsonHandler(ws.Card))
	mux.HandleFunc("/api/resolve", common.JsonHandler(ws.Resolve))
	mux.HandleFunc("/api/link", common.JsonHandler(ws.Link))
}
