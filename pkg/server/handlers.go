package server

import (
	"fmt"
	"net/http"

	"github.com/matst80/slask-card/pkg/card"
	"github.com/matst80/slask-card/pkg/common"
	"github.com/matst80/slask-card/pkg/types"
	"github.com/matst80/slask-card/pkg/variant"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noCards = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskcard_cards_total",
		Help: "The total number of built product cards",
	})
	noSelections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slaskcard_variant_selections_total",
		Help: "Variant selections by outcome (override or default)",
	}, []string{"outcome"})
	noNotLinkable = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskcard_not_linkable_total",
		Help: "Products without url key that could not be linked",
	})
	noIncompletePrice = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slaskcard_incomplete_price_total",
		Help: "Cards built for products without a resolvable price",
	})
)

func trackSelection(sel types.ResolvedSelection) {
	if len(sel.Parameters) > 0 {
		noSelections.WithLabelValues("override").Inc()
	} else {
		noSelections.WithLabelValues("default").Inc()
	}
}

func (ws *CardServer) decode(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Method != http.MethodPost {
		return &common.HttpError{Status: http.StatusMethodNotAllowed, Err: fmt.Errorf("method %s not allowed", r.Method)}
	}
	if err := common.DecodeJsonBody(w, r, ws.MaxBodyBytes, v); err != nil {
		return err
	}
	if err := types.Validate(v); err != nil {
		return common.BadRequest(err)
	}
	return nil
}

func (ws *CardServer) Card(w http.ResponseWriter, r *http.Request, requestId string) (any, error) {
	req := CardRequest{}
	if err := ws.decode(w, r, &req); err != nil {
		return nil, err
	}
	opts, err := CardOptionsFromQuery(r.URL.Query(), ws.Options)
	if err != nil {
		return nil, common.BadRequest(err)
	}
	c, err := card.Build(req.Product, req.Filters, opts)
	if err != nil {
		return nil, common.BadRequest(err)
	}
	noCards.Inc()
	trackSelection(c.Selection)
	if c.Link == nil {
		noNotLinkable.Inc()
	}
	if c.Price == nil {
		noIncompletePrice.Inc()
	}
	return c, nil
}

func (ws *CardServer) Resolve(w http.ResponseWriter, r *http.Request, requestId string) (any, error) {
	req := ResolveRequest{}
	if err := ws.decode(w, r, &req); err != nil {
		return nil, err
	}
	sel := variant.Resolve(req.Variants, req.Filters)
	trackSelection(sel)
	return sel, nil
}

// Link answers 204 for products that cannot be linked.
func (ws *CardServer) Link(w http.ResponseWriter, r *http.Request, requestId string) (any, error) {
	req := LinkRequest{}
	if err := ws.decode(w, r, &req); err != nil {
		return nil, err
	}
	var target *types.NavigationTarget
	if req.Reviews {
		target = card.BuildReviewLink(req.Product, req.Parameters)
	} else {
		target = card.BuildLink(req.Product, req.Parameters)
	}
	if target == nil {
		noNotLinkable.Inc()
		return nil, nil
	}
	return target, nil
}
