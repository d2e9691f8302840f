package server

import (
	"net/url"

	"github.com/gorilla/schema"
	"github.com/matst80/slask-card/pkg/card"
	"github.com/matst80/slask-card/pkg/types"
)

type CardRequest struct {
	Product *types.Product  `json:"product" validate:"required"`
	Filters types.FilterSet `json:"filters" validate:"dive"`
}

type ResolveRequest struct {
	Variants []types.Variant `json:"variants" validate:"dive"`
	Filters  types.FilterSet `json:"filters" validate:"dive"`
}

type LinkRequest struct {
	Product    *types.Product   `json:"product" validate:"required"`
	Parameters types.Parameters `json:"parameters" validate:"dive"`
	Reviews    bool             `json:"reviews"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// CardOptionsFromQuery overrides defaults with the media and wishlist query
// values, e.g. ?wishlist=true&media=https://cdn.example/product
func CardOptionsFromQuery(query url.Values, defaults card.Options) (card.Options, error) {
	opts := defaults
	if err := decoder.Decode(&opts, query); err != nil {
		return defaults, err
	}
	if opts.MediaPrefix == "" {
		opts.MediaPrefix = defaults.MediaPrefix
	}
	return opts, nil
}
