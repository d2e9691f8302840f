package card

import (
	"strconv"

	"github.com/matst80/slask-card/pkg/types"
	"github.com/matst80/slask-card/pkg/variant"
)

const DefaultMediaPrefix = "/media/jpg/catalog/product"

type Action string

const (
	ActionPlaceholder Action = "placeholder"
	ActionConfigure   Action = "configure"
	ActionViewDetails Action = "view-details"
	ActionAddToCart   Action = "add-to-cart"
)

type Options struct {
	MediaPrefix  string `json:"media,omitempty" schema:"media"`
	WishlistItem bool   `json:"wishlist,omitempty" schema:"wishlist"`
}

func DefaultOptions() Options {
	return Options{MediaPrefix: DefaultMediaPrefix}
}

type Review struct {
	Rating float64                 `json:"rating"`
	Count  int                     `json:"count"`
	Text   string                  `json:"text"`
	Link   *types.NavigationTarget `json:"link,omitempty"`
}

// Card holds everything a product tile needs to be drawn.
type Card struct {
	Name      string                  `json:"name,omitempty"`
	Brand     string                  `json:"brand,omitempty"`
	IsLoading bool                    `json:"isLoading"`
	Selection types.ResolvedSelection `json:"selection"`
	Image     string                  `json:"image,omitempty"`
	Price     *types.Money            `json:"price,omitempty"`
	Link      *types.NavigationTarget `json:"link,omitempty"`
	Action    Action                  `json:"action"`
	Review    *Review                 `json:"review,omitempty"`

	WishlistReady                 bool `json:"wishlistReady"`
	RemoveFromWishlistOnConfigure bool `json:"removeFromWishlistOnConfigure,omitempty"`
}

func ReviewText(count int) string {
	if count == 1 {
		return "1 review"
	}
	return strconv.Itoa(count) + " reviews"
}

func actionFor(product *types.Product, price *types.Money) Action {
	if price == nil {
		return ActionPlaceholder
	}
	switch product.TypeId {
	case types.ConfigurableProduct:
		return ActionConfigure
	case types.GroupedProduct:
		return ActionViewDetails
	default:
		return ActionAddToCart
	}
}

// Build resolves the active variant for filters and derives the card facts.
func Build(product *types.Product, filters types.Parameters, opts Options) (*Card, error) {
	if product == nil {
		return nil, ErrNoProduct
	}
	selection := variant.ResolveProduct(product, filters)
	facts, err := Extract(product, selection.Index)
	if err != nil {
		return nil, err
	}
	link := BuildLink(product, selection.Parameters)

	c := &Card{
		Name:          product.Name,
		Brand:         product.Brand,
		IsLoading:     !product.IsLinkable(),
		Selection:     selection,
		Price:         facts.Price,
		Link:          link,
		Action:        actionFor(product, facts.Price),
		WishlistReady: facts.Price != nil,
	}
	c.RemoveFromWishlistOnConfigure = opts.WishlistItem && product.IsConfigurable()
	if facts.Thumbnail != "" {
		c.Image = opts.MediaPrefix + facts.Thumbnail
	}
	if count := product.ReviewCount(); count > 0 {
		c.Review = &Review{
			Rating: product.ReviewSummary.RatingSummary,
			Count:  count,
			Text:   ReviewText(count),
			Link:   BuildReviewLink(product, selection.Parameters),
		}
	}
	return c, nil
}
