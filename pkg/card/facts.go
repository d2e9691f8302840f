package card

import (
	"errors"
	"fmt"

	"github.com/matst80/slask-card/pkg/types"
)

var (
	ErrNoProduct              = errors.New("no product")
	ErrVariantIndexOutOfRange = errors.New("variant index out of range")
)

// Facts are the values of a product that depend on the active variant.
type Facts struct {
	Thumbnail string         `json:"thumbnail,omitempty"`
	Price     *types.Money   `json:"price,omitempty"`
	Effective *types.Product `json:"-"`
}

// Extract picks the product to present for the variant at index. Only
// configurable products with variants use the index; every other product is
// its own effective product. A nil price means the product is still loading.
func Extract(product *types.Product, index int) (Facts, error) {
	if product == nil {
		return Facts{}, ErrNoProduct
	}
	effective := product
	if product.IsConfigurable() && len(product.Variants) > 0 {
		if index < 0 || index >= len(product.Variants) {
			return Facts{}, fmt.Errorf("%w: %d not in [0,%d)", ErrVariantIndexOutOfRange, index, len(product.Variants))
		}
		if v := product.Variants[index].Product; v != nil {
			effective = v
		}
	}

	thumbnail := effective.ThumbnailPath()
	if thumbnail == "" {
		thumbnail = product.ThumbnailPath()
	}

	return Facts{
		Thumbnail: thumbnail,
		Price:     effective.Price,
		Effective: effective,
	}, nil
}
