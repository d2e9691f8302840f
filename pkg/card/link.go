package card

import "github.com/matst80/slask-card/pkg/types"

// BuildLink returns the navigation target for the product page with the
// selected parameters as query. Products without url key are not linkable
// and yield nil.
func BuildLink(product *types.Product, parameters types.Parameters) *types.NavigationTarget {
	if product == nil || !product.IsLinkable() {
		return nil
	}
	return &types.NavigationTarget{
		Pathname: types.ProductPathPrefix + product.UrlKey,
		State:    types.NavigationState{Product: product},
		Search:   parameters.Encode(),
	}
}

// BuildReviewLink is BuildLink pointing at the reviews section.
func BuildReviewLink(product *types.Product, parameters types.Parameters) *types.NavigationTarget {
	target := BuildLink(product, parameters)
	if target == nil {
		return nil
	}
	target.Hash = types.ReviewsHash
	return target
}
