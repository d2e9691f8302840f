package variant

import "github.com/matst80/slask-card/pkg/types"

// Matches reports whether v is consistent with every filter. A variant that
// does not carry a filtered attribute at all is still consistent with it.
func Matches(v *types.Variant, filters types.Parameters) bool {
	for _, filter := range filters {
		value, ok := v.Parameters.Get(filter.Key)
		if ok && value != filter.Value {
			return false
		}
	}
	return true
}

// Lookup returns the index of the first variant matching filters.
func Lookup(variants []types.Variant, filters types.Parameters) (int, bool) {
	for i := range variants {
		if Matches(&variants[i], filters) {
			return i, true
		}
	}
	return 0, false
}

// Resolve picks the active variant for the selected filters. Without
// variants, without filters or without a matching variant the base product
// (index 0, no parameters) is selected.
func Resolve(variants []types.Variant, filters types.Parameters) types.ResolvedSelection {
	if len(variants) == 0 || len(filters) == 0 {
		return types.DefaultSelection()
	}
	idx, ok := Lookup(variants, filters)
	if !ok {
		return types.DefaultSelection()
	}
	return types.ResolvedSelection{
		Index:      idx,
		Parameters: variants[idx].Parameters.Pick(filters),
	}
}

func ResolveProduct(product *types.Product, filters types.Parameters) types.ResolvedSelection {
	if product == nil {
		return types.DefaultSelection()
	}
	return Resolve(product.Variants, filters)
}
