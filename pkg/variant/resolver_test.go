package variant

import (
	"reflect"
	"testing"

	"github.com/matst80/slask-card/pkg/types"
)

func params(kv ...string) types.Parameters {
	p := types.Parameters{}
	for i := 0; i+1 < len(kv); i += 2 {
		p = p.With(kv[i], kv[i+1])
	}
	return p
}

func shirtVariants() []types.Variant {
	return []types.Variant{
		{Product: &types.Product{Sku: "s-blue"}, Parameters: params("color", "blue", "size", "S")},
		{Product: &types.Product{Sku: "m-blue"}, Parameters: params("color", "blue", "size", "M")},
		{Product: &types.Product{Sku: "m-red"}, Parameters: params("color", "red", "size", "M")},
		{Product: &types.Product{Sku: "l-red"}, Parameters: params("color", "red", "size", "L")},
	}
}

func TestResolveEmptyFilters(t *testing.T) {
	for _, variants := range [][]types.Variant{nil, {}, shirtVariants()} {
		for _, filters := range []types.Parameters{nil, {}} {
			sel := Resolve(variants, filters)
			if !reflect.DeepEqual(sel, types.DefaultSelection()) {
				t.Errorf("Expected default selection, got %+v", sel)
			}
		}
	}
}

func TestResolveWithoutVariants(t *testing.T) {
	sel := Resolve(nil, params("color", "red"))
	if !reflect.DeepEqual(sel, types.DefaultSelection()) {
		t.Errorf("Expected default selection, got %+v", sel)
	}
}

func TestResolveExactMatch(t *testing.T) {
	variants := shirtVariants()
	for k, v := range variants {
		sel := Resolve(variants, v.Parameters)
		if sel.Index != k {
			t.Errorf("Expected index %d for %v, got %d", k, v.Parameters, sel.Index)
		}
		if !reflect.DeepEqual(sel.Parameters, v.Parameters) {
			t.Errorf("Expected parameters %v, got %v", v.Parameters, sel.Parameters)
		}
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	sel := Resolve(shirtVariants(), params("size", "M"))
	if sel.Index != 1 {
		t.Errorf("Expected index 1, got %d", sel.Index)
	}
	if !reflect.DeepEqual(sel.Parameters, params("size", "M")) {
		t.Errorf("Expected only size, got %v", sel.Parameters)
	}
}

func TestResolveKeepsVariantOrder(t *testing.T) {
	sel := Resolve(shirtVariants(), params("size", "L", "color", "red"))
	if sel.Index != 3 {
		t.Errorf("Expected index 3, got %d", sel.Index)
	}
	if got := sel.Parameters.Keys(); !reflect.DeepEqual(got, []string{"color", "size"}) {
		t.Errorf("Expected variant key order [color size], got %v", got)
	}
}

func TestResolveNoMatch(t *testing.T) {
	cases := []types.Parameters{
		params("color", "green"),
		params("color", "blue", "size", "L"),
	}
	for _, filters := range cases {
		sel := Resolve(shirtVariants(), filters)
		if !reflect.DeepEqual(sel, types.DefaultSelection()) {
			t.Errorf("Expected default selection for %v, got %+v", filters, sel)
		}
	}
}

func TestResolveMissingAttributeIsConsistent(t *testing.T) {
	variants := []types.Variant{
		{Product: &types.Product{}, Parameters: params("color", "blue")},
		{Product: &types.Product{}, Parameters: params("color", "red")},
	}
	sel := Resolve(variants, params("color", "red", "material", "wool"))
	if sel.Index != 1 {
		t.Errorf("Expected index 1, got %d", sel.Index)
	}
	if !reflect.DeepEqual(sel.Parameters, params("color", "red")) {
		t.Errorf("Expected only color in parameters, got %v", sel.Parameters)
	}
}

func TestResolveDoesNotShareParameters(t *testing.T) {
	variants := shirtVariants()
	sel := Resolve(variants, params("color", "red", "size", "M"))
	sel.Parameters[0].Value = "changed"
	if v, _ := variants[2].Parameters.Get("color"); v != "red" {
		t.Errorf("Expected variant parameters to be untouched, got %s", v)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	variants := shirtVariants()
	filters := params("color", "red")
	first := Resolve(variants, filters)
	for i := 0; i < 10; i++ {
		if got := Resolve(variants, filters); !reflect.DeepEqual(got, first) {
			t.Errorf("Expected %+v, got %+v", first, got)
		}
	}
}

func TestResolveProductNil(t *testing.T) {
	if sel := ResolveProduct(nil, params("a", "b")); !reflect.DeepEqual(sel, types.DefaultSelection()) {
		t.Errorf("Expected default selection, got %+v", sel)
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup(shirtVariants(), params("color", "green")); ok {
		t.Error("Expected no match")
	}
	if i, ok := Lookup(shirtVariants(), params("color", "red")); !ok || i != 2 {
		t.Errorf("Expected match at 2, got %d %v", i, ok)
	}
}
