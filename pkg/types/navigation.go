package types

const (
	ProductPathPrefix = "/product/"
	ReviewsHash       = "#reviews"
)

type NavigationState struct {
	Product *Product `json:"product"`
}

// NavigationTarget is what the router needs to link to a product page.
// Search never carries a leading '?'.
type NavigationTarget struct {
	Pathname string          `json:"pathname"`
	State    NavigationState `json:"state"`
	Search   string          `json:"search"`
	Hash     string          `json:"hash,omitempty"`
}

// Href joins the target into a relative url.
func (t *NavigationTarget) Href() string {
	href := t.Pathname
	if t.Search != "" {
		href += "?" + t.Search
	}
	return href + t.Hash
}
