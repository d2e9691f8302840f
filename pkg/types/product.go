package types

type ProductType string

const (
	SimpleProduct       ProductType = "simple"
	ConfigurableProduct ProductType = "configurable"
	GroupedProduct      ProductType = "grouped"
	VirtualProduct      ProductType = "virtual"
	BundleProduct       ProductType = "bundle"
	DownloadableProduct ProductType = "downloadable"
)

type Thumbnail struct {
	Path string `json:"path"`
}

type ReviewSummary struct {
	RatingSummary float64 `json:"rating_summary"`
	ReviewCount   int     `json:"review_count" validate:"min=0"`
}

// Product is a catalog entry as delivered by the catalog api. A missing
// UrlKey means the record is still loading or has no page of its own.
type Product struct {
	Id            string         `json:"id,omitempty"`
	Sku           string         `json:"sku,omitempty"`
	Name          string         `json:"name,omitempty"`
	Brand         string         `json:"brand,omitempty"`
	UrlKey        string         `json:"url_key,omitempty" validate:"omitempty,excludesall=/?#"`
	TypeId        ProductType    `json:"type_id,omitempty" validate:"omitempty,max=64"`
	Thumbnail     *Thumbnail     `json:"thumbnail,omitempty"`
	Price         *Money         `json:"price,omitempty"`
	Variants      []Variant      `json:"variants,omitempty" validate:"omitempty,dive"`
	ReviewSummary *ReviewSummary `json:"review_summary,omitempty"`
}

// Variant is one purchasable combination of attribute values of a
// configurable product.
type Variant struct {
	Product    *Product   `json:"product" validate:"required"`
	Parameters Parameters `json:"parameters" validate:"dive"`
}

func (p *Product) IsConfigurable() bool {
	return p.TypeId == ConfigurableProduct
}

func (p *Product) IsLinkable() bool {
	return p.UrlKey != ""
}

func (p *Product) ThumbnailPath() string {
	if p == nil || p.Thumbnail == nil {
		return ""
	}
	return p.Thumbnail.Path
}

func (p *Product) ReviewCount() int {
	if p.ReviewSummary == nil {
		return 0
	}
	return p.ReviewSummary.ReviewCount
}

// ResolvedSelection is the active variant index and the parameters of that
// variant that the caller filtered on.
type ResolvedSelection struct {
	Index      int        `json:"index"`
	Parameters Parameters `json:"parameters"`
}

func DefaultSelection() ResolvedSelection {
	return ResolvedSelection{Index: 0, Parameters: Parameters{}}
}
