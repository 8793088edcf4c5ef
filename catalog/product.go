package catalog

import (
	"github.com/go-leo/valueobject/ddd"
	"github.com/go-leo/valueobject/valueobject"
)

var (
	_ ddd.Entity[*Product, ProductID]    = (*Product)(nil)
	_ ddd.Aggregate[*Product, ProductID] = (*Product)(nil)
)

// Product is identified by its ProductID. Its title, description, price and
// group can change over its lifetime; its identity can not.
type Product struct {
	id          ProductID
	vendorID    VendorID
	title       *ProductTitle
	description *ProductDescription
	price       *Price
	groupID     string
}

// NewProduct fails when id or vendorID was not built by its constructor.
func NewProduct(id ProductID, vendorID VendorID) (*Product, error) {
	if id.IsZero() {
		return nil, valueobject.NewValidationError(KindProduct, id, "Identity must be specified")
	}
	if vendorID.IsZero() {
		return nil, valueobject.NewValidationError(KindProduct, vendorID, "Vendor id must be specified")
	}
	return &Product{id: id, vendorID: vendorID}, nil
}

func (p *Product) ID() ProductID {
	return p.id
}

// Root implements ddd.Aggregate. A Product is the root of its own aggregate.
func (p *Product) Root() ddd.Entity[*Product, ProductID] {
	return p
}

// Identity implements ddd.Entity.
func (p *Product) Identity() ProductID {
	return p.id
}

func (p *Product) VendorID() VendorID {
	return p.vendorID
}

func (p *Product) Title() (ProductTitle, bool) {
	if p.title == nil {
		return ProductTitle{}, false
	}
	return *p.title, true
}

func (p *Product) Description() (ProductDescription, bool) {
	if p.description == nil {
		return ProductDescription{}, false
	}
	return *p.description, true
}

func (p *Product) Price() (Price, bool) {
	if p.price == nil {
		return Price{}, false
	}
	return *p.price, true
}

func (p *Product) ProductGroup() string {
	return p.groupID
}

func (p *Product) SetTitle(title ProductTitle) {
	p.title = &title
}

func (p *Product) SetDescription(description ProductDescription) {
	p.description = &description
}

func (p *Product) SetPrice(price Price) {
	p.price = &price
}

func (p *Product) SetProductGroup(groupID string) {
	p.groupID = groupID
}

// SameIdentityAs reports whether other is the same product, regardless of its other attributes.
func (p *Product) SameIdentityAs(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}
	return ddd.SameIdentity[*Product, ProductID](p, other)
}

// Equals is entity equality, see SameIdentityAs.
func (p *Product) Equals(other *Product) bool {
	return p.SameIdentityAs(other)
}
