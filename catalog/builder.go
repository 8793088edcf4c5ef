package catalog

import (
	"context"

	"github.com/go-leo/valueobject/builder"
)

var _ builder.Builder[*Product] = (*ProductBuilder)(nil)

// ProductBuilder builds a Product from raw primitives. Build reports every
// invalid part at once instead of stopping at the first.
type ProductBuilder struct {
	id          string
	vendorID    string
	title       *string
	description *string
	price       *float64
	groupID     string
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{}
}

func (b *ProductBuilder) ID(id string) *ProductBuilder {
	b.id = id
	return b
}

func (b *ProductBuilder) VendorID(vendorID string) *ProductBuilder {
	b.vendorID = vendorID
	return b
}

func (b *ProductBuilder) Title(title string) *ProductBuilder {
	b.title = &title
	return b
}

func (b *ProductBuilder) Description(description string) *ProductBuilder {
	b.description = &description
	return b
}

func (b *ProductBuilder) Price(amount float64) *ProductBuilder {
	b.price = &amount
	return b
}

func (b *ProductBuilder) ProductGroup(groupID string) *ProductBuilder {
	b.groupID = groupID
	return b
}

func (b *ProductBuilder) Build(ctx context.Context) (*Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var c builder.Collector

	var id ProductID
	v, err := ProductIDFactory().Create(ctx, b.id)
	builder.Set(&c, &id, v, err)

	var vendorID VendorID
	vid, err := VendorIDFactory().Create(ctx, b.vendorID)
	builder.Set(&c, &vendorID, vid, err)

	var title *ProductTitle
	if b.title != nil {
		t, err := ProductTitleFactory().Create(ctx, *b.title)
		builder.Set(&c, &title, &t, err)
	}

	var description *ProductDescription
	if b.description != nil {
		d, err := ProductDescriptionFactory().Create(ctx, *b.description)
		builder.Set(&c, &description, &d, err)
	}

	var price *Price
	if b.price != nil {
		pr, err := PriceFactory().Create(ctx, *b.price)
		builder.Set(&c, &price, &pr, err)
	}

	if err := c.Err(); err != nil {
		return nil, err
	}

	p, err := NewProduct(id, vendorID)
	if err != nil {
		return nil, err
	}
	if title != nil {
		p.SetTitle(*title)
	}
	if description != nil {
		p.SetDescription(*description)
	}
	if price != nil {
		p.SetPrice(*price)
	}
	p.SetProductGroup(b.groupID)
	return p, nil
}
