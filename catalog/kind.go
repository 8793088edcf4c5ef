package catalog

import "github.com/go-leo/valueobject/valueobject"

const (
	KindProductID          valueobject.Kind = "ProductId"
	KindVendorID           valueobject.Kind = "VendorId"
	KindMoney              valueobject.Kind = "Money"
	KindPrice              valueobject.Kind = "Price"
	KindProductTitle       valueobject.Kind = "ProductTitle"
	KindProductDescription valueobject.Kind = "ProductDescription"
	KindProduct            valueobject.Kind = "Product"
)

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 1000
)
