package catalog

import (
	"github.com/go-leo/valueobject/ddd"
	"github.com/go-leo/valueobject/valueobject"
)

var (
	_ ddd.ValueObject[ProductID] = ProductID{}
	_ ddd.Copyable[ProductID]    = ProductID{}
	_ ddd.ValueObject[VendorID]  = VendorID{}
	_ ddd.Copyable[VendorID]     = VendorID{}
)

var productIDType = valueobject.Define[string](KindProductID,
	valueobject.Tag[string]("required", "Id is invalid"),
)

// "123" is a reserved vendor id.
var vendorIDType = valueobject.Define[string](KindVendorID,
	valueobject.Tag[string]("required", "Id is invalid"),
	valueobject.Tag[string]("ne=123", "Id is invalid"),
)

// ProductID is the identity of a Product.
type ProductID struct {
	valueobject.Base[string]
}

func NewProductID(id string) (ProductID, error) {
	b, err := productIDType.New(id)
	if err != nil {
		return ProductID{}, err
	}
	return ProductID{Base: b}, nil
}

func (id ProductID) Equals(other ProductID) bool {
	return id.Base.Equals(other.Base)
}

func (id ProductID) Copy() ProductID {
	return id
}

// VendorID identifies the vendor selling a Product.
type VendorID struct {
	valueobject.Base[string]
}

func NewVendorID(id string) (VendorID, error) {
	b, err := vendorIDType.New(id)
	if err != nil {
		return VendorID{}, err
	}
	return VendorID{Base: b}, nil
}

func (id VendorID) Equals(other VendorID) bool {
	return id.Base.Equals(other.Base)
}

func (id VendorID) Copy() VendorID {
	return id
}
