package catalog

import (
	"strconv"

	"github.com/go-leo/valueobject/ddd"
	"github.com/go-leo/valueobject/valueobject"
)

var (
	_ ddd.ValueObject[ProductTitle]       = ProductTitle{}
	_ ddd.Copyable[ProductTitle]          = ProductTitle{}
	_ ddd.ValueObject[ProductDescription] = ProductDescription{}
	_ ddd.Copyable[ProductDescription]    = ProductDescription{}
)

var productTitleType = valueobject.Define[string](KindProductTitle,
	valueobject.Tag[string]("required", "Title can not be empty"),
	valueobject.Tag[string]("max="+strconv.Itoa(MaxTitleLength), "Title can not be longer than 100 characters"),
)

var productDescriptionType = valueobject.Define[string](KindProductDescription,
	valueobject.Tag[string]("required", "Description can not be empty"),
	valueobject.Tag[string]("max="+strconv.Itoa(MaxDescriptionLength), "Description can not be longer than 1000 characters"),
)

// ProductTitle is a non-empty title of at most MaxTitleLength characters.
type ProductTitle struct {
	valueobject.Base[string]
}

func NewProductTitle(title string) (ProductTitle, error) {
	b, err := productTitleType.New(title)
	if err != nil {
		return ProductTitle{}, err
	}
	return ProductTitle{Base: b}, nil
}

func (t ProductTitle) Equals(other ProductTitle) bool {
	return t.Base.Equals(other.Base)
}

func (t ProductTitle) Copy() ProductTitle {
	return t
}

// ProductDescription is a non-empty description of at most MaxDescriptionLength characters.
type ProductDescription struct {
	valueobject.Base[string]
}

func NewProductDescription(description string) (ProductDescription, error) {
	b, err := productDescriptionType.New(description)
	if err != nil {
		return ProductDescription{}, err
	}
	return ProductDescription{Base: b}, nil
}

func (d ProductDescription) Equals(other ProductDescription) bool {
	return d.Base.Equals(other.Base)
}

func (d ProductDescription) Copy() ProductDescription {
	return d
}
