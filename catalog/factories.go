package catalog

import "github.com/go-leo/valueobject/factory"

// Every catalog factory refuses to run once its context is done.

func ProductIDFactory() factory.Factory[ProductID, string] {
	return factory.Chain(factory.Of(NewProductID), factory.Checked[ProductID, string]())
}

func VendorIDFactory() factory.Factory[VendorID, string] {
	return factory.Chain(factory.Of(NewVendorID), factory.Checked[VendorID, string]())
}

func PriceFactory() factory.Factory[Price, float64] {
	return factory.Chain(factory.Of(NewPrice), factory.Checked[Price, float64]())
}

// ProductTitleFactory trims surrounding white space before validating.
func ProductTitleFactory() factory.Factory[ProductTitle, string] {
	return factory.Chain(factory.Of(NewProductTitle), factory.Checked[ProductTitle, string](), factory.TrimSpace[ProductTitle]())
}

// ProductDescriptionFactory trims surrounding white space before validating.
func ProductDescriptionFactory() factory.Factory[ProductDescription, string] {
	return factory.Chain(factory.Of(NewProductDescription), factory.Checked[ProductDescription, string](), factory.TrimSpace[ProductDescription]())
}
