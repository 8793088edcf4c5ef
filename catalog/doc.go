// Package catalog models a product catalog with value objects and one entity.
//
// Every value object embeds valueobject.Base, which tags it with its Kind at
// construction. Equals is typed per variant, so comparing a ProductID with a
// VendorID does not compile; valueobject.Equal compares kinds before values
// when variants are handled through the valueobject.Object interface.
//
// Product is an entity: two products are the same product when their
// ProductIDs are equal, whatever their titles, prices or vendors.
package catalog
