// Command cmd walks through the catalog value objects and the Product entity
// and logs what it observes.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-leo/valueobject/catalog"
	"github.com/go-leo/valueobject/valueobject"
	"go.uber.org/zap"
)

func main() {
	cfg, err := LoadConfig(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := newLogger(cfg.Log.Level, os.Stdout)
	defer func() { _ = logger.Sync() }()

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("demo failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *Config, logger *zap.Logger) error {
	p1, err := catalog.NewProductBuilder().ID("1").VendorID("1234").Build(ctx)
	if err != nil {
		return err
	}
	p2, err := catalog.NewProductBuilder().ID("1").VendorID("1234").Build(ctx)
	if err != nil {
		return err
	}
	logger.Info("products compared",
		zap.String("product_id", p1.ID().Value()),
		zap.Bool("ids_equal", p1.ID().Equals(p2.ID())),
		zap.Bool("same_reference", p1 == p2),
		zap.Bool("same_entity", p1.SameIdentityAs(p2)),
	)

	productID, err := catalog.NewProductID(p1.VendorID().Value())
	if err != nil {
		return err
	}
	logger.Info("variants compared",
		zap.String("value", productID.Value()),
		zap.Stringer("left", productID.Kind()),
		zap.Stringer("right", p1.VendorID().Kind()),
		zap.Bool("equal", valueobject.Equal(productID, p1.VendorID())),
	)

	if _, err := catalog.NewVendorID("123"); err != nil {
		logger.Warn("vendor id rejected", zap.String("value", "123"), zap.Error(err))
	}

	price, err := catalog.NewPrice(19.99)
	if err != nil {
		return err
	}
	raised, err := price.Add(5)
	if err != nil {
		return err
	}
	p1.SetPrice(raised)
	formatted, err := raised.Format(cfg.Format.Locale, cfg.Format.Currency)
	if err != nil {
		return err
	}
	logger.Info("price updated",
		zap.String("product_id", p1.ID().Value()),
		zap.Float64("previous", price.Value()),
		zap.Float64("current", raised.Value()),
		zap.String("formatted", formatted),
	)
	return nil
}
