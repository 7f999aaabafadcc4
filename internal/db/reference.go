package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BrandExists reports whether a brand reference document with the given code
// exists. Exact, case-sensitive match on the document id.
func (d *Database) BrandExists(ctx context.Context, brandID string) (bool, error) {
	n, err := d.brands.CountDocuments(ctx, bson.M{"_id": brandID}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("brand lookup: %w", err)
	}
	return n > 0, nil
}

// LocaleExists reports whether any market reference document lists the locale
// among its supported languages. The check is existential across all markets,
// not scoped to a brand.
func (d *Database) LocaleExists(ctx context.Context, locale string) (bool, error) {
	n, err := d.markets.CountDocuments(ctx, bson.M{"languages": locale}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("market lookup: %w", err)
	}
	return n > 0, nil
}
