package models

// Brand is read-only reference data maintained out of band. The document _id
// is the externally assigned brand code.
type Brand struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// Market is read-only reference data listing the locale tags a market
// supports. Locale validity is an existential check across all markets, not
// scoped to a brand.
type Market struct {
	ID        string   `json:"id" bson:"_id"`
	Languages []string `json:"languages" bson:"languages"`
}
