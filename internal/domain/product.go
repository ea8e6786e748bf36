package domain

import "time"

// Product conditions accepted by the API and enforced by the table CHECK.
const (
	ConditionNew  = "new"
	ConditionUsed = "used"
)

// Product is a single listing in the productos table. Every field except
// Name is optional; optional fields stay NULL in storage when absent.
type Product struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Condition      *string   `db:"condition" json:"condition"`
	Link           *string   `db:"link" json:"link"`
	PriceUSD       *float64  `db:"price_usd" json:"price_usd"`
	PriceARS       *float64  `db:"price_ars" json:"price_ars"`
	PriceCLP       *float64  `db:"price_clp" json:"price_clp"`
	PriceWholesale *float64  `db:"price_wholesale" json:"price_wholesale"`
	PriceRetail    *float64  `db:"price_retail" json:"price_retail"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}
