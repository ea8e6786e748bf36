package repos

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"mercadito/internal/domain"
)

const productColumns = `
  id, name, condition, link,
  price_usd, price_ars, price_clp, price_wholesale, price_retail,
  created_at, updated_at`

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// List returns every listing, newest first. The id tiebreak keeps the order
// stable when rows share a created_at.
func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.SelectContext(ctx, &out, `
	  SELECT `+productColumns+`
	  FROM productos
	  ORDER BY created_at DESC, id DESC`)
	return out, err
}

func (r *ProductRepo) Insert(ctx context.Context, p domain.Product) (domain.Product, error) {
	var out domain.Product
	err := r.db.GetContext(ctx, &out, `
	  INSERT INTO productos(name, condition, link, price_usd, price_ars, price_clp, price_wholesale, price_retail)
	  VALUES($1,$2,$3,$4,$5,$6,$7,$8)
	  RETURNING `+productColumns,
		p.Name, p.Condition, p.Link, p.PriceUSD, p.PriceARS, p.PriceCLP, p.PriceWholesale, p.PriceRetail)
	return out, err
}

// Update replaces every mutable field; updated_at is refreshed by the table
// trigger, not here.
func (r *ProductRepo) Update(ctx context.Context, id int64, p domain.Product) (domain.Product, error) {
	var out domain.Product
	err := r.db.GetContext(ctx, &out, `
	  UPDATE productos
	  SET name=$1, condition=$2, link=$3, price_usd=$4, price_ars=$5, price_clp=$6, price_wholesale=$7, price_retail=$8
	  WHERE id=$9
	  RETURNING `+productColumns,
		p.Name, p.Condition, p.Link, p.PriceUSD, p.PriceARS, p.PriceCLP, p.PriceWholesale, p.PriceRetail, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, domain.ErrNotFound
	}
	return out, err
}

func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM productos WHERE id=$1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM productos`)
	return n, err
}
