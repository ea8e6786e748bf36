package services

import (
	"context"

	"mercadito/internal/domain"
	"mercadito/internal/validate"
)

// ProductStore is the storage surface the service needs. repos.ProductRepo
// is the real implementation; tests supply an in-memory one.
type ProductStore interface {
	List(ctx context.Context) ([]domain.Product, error)
	Insert(ctx context.Context, p domain.Product) (domain.Product, error)
	Update(ctx context.Context, id int64, p domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

// ProductInput is the JSON body of create and update requests. Field names
// map 1:1 to the stored columns; absent fields persist as NULL.
type ProductInput struct {
	Name           string   `json:"name"`
	Condition      *string  `json:"condition"`
	Link           *string  `json:"link"`
	PriceUSD       *float64 `json:"price_usd"`
	PriceARS       *float64 `json:"price_ars"`
	PriceCLP       *float64 `json:"price_clp"`
	PriceWholesale *float64 `json:"price_wholesale"`
	PriceRetail    *float64 `json:"price_retail"`
}

type ProductService struct {
	Store ProductStore
}

func NewProductService(store ProductStore) *ProductService {
	return &ProductService{Store: store}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.Store.List(ctx)
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (domain.Product, error) {
	p, err := normalize(in)
	if err != nil {
		return domain.Product{}, err
	}
	return s.Store.Insert(ctx, p)
}

func (s *ProductService) Update(ctx context.Context, id int64, in ProductInput) (domain.Product, error) {
	p, err := normalize(in)
	if err != nil {
		return domain.Product{}, err
	}
	return s.Store.Update(ctx, id, p)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.Store.Delete(ctx, id)
}

// normalize applies the validation policy: name is trimmed and must be
// non-blank, condition must be one of the allowed enums when present. Both
// checks fire before any storage access.
func normalize(in ProductInput) (domain.Product, error) {
	name, ok := validate.Name(in.Name)
	if !ok {
		return domain.Product{}, domain.Invalid("name", "must not be empty")
	}

	cond := in.Condition
	if cond != nil {
		c, ok := validate.Condition(*cond)
		switch {
		case c == "":
			// An explicit empty string means unset, same as absent.
			cond = nil
		case !ok:
			return domain.Product{}, domain.Invalid("condition", `must be "new" or "used"`)
		default:
			cond = &c
		}
	}

	return domain.Product{
		Name:           name,
		Condition:      cond,
		Link:           in.Link,
		PriceUSD:       in.PriceUSD,
		PriceARS:       in.PriceARS,
		PriceCLP:       in.PriceCLP,
		PriceWholesale: in.PriceWholesale,
		PriceRetail:    in.PriceRetail,
	}, nil
}
