package handlers

import (
	"github.com/jmoiron/sqlx"

	"mercadito/internal/repos"
	"mercadito/internal/services"
)

type Deps struct {
	ProductHandler *ProductHandler
	HealthHandler  *HealthHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	prodRepo := repos.NewProductRepo(db)
	prodSvc := services.NewProductService(prodRepo)

	return &Deps{
		ProductHandler: &ProductHandler{Products: prodSvc},
		HealthHandler:  &HealthHandler{DB: db},
	}
}
