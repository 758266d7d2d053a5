package handlers

import (
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/flashdeck/flashdeck-api/catalog"
	"github.com/flashdeck/flashdeck-api/learn"
)

var validate = validator.New()

// Handler exposes the catalog and learning services over HTTP.
type Handler struct {
	Catalog *catalog.Service
	Learn   *learn.Service
}

func New(db *gorm.DB) *Handler {
	return &Handler{
		Catalog: catalog.NewService(db),
		Learn:   learn.NewService(db),
	}
}
