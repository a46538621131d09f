// internal/store/store_test.go
package store

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/shopora/storefront-backend/internal/models"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testProduct(id string, price float64, stock int) models.Product {
	return models.Product{
		ID:       id,
		Name:     "Product " + id,
		Price:    price,
		Category: "Electronics",
		Image:    "https://cdn.example.com/" + id + ".jpg",
		Stock:    stock,
	}
}
