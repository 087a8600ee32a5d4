package router

import (
	"github.com/RoyceAzure/lab/backoffice/internal/api/handler"
	m "github.com/RoyceAzure/lab/backoffice/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(productHandler *handler.ProductHandler, orderHandler *handler.OrderHandler, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Post("/", productHandler.CreateProduct)
			r.Get("/", productHandler.ListProducts)
			r.Get("/search", productHandler.SearchProducts)
			r.Delete("/bulk", productHandler.DeleteProducts)
			r.Get("/{code}", productHandler.GetProduct)
			r.Put("/{code}", productHandler.UpdateProduct)
			r.Patch("/{code}/status", productHandler.UpdateProductStatus)
			r.Delete("/{code}", productHandler.DeleteProduct)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderHandler.CreateOrder)
			r.Get("/", orderHandler.ListOrders)
			r.Get("/{code}", orderHandler.GetOrder)
			r.Put("/{code}", orderHandler.UpdateOrder)
		})
	})

	return r
}
