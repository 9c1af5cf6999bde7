package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/t7spotter/restaurantAPI/internal/authz"
	custommiddleware "github.com/t7spotter/restaurantAPI/internal/middleware"
)

// SetupRouter настраивает HTTP-маршруты и middleware ресторанного API.
// Чтение каталога доступно любому аутентифицированному принципалу,
// изменяющие методы закрыты ролевыми проверками.
func (h *Handler) SetupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.Logger(h.logger))

	r.Route("/api", func(r chi.Router) {
		r.Use(h.authMiddleware.Middleware)

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.ListCategories)
			r.Get("/{id}", h.GetCategory)

			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.Require(authz.ActionCatalogManage))

				r.Post("/", h.CreateCategory)
				r.Put("/{id}", h.UpdateCategory)
				r.Delete("/{id}", h.DeleteCategory)
			})
		})

		r.Route("/menu-items", func(r chi.Router) {
			r.Get("/", h.ListMenuItems)
			r.Get("/{id}", h.GetMenuItem)

			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.Require(authz.ActionCatalogManage))

				r.Post("/", h.CreateMenuItem)
				r.Put("/{id}", h.UpdateMenuItem)
				r.Delete("/{id}", h.DeleteMenuItem)
				r.Patch("/{id}/featured", h.SetMenuItemFeatured)
				r.Patch("/{id}/price", h.SetMenuItemPrice)
			})

			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.Require(authz.ActionRate))

				r.Get("/{id}/rating", h.GetMenuItemRating)
				r.Post("/{id}/rating", h.SubmitMenuItemRating)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(custommiddleware.Require(authz.ActionCartUse))

			r.Get("/cart", h.GetCart)
			r.Post("/cart", h.AddCartLine)
			r.Delete("/cart", h.ClearCart)
		})

		r.With(custommiddleware.Require(authz.ActionViewAllCarts)).
			Get("/carts", h.AllCarts)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.ListOrders)
			r.Get("/{id}", h.GetOrder)

			r.With(custommiddleware.Require(authz.ActionCheckout)).
				Post("/", h.Checkout)
			r.With(custommiddleware.Require(authz.ActionMarkDelivered)).
				Post("/{id}/delivered", h.MarkDelivered)
			r.With(custommiddleware.Require(authz.ActionReassignDelivery)).
				Put("/{id}/delivery-crew", h.ReassignDelivery)
		})

		r.With(custommiddleware.Require(authz.ActionToggleReady)).
			Post("/delivery/ready", h.SetReadyToWork)

		r.Route("/groups/{group}/users", func(r chi.Router) {
			r.Use(custommiddleware.Require(authz.ActionGroupManage))

			r.Get("/", h.ListGroupUsers)
			r.Post("/", h.AddGroupUser)
			r.Delete("/{id}", h.RemoveGroupUser)
		})

		r.With(custommiddleware.Require(authz.ActionViewReports)).
			Get("/reports/sales", h.SalesReport)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	return r
}
