package router

import (
	"github.com/labstack/echo/v4"

	"agrosync/pkg/middleware"
)

type crudCtrl interface {
	List(echo.Context) error
	Get(echo.Context) error
	Create(echo.Context) error
	Update(echo.Context) error
	Delete(echo.Context) error
}

func New(
	e *echo.Echo,
	requireUser bool,
	farmerCtrl crudCtrl,
	landCtrl crudCtrl,
	warehouseCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	productCtrl interface {
		List(echo.Context) error
		Create(echo.Context) error
	},
	priceCtrl interface {
		List(echo.Context) error
		Update(echo.Context) error
	},
	paymentCtrl interface {
		List(echo.Context) error
		Delete(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	e.Use(middleware.RequireUser(requireUser))

	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api")
	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)

	api.GET("/farmers", farmerCtrl.List)
	api.GET("/farmers/:id", farmerCtrl.Get)
	api.POST("/farmers", farmerCtrl.Create)
	api.PUT("/farmers/:id", farmerCtrl.Update)
	api.DELETE("/farmers/:id", farmerCtrl.Delete)

	api.GET("/lands", landCtrl.List)
	api.GET("/lands/:id", landCtrl.Get)
	api.POST("/lands", landCtrl.Create)
	api.PUT("/lands/:id", landCtrl.Update)
	api.DELETE("/lands/:id", landCtrl.Delete)

	api.GET("/warehouses", warehouseCtrl.List)
	api.POST("/warehouses", warehouseCtrl.Create)
	api.PUT("/warehouses/:id", warehouseCtrl.Update)
	api.DELETE("/warehouses/:id", warehouseCtrl.Delete)

	api.GET("/products", productCtrl.List)
	api.POST("/products", productCtrl.Create)

	api.GET("/prices", priceCtrl.List)
	api.PUT("/prices", priceCtrl.Update)

	api.GET("/payments", paymentCtrl.List)
	api.DELETE("/payments/:id", paymentCtrl.Delete)

	// delivery and report controllers register themselves, see their packages
	return e
}
