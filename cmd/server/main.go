package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"agrosync/config"
	"agrosync/database"
	"agrosync/router"

	// Auth + health
	authCtrlImp "agrosync/pkg/auth/controllerImp"
	healthCtrlImp "agrosync/pkg/health/controllerImp"

	// Catalog features
	farmerCtrlImp "agrosync/pkg/farmer/controllerImp"
	farmerRepoImp "agrosync/pkg/farmer/repositoryImp"
	landCtrlImp "agrosync/pkg/land/controllerImp"
	landRepoImp "agrosync/pkg/land/repositoryImp"
	priceCtrlImp "agrosync/pkg/price/controllerImp"
	priceRepoImp "agrosync/pkg/price/repositoryImp"
	productCtrlImp "agrosync/pkg/product/controllerImp"
	productRepoImp "agrosync/pkg/product/repositoryImp"
	warehouseCtrlImp "agrosync/pkg/warehouse/controllerImp"
	warehouseRepoImp "agrosync/pkg/warehouse/repositoryImp"

	// Delivery core
	delCtrlImp "agrosync/pkg/delivery/controllerImp"
	delRepoImp "agrosync/pkg/delivery/repositoryImp"
	delSvcImp "agrosync/pkg/delivery/serviceImp"
	payCtrlImp "agrosync/pkg/payment/controllerImp"
	payRepoImp "agrosync/pkg/payment/repositoryImp"
	paySvcImp "agrosync/pkg/payment/serviceImp"

	"agrosync/pkg/refdata"
	"agrosync/pkg/report"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate + reference catalogs
	db := database.OpenSQLite(cfg.DBPath)
	if cfg.SeedDB {
		if err := database.Seed(db); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	// 3) Repos
	refs := refdata.New(db)
	fRepo := farmerRepoImp.New(db)
	lRepo := landRepoImp.New(db)
	wRepo := warehouseRepoImp.New(db)
	prRepo := productRepoImp.New(db)
	pcRepo := priceRepoImp.New(db)
	dRepo := delRepoImp.New(db)
	pyRepo := payRepoImp.New(db)

	// 4) Services
	reconciler := paySvcImp.New(pyRepo)
	delSvc := delSvcImp.New(dRepo, fRepo, lRepo, prRepo, wRepo, reconciler)

	// 5) Controllers
	fCtrl := farmerCtrlImp.New(fRepo, refs)
	lCtrl := landCtrlImp.New(lRepo, refs)
	wCtrl := warehouseCtrlImp.New(wRepo)
	prCtrl := productCtrlImp.New(prRepo)
	pcCtrl := priceCtrlImp.New(pcRepo)
	pyCtrl := payCtrlImp.New(pyRepo)
	dCtrl := delCtrlImp.New(delSvc)
	rpCtrl := report.New(delSvc)
	authCtrl := authCtrlImp.NewAuthController()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Echo + routes
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	router.New(e, cfg.RequireUser, fCtrl, lCtrl, wCtrl, prCtrl, pcCtrl, pyCtrl, authCtrl, hCtrl)
	dCtrl.Register(e)
	rpCtrl.Register(e)

	// 7) Start
	log.Printf("[srv] listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
