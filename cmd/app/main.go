package main

import (
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"

	_ "frontdesk/docs"
)

// @title Front Desk API
// @version 1.0
// @description Hotel front-desk service: rooms, guests, bookings, invoices and add-on services.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
