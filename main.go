package main

import (
	"os"

	"bookswap/app"
	"bookswap/config"
	logger "bookswap/loggers"
	"bookswap/routes"
)

func main() {
	config.LoadEnv()
	logger.Init()

	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	logger.Logger.Infof("listening on :%s", port)
	_ = r.Run(":" + port)
}
