package main

import (
	"net/http"

	"punchline/config"
	"punchline/config/database"
	"punchline/pkg/logger"
	"punchline/router"
	"punchline/socket"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Sugar.Fatalf("Failed to load configuration: %v", err)
	}

	db := database.Connect(cfg)
	defer db.Close()

	hub := socket.NewHub()
	go hub.Run()

	handler := router.Setup(db, hub)

	logger.Sugar.Infof("Listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Sugar.Fatalf("Server stopped: %v", err)
	}
}
