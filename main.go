package main

import (
	"fmt"
	"log"

	"github.com/alexkanav/cafe-ordering-system/configs"
	"github.com/alexkanav/cafe-ordering-system/middlewares"
	"github.com/alexkanav/cafe-ordering-system/routes"
	"github.com/alexkanav/cafe-ordering-system/services"
	"github.com/alexkanav/cafe-ordering-system/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()
	if err := configs.SeedStaff(cfg); err != nil {
		log.Fatalf("seed staff failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// event bus — ชั้น cache ภายนอกมา subscribe ตรงนี้
	events := services.NewEventBus()
	events.Subscribe(services.EventMenuChanged, func(e services.Event) {
		log.Println("event:", e)
	})
	events.Subscribe(services.EventCommentsChanged, func(e services.Event) {
		log.Println("event:", e)
	})

	// WS hub สำหรับ staff notifications
	hub := ws.NewNotifyHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, events, hub)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
