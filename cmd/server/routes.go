package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rsked-radio/rcald/internal/http/api"
	"github.com/rsked-radio/rcald/internal/http/api/endpoints"
	"github.com/rsked-radio/rcald/internal/library"
	"github.com/rsked-radio/rcald/internal/notify"
	"github.com/rsked-radio/rcald/internal/store"
)

// RegisterRoutes sets up all application routes. The editor is a browser
// app that may be served from another origin, so CORS stays permissive.
func RegisterRoutes(r *gin.Engine, files *store.FileStore, catalog *library.Loader,
	archived bool, notifier *notify.Publisher) {

	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		endpoints.ScheduleModule(files, archived, notifier),
		endpoints.LibraryModule(catalog),
	)
}
