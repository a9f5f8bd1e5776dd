package main

import (
	"os"
	"strings"
	"time"
	"yatube/app"
	"yatube/cache"
	"yatube/config"
	"yatube/db"
	"yatube/models"
	"yatube/storage"
	"yatube/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func loadGroupsFile(name string) {
	file, err := os.Open(name)
	if err != nil {
		log.Fatal().Err(err).Str("file", name).Msg("Cannot open groups file")
	}
	defer file.Close()
	groups, err := models.LoadGroups(file)
	if err != nil {
		log.Fatal().Err(err).Str("file", name).Msg("Cannot load groups")
	}
	log.Info().Int("groups", len(groups)).Str("file", name).Msg("Groups loaded")
}

func main() {
	if err := utils.InitLogger(config.LOG_LEVEL); err != nil {
		log.Fatal().Err(err).Msg("Invalid LOG_LEVEL")
	}
	db.Init()
	if err := models.Init(); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
	if config.GROUPS_FILE != "" {
		loadGroupsFile(config.GROUPS_FILE)
	}
	if config.ADMIN_USERNAME != "" && config.ADMIN_PASSWORD != "" {
		if _, err := models.EnsureAdmin(config.ADMIN_USERNAME, config.ADMIN_PASSWORD); err != nil {
			log.Fatal().Err(err).Msg("Cannot create the admin account")
		}
	}
	storage.Init(storage.BucketFromConfig())

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	sessionStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	sessionStore.Options(sessions.Options{Path: "/", MaxAge: config.SESSION_MAX_AGE, HttpOnly: true})

	middlewares := []gin.HandlerFunc{
		cors.New(cors.Config{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           30 * 24 * time.Hour,
		}),
	}
	if config.DEBUG_MODE {
		middlewares = append(middlewares, utils.ErrorLogMiddleware)
	} else {
		middlewares = append(middlewares, gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/media/"})))
	}
	indexCacheTime := time.Duration(config.INDEX_CACHE_SECONDS) * time.Second
	router := app.NewRouter(app.Options{
		Cache:        cache.NewMemoryCache(indexCacheTime),
		CacheMaxAge:  indexCacheTime,
		SessionStore: sessionStore,
		Middlewares:  middlewares,
	})

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		log.Info().Str("address", config.BIND_ADDRESS).Msg("Listening")
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatal().Err(err).Msg("Server stopped")
}
