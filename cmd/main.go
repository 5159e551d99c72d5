package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soundpulse/soundpulse-backend/api/route"
	"github.com/soundpulse/soundpulse-backend/bootstrap"
	"github.com/soundpulse/soundpulse-backend/cache"
	"github.com/soundpulse/soundpulse-backend/domain"
	"github.com/soundpulse/soundpulse-backend/mongo"
	"github.com/soundpulse/soundpulse-backend/repository/repository_stream"
	"github.com/soundpulse/soundpulse-backend/scheduler"
	"github.com/soundpulse/soundpulse-backend/scraper"
	"github.com/soundpulse/soundpulse-backend/spotify"
	"github.com/soundpulse/soundpulse-backend/usecase/usecase_stream"
)

func main() {
	app := bootstrap.App()
	defer app.CloseConnections()

	env := app.Env
	db := app.Mongo.Database(env.DBName)
	mongo.CreateIndexes(db)

	timeout := time.Duration(env.ContextTimeout) * time.Second

	fetcher := scraper.NewFetcher(env.DataSource, timeout)
	spotifyClient := spotify.NewClient(context.Background(), env.SpotifyClientID, env.SpotifyClientSec)
	cacheStore := cache.NewRedisCache(app.Redis)

	artistRepo := repository_stream.NewArtistRepository(db, domain.CollectionStreamArtist)
	songRepo := repository_stream.NewSongRepository(db, domain.CollectionStreamSong)
	albumRepo := repository_stream.NewAlbumRepository(db, domain.CollectionStreamAlbum)
	rosterRepo := repository_stream.NewPriorityArtistRepository(db, domain.CollectionPriorityArtist)

	ingest := usecase_stream.NewIngestUsecase(fetcher, spotifyClient, artistRepo, songRepo, albumRepo, timeout)

	location, err := time.LoadLocation(env.CronTimezone)
	if err != nil {
		log.Fatal("Invalid CRON_TIMEZONE: ", err)
	}
	sched := scheduler.New(
		rosterRepo,
		ingest,
		cacheStore,
		scheduler.RealClock{},
		time.Duration(env.ArtistDelaySeconds)*time.Second,
		env.CronSpec,
		location,
	)
	if err := sched.Start(); err != nil {
		log.Fatal("Failed to start scheduler: ", err)
	}
	defer sched.Stop()

	if env.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	route.Setup(env, timeout, db, fetcher, spotifyClient, cacheStore, engine)

	if err := engine.Run(env.ServerAddress); err != nil {
		log.Fatal(err)
	}
}
