package main

import (
	"context"
	"log"

	"github.com/devfolio/portfolio-backend/config"
	"github.com/devfolio/portfolio-backend/internal/auth"
	"github.com/devfolio/portfolio-backend/internal/bootstrap"
	"github.com/devfolio/portfolio-backend/internal/contact"
	"github.com/devfolio/portfolio-backend/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	app, err := auth.InitializeFirebase(ctx, &cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}

	authClient, err := auth.AuthClient(ctx, app)
	if err != nil {
		log.Fatalf("firebase auth: %v", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("firestore: %v", err)
	}
	defer fsClient.Close()

	storageClient, err := storage.NewClient(ctx, app, cfg.Firebase.StorageBucket)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if rdb == nil {
		log.Println("REDIS_ADDR not set, project list cache disabled")
	} else {
		defer rdb.Close()
	}

	mailer := contact.NewMailer(&cfg.Mail)
	if mailer == nil {
		log.Println("SMTP not configured, contact notifications disabled")
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  "portfolio-backend",
		Version:      cfg.App.Version,
		AllowOrigins: cfg.Server.AllowOrigins,
		AuthClient:   authClient,
		Firestore:    fsClient,
		Storage:      storageClient,
		Redis:        rdb,
		Mailer:       mailer,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
