package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/CampusStream/CS-Backend/internal/auth"
	"github.com/CampusStream/CS-Backend/internal/colleges"
	"github.com/CampusStream/CS-Backend/internal/config"
	"github.com/CampusStream/CS-Backend/internal/db"
	"github.com/CampusStream/CS-Backend/internal/middleware"
	"github.com/CampusStream/CS-Backend/internal/storage"
	"github.com/CampusStream/CS-Backend/internal/videos"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db.Connect()

	blobStore, err := storage.New(context.Background(), cfg)
	if err != nil {
		log.Fatal("Failed to init storage: ", err)
	}

	auth.Init(cfg)
	colleges.Init()
	videos.Init(cfg, blobStore)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(middleware.CSRFMiddleware(cfg.CSRFExempt))
	r.Get("/", RootHandler)

	r.Mount("/colleges", colleges.SetupRoutes())
	r.Mount("/videos", videos.SetupRoutes(auth.SessionInfo{}))
	r.Mount("/", auth.SetupRoutes())

	fmt.Printf("Server listening on port :%s...\n", cfg.Port)

	http.ListenAndServe("0.0.0.0:"+cfg.Port, r)
}
