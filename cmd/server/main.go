package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"agenda-api/internal/handler"
	"agenda-api/internal/middleware"
	"agenda-api/internal/store"
)

func main() {
	_ = godotenv.Load()
	dbURL := env("DATABASE_URL", "mongodb://localhost:27017/agenda")
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	port := env("PORT", "3000")
	tokenTTL, err := time.ParseDuration(env("TOKEN_TTL", "15m"))
	if err != nil {
		log.Fatalf("TOKEN_TTL: %v", err)
	}

	// database
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	st, err := store.New(ctx, dbURL)
	cancel()
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer st.Close(context.Background())
	log.Println("connected to mongodb")

	h := handler.New(st, secret, tokenTTL)
	rl := middleware.NewRateLimiter(5, 10)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: h.Routes(rl),
	}
	go func() {
		log.Printf("http on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http: %v", err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
