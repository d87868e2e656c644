package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/failcon/website/internal/db"
	"github.com/failcon/website/internal/web"
)

func main() {
	// .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	// Init DB (creates failcon.db in working dir unless DB_PATH is set)
	if err := db.Init(); err != nil {
		log.Fatalf("db init: %v", err)
	}

	r := web.Router()

	addr := getEnv("ADDR", ":8080")
	log.Printf("failcon listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
