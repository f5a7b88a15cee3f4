package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/mehdiben7/tiwashop/app/cmd"
	"github.com/mehdiben7/tiwashop/app/configs"
	"github.com/mehdiben7/tiwashop/app/routes"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatalf("Session keys not available: %v. Run `generate-keys` first.", err)
	}

	s3Client, err := configs.NewS3Client(context.Background())
	if err != nil {
		log.Fatal("S3 client initialization failed:", err)
	}

	router := routes.NewRouter(db, env, keys, s3Client)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to start the server:", err)
	}

}
