package main

import (
	"github.com/joho/godotenv"

	"github.com/Kolmo-Construction/Kolmo-Design-Protal-sub004/internal/app"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	app.Run()
}
