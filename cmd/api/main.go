package main

import (
	"log"
	_ "skip_selector/docs"
	"skip_selector/internal/adapter/http/routes"
	"skip_selector/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Skip Selection API
// @version         1.0
// @description     Skip size selection step of the waste collection booking flow.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	routes.Run(cfg)
}
