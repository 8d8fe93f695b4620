package main

import (
	_ "jobdesk/docs"
	"jobdesk/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Jobdesk API
// @version         1.0
// @description     Job, estimate and invoice tracking for small contracting businesses, backed by DynamoDB with redis-based live sync.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Account
// @in header
// @name X-Account
// @description Acting account contact (email or phone).

func main() {
	routes.Run()
}
