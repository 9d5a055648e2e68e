package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/vietanh2810/events-api/cmd/eventctl/cmd"
)

func main() {
	cmd.Execute()
}
