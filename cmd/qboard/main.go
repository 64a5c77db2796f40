package main

import (
	"os"

	"github.com/joho/godotenv"

	"qboard/internal/cli"
)

func main() {
	// A missing .env file is fine; the config layer has defaults.
	_ = godotenv.Load()
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
