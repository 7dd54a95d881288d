package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"user-service/internal/client/api"
	"user-service/internal/client/cli"
)

func defaultAddress() string {
	if v := os.Getenv("USER_SERVICE_ADDRESS"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

func main() {

	address := flag.String("a", defaultAddress(), "base URL of the user service")
	flag.Parse()

	app := cli.NewApp(api.New(*address), os.Stdin, os.Stdout)

	if err := app.Run(context.Background(), flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
