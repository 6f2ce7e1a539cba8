package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/ivlasenko/bookvault/internal/client/api"
	"github.com/ivlasenko/bookvault/internal/client/cli"
)

func main() {

	addr := flag.String("a", "http://localhost:8080", "server base URL")
	flag.Parse()

	fmt.Printf("BookVault client, server %s\n", *addr)

	app := cli.NewApp(api.New(*addr))
	app.Run(context.Background())
}
