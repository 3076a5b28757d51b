package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/rohits-web03/lessonplanner/internal/client"
	"github.com/rohits-web03/lessonplanner/internal/client/cli"
)

func main() {
	server := os.Getenv("LESSONPLAN_SERVER")
	if server == "" {
		server = "http://localhost:3000"
	}
	flag.StringVar(&server, "server", server, "base URL of the lesson plan API")
	timeout := flag.Duration("timeout", 90*time.Second, "per-request timeout")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	in := bufio.NewReader(os.Stdin)
	api := client.New(server, client.WithHTTPClient(&http.Client{Timeout: *timeout}))
	app := cli.New(api, in, os.Stdout,
		cli.WithPasswordReader(cli.TerminalPassword(int(os.Stdin.Fd()), in)),
	)

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
