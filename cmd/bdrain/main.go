// Command bdrain fetches a URL and prints the drained response body.
//
// Usage:
//
//	bdrain <url>
//
// Configuration is read from the environment, see [bfetch.Environment].
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/advdv/bdrain/bfetch"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: bdrain <url>")
		os.Exit(2)
	}

	env, err := bfetch.ParseEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "bdrain:", err)
		os.Exit(1)
	}

	logs, err := bfetch.NewLogger(env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bdrain:", err)
		os.Exit(1)
	}
	defer logs.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := bfetch.New(env, bfetch.NewHTTPClient(env), logs)

	content, err := client.FetchString(ctx, os.Args[1])
	if err != nil {
		logs.Fatal("failed to fetch", zap.String("url", os.Args[1]), zap.Error(err))
	}

	fmt.Print(content)
}
