package main

import (
	"context"
	_ "embed"
	"os"
	"os/signal"
	"syscall"

	"github.com/CosmoTheDev/discord-pr-notify/cmd"
)

//go:embed action.yml
var actionManifest []byte

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cmd.Execute(ctx, actionManifest)
	stop()
	os.Exit(code)
}
