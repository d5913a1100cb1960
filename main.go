package main

import (
	"context"
	"embed"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"webapps-manager/cmd"
	"webapps-manager/pkg/log"
)

//go:embed assets/config
var embeddedAssets embed.FS

func main() {
	assetsFS, err := fs.Sub(embeddedAssets, "assets/config")
	if err != nil {
		log.Fatalf("failed to open embedded assets: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.Execute(ctx, assetsFS); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
