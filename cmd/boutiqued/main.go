package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/gefm2002/juancito-mercado-boutique/config"
	"github.com/gefm2002/juancito-mercado-boutique/internal/adminapi"
	"github.com/gefm2002/juancito-mercado-boutique/internal/app"
	"github.com/gefm2002/juancito-mercado-boutique/internal/publicapi"
	"github.com/gefm2002/juancito-mercado-boutique/internal/webserver"
)

var (
	h        = flag.Bool("h", false, "help usage")
	conffile = flag.String("c", "boutique.yml", "config file")
	initdb   = flag.Bool("initdb", false, "drop and recreate all tables, then exit")
)

func printHelp() {
	if *h {
		fmt.Fprintln(os.Stderr, "Usage: boutiqued [options]\nOptions:")
		flag.PrintDefaults()
		os.Exit(0)
	}
}

func main() {
	flag.Parse()
	printHelp()

	cfg := config.LoadConfig(*conffile)
	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer application.Release()

	if *initdb {
		application.InitDb()
		return
	}

	webserver.Init(application)
	publicapi.Init()
	adminapi.Init()

	go func() {
		if err := webserver.Listen(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("web server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := webserver.Shutdown(ctx); err != nil {
		zap.L().Error("shutdown error", zap.Error(err))
	}
}
