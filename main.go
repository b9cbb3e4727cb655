package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/card/color"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/ui"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	service.StartSweeper(time.Minute, 24*time.Hour)

	session, err := service.Create(cfg)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	defer service.Delete(session.ID)

	console := ui.NewConsole(session, os.Stdin, color.Stdout, cfg.BotDelay)
	if err = console.Run(); err != nil {
		log.Error(err)
	}
}
