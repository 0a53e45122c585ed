package main

import (
	"flag"
	"fmt"
	"os"

	"alumnet/global"
	"alumnet/initialize"
	"alumnet/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		fmt.Println("init:", err)
		os.Exit(1)
	}

	global.Logger.Info().Str("host", app.Cfg.HTTP.Host).Int("port", app.Cfg.HTTP.Port).Msg("http server starting")
	if err := server.StartHTTPServer(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router); err != nil {
		fmt.Println("http:", err)
		os.Exit(1)
	}

	select {}
}
