package main

import (
	"flag"
	"net/http"

	"gascalc/calculator"
	"gascalc/server"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	cfgPath := flag.String("config", "conf/config.ini", "path of the ini config file")
	flag.Parse()

	cfg := calculator.LoadConfig(*cfgPath)
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("日志级别无效，使用 info")
		level = log.InfoLevel
	}
	log.SetLevel(level)

	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	s := server.NewServer(cfg.Addr, upgrader, calculator.NewCalculator(cfg))
	s.Serve()
}
