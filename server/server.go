package server

import (
	"net/http"

	"gascalc/calculator"
	"gascalc/model"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	calc     calculator.Calculator
}

func NewServer(addr string, upgrader websocket.Upgrader, calc calculator.Calculator) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
		calc:     calc,
	}
}

// serveWs handles websocket requests from the peer.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithField("err", err).Error("websocket 升级失败")
		return
	}
	defer conn.Close()

	hub := NewHub(s.calc, conn)
	defer hub.Close()
	go hub.handleRequest()
	go hub.handleResponse()

	log.WithField("remote", r.RemoteAddr).Info("客户端已连接")
	for {
		var msg model.Msg
		err = conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithField("err", err).Warn("读取消息失败")
			}
			log.WithField("remote", r.RemoteAddr).Info("客户端已断开")
			return
		}
		if !hub.send(msg) {
			return
		}
	}
}

// Handler 返回注册了 /ws 的路由
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	return mux
}

func (s *Server) Serve() {
	log.WithField("addr", s.addr).Info("服务启动")
	err := http.ListenAndServe(s.addr, s.Handler())
	if err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
