package server

import (
	"encoding/json"
	"sync"

	"gascalc/calculator"
	"gascalc/model"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Hub 处理一个连接上的请求与响应，响应只在 handleResponse 中写出
type Hub struct {
	c    calculator.Calculator
	conn *websocket.Conn
	// request
	msg chan model.Msg
	// response
	reply chan model.Msg

	done      chan struct{}
	closeOnce sync.Once
}

func NewHub(c calculator.Calculator, conn *websocket.Conn) *Hub {
	return &Hub{
		c:     c,
		conn:  conn,
		msg:   make(chan model.Msg, 10),
		reply: make(chan model.Msg, 10),
		done:  make(chan struct{}),
	}
}

func (h *Hub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
}

func (h *Hub) send(msg model.Msg) bool {
	select {
	case h.msg <- msg:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) handleResponse() {
	for {
		select {
		case reply := <-h.reply:
			err := h.conn.WriteJSON(&reply)
			if err != nil {
				log.WithFields(log.Fields{
					"type": reply.Type,
					"err":  err,
				}).Warn("发送消息失败")
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handleRequest() {
	for {
		select {
		case msg := <-h.msg:
			reply := h.handle(msg)
			select {
			case h.reply <- reply:
			case <-h.done:
				return
			}
		case <-h.done:
			return
		}
	}
}

func (h *Hub) handle(msg model.Msg) model.Msg {
	switch msg.Type {
	case model.TypeDensity:
		var req model.DensityReq
		if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
			return errorMsg(err)
		}
		resp, err := h.c.Density(req)
		if err != nil {
			return errorMsg(err)
		}
		return jsonMsg(model.TypeDensityCalculated, resp)
	case model.TypeTable:
		var req model.TableReq
		if err := json.Unmarshal([]byte(msg.Content), &req); err != nil {
			return errorMsg(err)
		}
		gas, err := calculator.ParseGasType(req.Gas)
		if err != nil {
			return errorMsg(err)
		}
		table, err := h.c.BuildTable(gas)
		if err != nil {
			return errorMsg(err)
		}
		return jsonMsg(model.TypeTableBuilt, model.TableResp{
			Gas:          string(table.Gas),
			Temperatures: table.Temperatures,
			Pressures:    table.Pressures,
			Density:      table.Density,
		})
	case model.TypeGases:
		return jsonMsg(model.TypeGasList, h.c.Gases())
	default:
		log.WithField("type", msg.Type).Warn("no such type")
		return model.Msg{
			Type:    model.TypeError,
			Content: "no such type: " + msg.Type,
		}
	}
}

func jsonMsg(typ string, v interface{}) model.Msg {
	data, err := json.Marshal(v)
	if err != nil {
		return errorMsg(err)
	}
	return model.Msg{
		Type:    typ,
		Content: string(data),
	}
}

func errorMsg(err error) model.Msg {
	return model.Msg{
		Type:    model.TypeError,
		Content: err.Error(),
	}
}
