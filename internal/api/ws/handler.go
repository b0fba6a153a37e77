package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/filebridge/backend/internal/infrastructure/logging"
	"github.com/filebridge/backend/internal/infrastructure/monitoring"
	"github.com/filebridge/backend/internal/rpc"
	"github.com/filebridge/backend/internal/shared/id"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// Handler accepts WebSocket upgrades and runs one isolated message loop
// per connection. No connection limit or back-pressure is imposed here.
type Handler struct {
	dispatcher      *rpc.Dispatcher
	logger          *logging.Logger
	metrics         *monitoring.Metrics
	maxMessageBytes int64
}

// NewHandler creates a WebSocket handler routing frames to the dispatcher.
func NewHandler(dispatcher *rpc.Dispatcher, logger *logging.Logger, metrics *monitoring.Metrics) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// WithMaxMessageBytes caps inbound frame size; 0 disables the cap.
func (h *Handler) WithMaxMessageBytes(n int64) *Handler {
	h.maxMessageBytes = n
	return h
}

// HandleConnection upgrades the HTTP request and serves the connection
// until the peer closes or the transport errors. net/http already gives
// each connection its own goroutine, so the loop runs inline.
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("WebSocket upgrade failed", zap.Error(err))
		return
	}

	connID := id.NextConnID()
	logger := h.logger.With(zap.Uint64("conn_id", uint64(connID)))
	logger.Info("Connection opened", zap.String("remote", conn.RemoteAddr().String()))

	h.serve(conn, logger)
}

// serve owns both directions of the socket exclusively. Requests are
// processed strictly sequentially: the next frame is not read until the
// previous response has been written.
func (h *Handler) serve(conn *websocket.Conn, logger *logging.Logger) {
	defer conn.Close()

	h.metrics.ConnectionOpened()
	defer h.metrics.ConnectionClosed()

	if h.maxMessageBytes > 0 {
		conn.SetReadLimit(h.maxMessageBytes)
	}

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("Receive error", zap.Error(err))
			} else {
				logger.Info("Connection closed")
			}
			return
		}

		h.metrics.RecordFrame(frameKind(msgType))
		if msgType != websocket.TextMessage {
			// Non-text frames carry no request; skip without responding.
			continue
		}

		resp := h.handleFrame(data, logger)

		payload, err := rpc.Encode(resp)
		if err != nil {
			// The response for this one request is dropped; the
			// connection stays open for the next frame.
			logger.Error("Failed to encode response", zap.Error(err))
			continue
		}

		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logger.Warn("Send error", zap.Error(err))
			return
		}
	}
}

// handleFrame turns one text frame into exactly one response. Decode
// failures become a parse-error response with a null id; everything else
// goes through the dispatcher.
func (h *Handler) handleFrame(data []byte, logger *logging.Logger) *rpc.Response {
	req, err := rpc.Decode(data)
	if err != nil {
		logger.Debug("Frame decode failed", zap.Error(err))
		h.metrics.RecordRPC("unknown", "parse_error", 0)
		return rpc.NewParseError()
	}

	start := time.Now()
	resp := h.dispatcher.Dispatch(req)
	duration := time.Since(start)

	reqLogger := logger.With(
		zap.String("request_id", id.NewRequestID().String()),
		zap.String("method", req.Method),
	)
	if resp.Error != nil {
		h.metrics.RecordRPC(req.Method, "error", duration)
		reqLogger.Warn("Request failed",
			zap.Int("code", resp.Error.Code),
			zap.String("message", resp.Error.Message),
		)
	} else {
		h.metrics.RecordRPC(req.Method, "success", duration)
		reqLogger.Info("Request processed", zap.Duration("duration", duration))
	}
	return resp
}

// frameKind labels a data frame for metrics. ReadMessage handles control
// frames (ping/pong/close) internally and only ever yields data frames.
func frameKind(msgType int) string {
	switch msgType {
	case websocket.TextMessage:
		return "text"
	case websocket.BinaryMessage:
		return "binary"
	default:
		return "other"
	}
}
