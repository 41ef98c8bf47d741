package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	shutdownTimeout = 5 * time.Second
	writeTimeout    = 10 * time.Second
	maxMessageSize  = 1 << 10
)

type sessionUseCase interface {
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	TakeTurn(ctx context.Context, id string, cell int) (*entity.Session, error)
	ResetGame(ctx context.Context, id string) (*entity.Session, error)
}

type handlerFunc func(ctx context.Context, sessionID string, message *Message) (*entity.Session, error)

type Server struct {
	logger   *slog.Logger
	sessions sessionUseCase
	upgrader websocket.Upgrader

	allowedOrigins []string

	handlers map[string]handlerFunc
}

type Option func(*Server)

// WithAllowedOrigins - origins, besides the server's own, that may open a
// connection. "*" allows any origin.
func WithAllowedOrigins(origins []string) Option {
	return func(server *Server) {
		server.allowedOrigins = origins
	}
}

func New(logger *slog.Logger, sessions sessionUseCase, opts ...Option) *Server {
	server := &Server{
		logger:   logger.With("component", "websocket"),
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  maxMessageSize,
			WriteBufferSize: maxMessageSize,
		},

		handlers: make(map[string]handlerFunc),
	}

	for _, opt := range opts {
		opt(server)
	}

	server.upgrader.CheckOrigin = server.checkOrigin

	server.handlers[actionState] = server.handleState
	server.handlers[actionTurn] = server.handleTurn
	server.handlers[actionReset] = server.handleReset

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveWS - upgrades the connection and runs the read loop for one session.
func (that *Server) serveWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWS")

	sessionID := req.URL.Query().Get("session")
	if sessionID == "" {
		http.Error(writer, "session query parameter is required", http.StatusBadRequest)
		return
	}

	if _, err := that.sessions.GetSession(req.Context(), sessionID); err != nil {
		if errors.Is(err, apperror.ErrSessionNotFound) {
			http.Error(writer, "session not found", http.StatusNotFound)
			return
		}

		log.Error("failed to get session", "error", err)
		http.Error(writer, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		// Upgrade has already replied to the client
		log.Debug("upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)

	log = log.With("session", sessionID)
	log.Info("client connected")

	ctx := req.Context()

	if err = that.dispatch(ctx, conn, sessionID, &Message{Action: actionState}); err != nil {
		log.Error("failed to send initial state", "error", err)
		return
	}

	for {
		var message Message
		if err = conn.ReadJSON(&message); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("failed to read message", "error", err)
			}

			log.Info("client disconnected")
			return
		}

		if err = that.dispatch(ctx, conn, sessionID, &message); err != nil {
			log.Error("failed to write response", "error", err)
			return
		}
	}
}

func (that *Server) dispatch(ctx context.Context, conn *websocket.Conn, sessionID string, message *Message) error {
	handler, ok := that.handlers[message.Action]
	if !ok {
		return that.send(conn, Response{
			Action:  actionError,
			Payload: ResponsePayload{Error: fmt.Sprintf("unknown action %q", message.Action)},
		})
	}

	session, err := handler(ctx, sessionID, message)
	if err != nil {
		return that.send(conn, Response{
			Action:  message.Action,
			Payload: ResponsePayload{Error: that.clientError(err)},
		})
	}

	return that.send(conn, newSessionResponse(message.Action, session))
}

func (that *Server) send(conn *websocket.Conn, response Response) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err := conn.WriteJSON(response); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) clientError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrInvalidIndex),
		errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrSessionNotFound),
		errors.Is(err, errBadPayload):
		return err.Error()
	default:
		that.logger.Error("command failed", "error", err)
		return "internal error"
	}
}
