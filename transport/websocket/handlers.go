package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
)

var errBadPayload = errors.New("payload must be {\"cell\": <0-8>}")

func (that *Server) handleState(ctx context.Context, sessionID string, _ *Message) (*entity.Session, error) {
	session, err := that.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (that *Server) handleTurn(ctx context.Context, sessionID string, message *Message) (*entity.Session, error) {
	var payload TurnPayload
	if err := json.Unmarshal(message.Payload, &payload); err != nil || payload.Cell == nil {
		return nil, errBadPayload
	}

	session, err := that.sessions.TakeTurn(ctx, sessionID, *payload.Cell)
	if err != nil {
		return nil, fmt.Errorf("failed to take turn: %w", err)
	}

	return session, nil
}

func (that *Server) handleReset(ctx context.Context, sessionID string, _ *Message) (*entity.Session, error) {
	session, err := that.sessions.ResetGame(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to reset game: %w", err)
	}

	return session, nil
}

func newSessionResponse(action string, session *entity.Session) Response {
	view := render.View(session)

	return Response{
		Action:  action,
		Payload: ResponsePayload{Session: &view},
	}
}
