package render

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// SessionView is the wire shape of a session for HTTP and WebSocket clients.
type SessionView struct {
	ID      string                   `json:"id"`
	Board   [entity.BoardSize]string `json:"board"`
	XTurn   bool                     `json:"x_turn"`
	Winner  string                   `json:"winner,omitempty"`
	Draw    bool                     `json:"draw"`
	Status  string                   `json:"status"`
	Banner  string                   `json:"banner,omitempty"`
	PlayerX string                   `json:"player_x"`
	PlayerO string                   `json:"player_o"`
	Guarded bool                     `json:"guarded"`
}

func View(session *entity.Session) SessionView {
	view := SessionView{
		ID:      session.ID,
		XTurn:   session.State.XTurn,
		Winner:  string(session.State.Winner),
		Draw:    session.State.Draw,
		Status:  session.State.Status,
		Banner:  Banner(session),
		PlayerX: session.PlayerX.DisplayName(),
		PlayerO: session.PlayerO.DisplayName(),
		Guarded: session.Guarded,
	}

	for i, mark := range session.State.Board {
		view.Board[i] = string(mark)
	}

	return view
}
