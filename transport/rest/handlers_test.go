package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

func newTestServer(t *testing.T, opts ...usecase.Option) *httptest.Server {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	manager := usecase.NewSessionManager(logger, repository.NewMemorySessionRepository(time.Minute), opts...)

	server := httptest.NewServer(NewRouter(logger, manager))
	t.Cleanup(server.Close)

	return server
}

func doRequest(t *testing.T, method, url, body string) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, raw
}

func createSession(t *testing.T, server *httptest.Server, body string) render.SessionView {
	t.Helper()

	status, raw := doRequest(t, http.MethodPost, server.URL+"/sessions", body)
	require.Equal(t, http.StatusCreated, status, string(raw))

	var view render.SessionView
	require.NoError(t, json.Unmarshal(raw, &view))

	return view
}

func takeTurn(t *testing.T, server *httptest.Server, id, body string) (int, render.SessionView) {
	t.Helper()

	status, raw := doRequest(t, http.MethodPost, server.URL+"/sessions/"+id+"/turn", body)

	var view render.SessionView
	if status == http.StatusOK {
		require.NoError(t, json.Unmarshal(raw, &view))
	}

	return status, view
}

func TestPing(t *testing.T) {
	server := newTestServer(t)

	status, body := doRequest(t, http.MethodGet, server.URL+"/ping", "")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pong", string(body))
}

func TestSessionHandler_Create(t *testing.T) {
	t.Run("With player names", func(t *testing.T) {
		server := newTestServer(t)

		view := createSession(t, server, `{"player_x":"Alice","player_o":"Bob"}`)

		assert.NotEmpty(t, view.ID)
		assert.Equal(t, "Alice", view.PlayerX)
		assert.Equal(t, "Bob", view.PlayerO)
		assert.True(t, view.XTurn)
		assert.Equal(t, "ongoing", view.Status)
	})

	t.Run("Without a body names default to symbols", func(t *testing.T) {
		server := newTestServer(t)

		view := createSession(t, server, "")

		assert.Equal(t, "X", view.PlayerX)
		assert.Equal(t, "O", view.PlayerO)
	})

	t.Run("Malformed body", func(t *testing.T) {
		server := newTestServer(t)

		status, _ := doRequest(t, http.MethodPost, server.URL+"/sessions", `{"player_x":`)

		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestSessionHandler_TakeTurn(t *testing.T) {
	t.Run("Plays to a win with a banner", func(t *testing.T) {
		// Given: a session with named players
		server := newTestServer(t)
		session := createSession(t, server, `{"player_x":"alice"}`)

		// When: X@0, O@1, X@4, O@2, X@8 are played
		var view render.SessionView
		for _, cell := range []string{"0", "1", "4", "2", "8"} {
			var status int
			status, view = takeTurn(t, server, session.ID, `{"cell":`+cell+`}`)
			require.Equal(t, http.StatusOK, status)
		}

		// Then: X wins and the banner uses the player's name
		assert.Equal(t, "X", view.Winner)
		assert.Equal(t, "won", view.Status)
		assert.Equal(t, "ALICE WINS", view.Banner)
		assert.Equal(t, [9]string{"X", "O", "O", "", "X", "", "", "", "X"}, view.Board)

		// When: another turn is sent
		status, after := takeTurn(t, server, session.ID, `{"cell":3}`)

		// Then: it is accepted and nothing changes
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, view, after)
	})

	t.Run("Out of range cell", func(t *testing.T) {
		server := newTestServer(t)
		session := createSession(t, server, "")

		status, _ := takeTurn(t, server, session.ID, `{"cell":9}`)

		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("Missing cell", func(t *testing.T) {
		server := newTestServer(t)
		session := createSession(t, server, "")

		status, _ := takeTurn(t, server, session.ID, `{}`)

		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("Occupied cell with the guard", func(t *testing.T) {
		server := newTestServer(t, usecase.WithOccupiedCellGuard(true))
		session := createSession(t, server, "")

		status, _ := takeTurn(t, server, session.ID, `{"cell":0}`)
		require.Equal(t, http.StatusOK, status)

		status, _ = takeTurn(t, server, session.ID, `{"cell":0}`)
		assert.Equal(t, http.StatusConflict, status)
	})

	t.Run("Unknown session", func(t *testing.T) {
		server := newTestServer(t)

		status, _ := takeTurn(t, server, "missing", `{"cell":0}`)

		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestSessionHandler_ResetAndDelete(t *testing.T) {
	// Given: a session with a move played
	server := newTestServer(t)
	session := createSession(t, server, "")
	status, _ := takeTurn(t, server, session.ID, `{"cell":4}`)
	require.Equal(t, http.StatusOK, status)

	// When: the game is reset
	status, raw := doRequest(t, http.MethodPost, server.URL+"/sessions/"+session.ID+"/reset", "")
	require.Equal(t, http.StatusOK, status)

	// Then: the board is empty and X moves
	var view render.SessionView
	require.NoError(t, json.Unmarshal(raw, &view))
	assert.Equal(t, [9]string{}, view.Board)
	assert.True(t, view.XTurn)

	// When: the session is deleted
	status, _ = doRequest(t, http.MethodDelete, server.URL+"/sessions/"+session.ID, "")
	require.Equal(t, http.StatusNoContent, status)

	// Then: it can no longer be fetched
	status, _ = doRequest(t, http.MethodGet, server.URL+"/sessions/"+session.ID, "")
	assert.Equal(t, http.StatusNotFound, status)
}
