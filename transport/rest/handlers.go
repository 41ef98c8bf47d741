package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
)

const maxBodySize = 1 << 10

type createRequest struct {
	PlayerX string `json:"player_x"`
	PlayerO string `json:"player_o"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type SessionHandler struct {
	logger   *slog.Logger
	sessions sessionUseCase
}

func NewSessionHandler(logger *slog.Logger, sessions sessionUseCase) *SessionHandler {
	return &SessionHandler{
		logger:   logger.With("component", "rest"),
		sessions: sessions,
	}
}

func (that *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	// names are optional, so an empty body is fine
	var req createRequest
	if err := decodeBody(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	session, err := that.sessions.NewSession(r.Context(), req.PlayerX, req.PlayerO)
	if err != nil {
		that.writeError(w, "Create", err)
		return
	}

	writeJSON(w, http.StatusCreated, render.View(session))
}

func (that *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := that.sessions.GetSession(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "Get", err)
		return
	}

	writeJSON(w, http.StatusOK, render.View(session))
}

func (that *SessionHandler) TakeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decodeBody(w, r, &req); err != nil || req.Cell == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be {\"cell\": <0-8>}"})
		return
	}

	session, err := that.sessions.TakeTurn(r.Context(), r.PathValue("id"), *req.Cell)
	if err != nil {
		that.writeError(w, "TakeTurn", err)
		return
	}

	writeJSON(w, http.StatusOK, render.View(session))
}

func (that *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	session, err := that.sessions.ResetGame(r.Context(), r.PathValue("id"))
	if err != nil {
		that.writeError(w, "Reset", err)
		return
	}

	writeJSON(w, http.StatusOK, render.View(session))
}

func (that *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := that.sessions.EndSession(r.Context(), r.PathValue("id")); err != nil {
		that.writeError(w, "Delete", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *SessionHandler) writeError(w http.ResponseWriter, method string, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "method", method, "error", err)
		writeJSON(w, status, errorResponse{Error: "Internal Server Error"})
		return
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// StatusFor - maps domain errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidIndex):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrCellOccupied):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrSessionNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	decoder.DisallowUnknownFields()

	return decoder.Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
