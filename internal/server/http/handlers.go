package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"aimax/internal/aimax"
	"aimax/internal/server/game"
)

// Handler /api/* 的处理函数，对局都放在 Manager 里
type Handler struct {
	mgr *game.Manager
	hub *Hub
}

func NewHandler(mgr *game.Manager, hub *Hub) *Handler {
	return &Handler{mgr: mgr, hub: hub}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}

// writeError 按错误类型选状态码
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrGameOver), errors.Is(err, game.ErrSnapshotMismatch),
		errors.Is(err, game.ErrNotYourTurn):
		status = http.StatusConflict
	case errors.Is(err, aimax.ErrIllegalMove), errors.Is(err, aimax.ErrInvalidFEN),
		errors.Is(err, game.ErrInvalidMode):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid payload"})
		return false
	}
	return true
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*game.Session, bool) {
	s, err := h.mgr.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return s, true
}

func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req CreateGameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	mode, err := game.ParseMode(req.Mode)
	if err != nil {
		writeError(w, err)
		return
	}
	s, err := h.mgr.Create(mode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, GameResponse{State: s.State()})
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, GameResponse{State: s.State()})
}

// PlayMove 人走一步；人机模式下轮到引擎时接着替它走
func (h *Handler) PlayMove(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var req MoveRequest
	if !decodeBody(w, r, &req) {
		return
	}
	st, err := s.Play(aimax.Move{From: req.From.Square(), To: req.To.Square()})
	if err != nil {
		writeError(w, err)
		return
	}
	h.hub.Broadcast(st)

	resp := GameResponse{State: st}
	st, res, replied, err := s.Reply()
	if err != nil {
		writeError(w, err)
		return
	}
	if replied {
		h.hub.Broadcast(st)
		resp = GameResponse{State: st, AI: aiInfo(res)}
	}
	writeJSON(w, http.StatusOK, resp)
}

// PeerMove 联机对手的一步
func (h *Handler) PeerMove(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	var pm game.PeerMove
	if !decodeBody(w, r, &pm) {
		return
	}
	st, err := s.ApplyPeer(pm)
	if err != nil {
		writeError(w, err)
		return
	}
	h.hub.Broadcast(st)
	writeJSON(w, http.StatusOK, GameResponse{State: st})
}

// AIMove 让引擎替当前执棋方走一手
func (h *Handler) AIMove(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	st, res, err := s.AIMove()
	if err != nil {
		writeError(w, err)
		return
	}
	h.hub.Broadcast(st)
	writeJSON(w, http.StatusOK, GameResponse{State: st, AI: aiInfo(res)})
}

// RestartGame 同一局从头再来
func (h *Handler) RestartGame(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	st, err := s.Restart()
	if err != nil {
		writeError(w, err)
		return
	}
	h.hub.Broadcast(st)
	writeJSON(w, http.StatusOK, GameResponse{State: st})
}

// DeleteGame 离开对局，内存和存储里都删掉
func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := h.mgr.Remove(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
