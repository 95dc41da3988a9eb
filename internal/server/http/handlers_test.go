package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"aimax/internal/engine"
	"aimax/internal/server/game"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mgr := game.NewManager(nil, engine.SearchConfig{FixedDepth: 1, Yield: func() {}})
	srv := httptest.NewServer(NewRouter(NewHandler(mgr, NewHub()), StaticDirs{}))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return resp.StatusCode
}

func createGame(t *testing.T, srv *httptest.Server, mode string) GameResponse {
	t.Helper()
	var g GameResponse
	if code := doJSON(t, http.MethodPost, srv.URL+"/api/games", CreateGameRequest{Mode: mode}, &g); code != http.StatusOK {
		t.Fatalf("create game: status %d", code)
	}
	if g.ID == "" || len(g.LegalMoves) != 46 {
		t.Fatalf("unexpected new game %+v", g.State)
	}
	return g
}

func TestPing(t *testing.T) {
	srv := newTestServer(t)
	var out map[string]bool
	if code := doJSON(t, http.MethodGet, srv.URL+"/api/ping", nil, &out); code != http.StatusOK || !out["ok"] {
		t.Fatalf("ping: %d %v", code, out)
	}
}

func TestPlayFlow(t *testing.T) {
	srv := newTestServer(t)
	g := createGame(t, srv, "online")
	base := srv.URL + "/api/games/" + g.ID

	var got GameResponse
	move := MoveRequest{From: game.Coord{R: 3, C: 4}, To: game.Coord{R: 4, C: 4}}
	if code := doJSON(t, http.MethodPost, base+"/moves", move, &got); code != http.StatusOK {
		t.Fatalf("move: status %d", code)
	}
	if got.SideToMove != "black" || len(got.History) != 1 || got.AI != nil {
		t.Fatalf("unexpected state after move %+v", got)
	}

	var e ErrorResponse
	illegal := MoveRequest{From: game.Coord{R: 9, C: 0}, To: game.Coord{R: 0, C: 0}}
	if code := doJSON(t, http.MethodPost, base+"/moves", illegal, &e); code != http.StatusBadRequest || e.Error == "" {
		t.Fatalf("illegal move: status %d %+v", code, e)
	}

	var again GameResponse
	if code := doJSON(t, http.MethodGet, base, nil, &again); code != http.StatusOK || again.FEN != got.FEN {
		t.Fatalf("get game: status %d fen %q", code, again.FEN)
	}
}

func TestPlayerVsAIReplies(t *testing.T) {
	srv := newTestServer(t)
	g := createGame(t, srv, "player_vs_ai")

	var got GameResponse
	move := MoveRequest{From: game.Coord{R: 3, C: 4}, To: game.Coord{R: 4, C: 4}}
	if code := doJSON(t, http.MethodPost, srv.URL+"/api/games/"+g.ID+"/moves", move, &got); code != http.StatusOK {
		t.Fatalf("move: status %d", code)
	}
	if got.AI == nil || len(got.AI.Moves) != 1 {
		t.Fatalf("expected an engine reply, got %+v", got.AI)
	}
	if got.SideToMove != "red" || len(got.History) != 2 {
		t.Fatalf("unexpected state %+v", got.State)
	}
}

func TestAIEndpoint(t *testing.T) {
	srv := newTestServer(t)
	g := createGame(t, srv, "ai_vs_ai")
	var got GameResponse
	if code := doJSON(t, http.MethodPost, srv.URL+"/api/games/"+g.ID+"/ai", nil, &got); code != http.StatusOK {
		t.Fatalf("ai: status %d", code)
	}
	if got.AI == nil || got.AI.Depth != 1 || got.SideToMove != "black" {
		t.Fatalf("unexpected ai response %+v", got)
	}
}

func TestPeerSnapshotMismatch(t *testing.T) {
	srv := newTestServer(t)
	g := createGame(t, srv, "online")
	pm := game.PeerMove{
		From:  game.Coord{R: 3, C: 4},
		To:    game.Coord{R: 4, C: 4},
		Board: "9/9/9/9/9/9/9/9/9/9",
	}
	var e ErrorResponse
	if code := doJSON(t, http.MethodPost, srv.URL+"/api/games/"+g.ID+"/peer", pm, &e); code != http.StatusConflict {
		t.Fatalf("peer mismatch: status %d %+v", code, e)
	}
	pm.Board = ""
	var got GameResponse
	if code := doJSON(t, http.MethodPost, srv.URL+"/api/games/"+g.ID+"/peer", pm, &got); code != http.StatusOK {
		t.Fatalf("peer move: status %d", code)
	}
	if got.SideToMove != "black" {
		t.Fatalf("unexpected state %+v", got.State)
	}
}

func TestErrors(t *testing.T) {
	srv := newTestServer(t)
	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"unknown game", http.MethodGet, "/api/games/nope", nil, http.StatusNotFound},
		{"unknown game move", http.MethodPost, "/api/games/nope/moves", MoveRequest{}, http.StatusNotFound},
		{"bad mode", http.MethodPost, "/api/games", CreateGameRequest{Mode: "blitz"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e ErrorResponse
			if code := doJSON(t, tt.method, srv.URL+tt.path, tt.body, &e); code != tt.want {
				t.Fatalf("status %d, want %d (%+v)", code, tt.want, e)
			}
		})
	}

	resp, err := http.Post(srv.URL+"/api/games", "application/json", strings.NewReader("{"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad json: status %d", resp.StatusCode)
	}
}

func TestWebsocketPushesState(t *testing.T) {
	srv := newTestServer(t)
	g := createGame(t, srv, "online")

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/games/" + g.ID + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	read := func() wsMessage {
		t.Helper()
		conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read: %v", err)
		}
		return msg
	}

	if msg := read(); msg.Type != "state" {
		t.Fatalf("first message %q, want state", msg.Type)
	}

	if err := conn.WriteJSON(wsMessage{Type: "ping"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if msg := read(); msg.Type != "pong" {
		t.Fatalf("got %q, want pong", msg.Type)
	}

	move := MoveRequest{From: game.Coord{R: 3, C: 4}, To: game.Coord{R: 4, C: 4}}
	if code := doJSON(t, http.MethodPost, srv.URL+"/api/games/"+g.ID+"/moves", move, nil); code != http.StatusOK {
		t.Fatalf("move: status %d", code)
	}
	msg := read()
	if msg.Type != "state" {
		t.Fatalf("got %q, want state", msg.Type)
	}
	var st game.State
	if err := json.Unmarshal(msg.Payload, &st); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if st.SideToMove != "black" {
		t.Fatalf("pushed state %+v", st)
	}
}

func TestModeConflicts(t *testing.T) {
	srv := newTestServer(t)
	auto := createGame(t, srv, "ai_vs_ai")
	pva := createGame(t, srv, "player_vs_ai")

	move := MoveRequest{From: game.Coord{R: 3, C: 4}, To: game.Coord{R: 4, C: 4}}
	var e ErrorResponse
	if code := doJSON(t, http.MethodPost, srv.URL+"/api/games/"+auto.ID+"/moves", move, &e); code != http.StatusConflict {
		t.Fatalf("move in ai_vs_ai: status %d %+v", code, e)
	}
	pm := game.PeerMove{From: move.From, To: move.To}
	if code := doJSON(t, http.MethodPost, srv.URL+"/api/games/"+pva.ID+"/peer", pm, &e); code != http.StatusConflict {
		t.Fatalf("peer in player_vs_ai: status %d %+v", code, e)
	}
	if code := doJSON(t, http.MethodPost, srv.URL+"/api/games/"+pva.ID+"/ai", nil, &e); code != http.StatusConflict {
		t.Fatalf("ai on the human turn: status %d %+v", code, e)
	}

	var got GameResponse
	if code := doJSON(t, http.MethodGet, srv.URL+"/api/games/"+pva.ID, nil, &got); code != http.StatusOK || len(got.History) != 0 {
		t.Fatalf("rejected requests changed the game: %d %+v", code, got.History)
	}
}

func TestRestartAndDelete(t *testing.T) {
	srv := newTestServer(t)
	g := createGame(t, srv, "online")
	base := srv.URL + "/api/games/" + g.ID

	move := MoveRequest{From: game.Coord{R: 3, C: 4}, To: game.Coord{R: 4, C: 4}}
	if code := doJSON(t, http.MethodPost, base+"/moves", move, nil); code != http.StatusOK {
		t.Fatalf("move: status %d", code)
	}
	var got GameResponse
	if code := doJSON(t, http.MethodPost, base+"/restart", nil, &got); code != http.StatusOK {
		t.Fatalf("restart: status %d", code)
	}
	if got.FEN != g.FEN || len(got.History) != 0 || got.SideToMove != "red" {
		t.Fatalf("unexpected state after restart %+v", got.State)
	}

	if code := doJSON(t, http.MethodDelete, base, nil, nil); code != http.StatusNoContent {
		t.Fatalf("delete: status %d", code)
	}
	var e ErrorResponse
	if code := doJSON(t, http.MethodGet, base, nil, &e); code != http.StatusNotFound {
		t.Fatalf("get after delete: status %d", code)
	}
	if code := doJSON(t, http.MethodDelete, base, nil, &e); code != http.StatusNotFound {
		t.Fatalf("second delete: status %d", code)
	}
}
