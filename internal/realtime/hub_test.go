package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wordgrid/engine/pkg/grid"
)

func TestNewHub(t *testing.T) {
	h := NewHub()
	if h == nil {
		t.Fatal("expected non-nil Hub")
	}
	if len(h.sessions) != 0 {
		t.Error("expected no sessions on a fresh hub")
	}
}

func TestEvent_Serialization(t *testing.T) {
	ev := Event{
		Seq:  3,
		Grid: grid.Event{Kind: grid.Character, Char: 'A'},
	}

	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded Event
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.Seq != ev.Seq {
		t.Errorf("Seq = %d, want %d", decoded.Seq, ev.Seq)
	}
	if decoded.Grid.Char != 'A' {
		t.Errorf("Grid.Char = %q, want %q", decoded.Grid.Char, 'A')
	}
	if decoded.Done {
		t.Error("Done should be omitted/false by default")
	}
}

func TestHub_BroadcastToEmptySession(t *testing.T) {
	h := NewHub()
	// Must not panic or block when nobody is watching.
	h.Broadcast("nonexistent", Event{Seq: 1})

	if got := h.ViewerCount("nonexistent"); got != 0 {
		t.Errorf("ViewerCount() = %d, want 0", got)
	}
}

func newTestServer(t *testing.T, h *Hub, sessionID string) (*httptest.Server, string) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h.Serve(w, r, sessionID); err != nil {
			t.Errorf("Serve() error = %v", err)
		}
	}))
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	return server, wsURL
}

func TestHub_ServeAndBroadcast(t *testing.T) {
	h := NewHub()
	go h.Run()

	server, wsURL := newTestServer(t, h, "session-1")
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()

	waitForViewer(t, h, "session-1", 1)

	h.Broadcast("session-1", Event{Seq: 1, Grid: grid.Event{Kind: grid.Character, Char: 'X'}})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}

	var decoded Event
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if decoded.Grid.Char != 'X' {
		t.Errorf("Grid.Char = %q, want %q", decoded.Grid.Char, 'X')
	}
}

func TestHub_MultipleViewersSameSession(t *testing.T) {
	h := NewHub()
	go h.Run()

	server, wsURL := newTestServer(t, h, "session-shared")
	defer server.Close()

	conn1, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn1.Close()

	conn2, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn2.Close()

	waitForViewer(t, h, "session-shared", 2)

	h.Broadcast("session-shared", Event{Seq: 1})

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		if _, _, err := conn.ReadMessage(); err != nil {
			t.Errorf("ReadMessage() error = %v", err)
		}
	}
}

func TestHub_SessionClearedOnDisconnect(t *testing.T) {
	h := NewHub()
	go h.Run()

	server, wsURL := newTestServer(t, h, "session-closing")
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}

	waitForViewer(t, h, "session-closing", 1)

	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ViewerCount("session-closing") == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("expected session to be cleared after viewer disconnect")
}

func waitForViewer(t *testing.T, h *Hub, sessionID string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if h.ViewerCount(sessionID) == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d viewer(s) on %s", want, sessionID)
}
