package adapter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// dropConnectionEvent makes the fake hub close the connection without a
// close frame.
const dropConnectionEvent = "drop_connection"

// fakeHub is a minimal Phoenix v2 server. handle is called for every client
// frame and returns the frames to write back.
type fakeHub struct {
	server   *httptest.Server
	received chan frame
	query    chan string
}

func newFakeHub(t *testing.T, handle func(f frame) [][]byte) *fakeHub {
	t.Helper()

	hub := &fakeHub{
		received: make(chan frame, 128),
		query:    make(chan string, 1),
	}
	upgrader := websocket.Upgrader{}

	r := chi.NewRouter()
	r.Get("/socket/websocket", func(w http.ResponseWriter, r *http.Request) {
		hub.query <- r.URL.RawQuery

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			f, err := decodeFrame(data)
			if err != nil {
				continue
			}
			hub.received <- f
			if f.Event == dropConnectionEvent {
				return
			}

			for _, out := range handle(f) {
				if err = conn.WriteMessage(websocket.TextMessage, out); err != nil {
					return
				}
			}
		}
	})

	hub.server = httptest.NewServer(r)
	t.Cleanup(hub.server.Close)

	return hub
}

// socketURL returns the http:// endpoint; Dial maps it to ws://.
func (h *fakeHub) socketURL() string {
	return h.server.URL + "/socket"
}

func replyFrame(t *testing.T, f frame, status string, response any) []byte {
	t.Helper()
	data, err := encodeFrame(f.JoinRef, f.Ref, f.Topic, eventReply, map[string]any{
		"status":   status,
		"response": response,
	})
	require.NoError(t, err)
	return data
}

func pushFrame(t *testing.T, topic, event string, payload any) []byte {
	t.Helper()
	data, err := encodeFrame("", "", topic, event, payload)
	require.NoError(t, err)
	return data
}

func decodePayload(t *testing.T, raw json.RawMessage) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	return m
}
