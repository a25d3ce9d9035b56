package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-hub-channel/internal/logger"
	"github.com/MKhiriev/go-hub-channel/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTopic = "hub:abc123"

// okHandler replies "ok" with an empty response to every push except casts
// the test marks as silent.
func okHandler(t *testing.T, silent ...string) func(f frame) [][]byte {
	return func(f frame) [][]byte {
		if f.Topic == phoenixTopic {
			return [][]byte{replyFrame(t, f, models.ReplyStatusOK, map[string]any{})}
		}
		for _, s := range silent {
			if f.Event == s {
				return nil
			}
		}
		return [][]byte{replyFrame(t, f, models.ReplyStatusOK, map[string]any{})}
	}
}

func dialTestSocket(t *testing.T, hub *fakeHub, cfg SocketConfig) *Socket {
	t.Helper()
	cfg.URL = hub.socketURL()

	s, err := Dial(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Disconnect() })

	return s
}

func nextFrame(t *testing.T, hub *fakeHub, event string) frame {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case f := <-hub.received:
			if f.Event == event {
				return f
			}
		case <-timeout:
			t.Fatalf("no %q frame received", event)
			return frame{}
		}
	}
}

func TestSocket_DialSendsVersionAndParams(t *testing.T) {
	hub := newFakeHub(t, okHandler(t))
	dialTestSocket(t, hub, SocketConfig{Params: map[string]string{"session_token": "s1"}})

	query := <-hub.query
	assert.Contains(t, query, "vsn=2.0.0")
	assert.Contains(t, query, "session_token=s1")
}

func TestSocket_JoinAndPush(t *testing.T) {
	hub := newFakeHub(t, func(f frame) [][]byte {
		switch f.Event {
		case eventJoin:
			return [][]byte{replyFrame(t, f, models.ReplyStatusOK, map[string]any{"session_id": "me"})}
		case "get_host":
			return [][]byte{replyFrame(t, f, models.ReplyStatusOK, map[string]any{"host": "media.local", "port": 443})}
		}
		return nil
	})
	s := dialTestSocket(t, hub, SocketConfig{RequestTimeout: 2 * time.Second})

	ch := s.Channel(testTopic, map[string]any{"profile": map[string]any{"displayName": "Jo"}})
	assert.Equal(t, testTopic, ch.Topic())

	joinReply, err := ch.Join(context.Background())
	require.NoError(t, err)
	var joined struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, joinReply.Decode(&joined))
	assert.Equal(t, "me", joined.SessionID)

	joinFrame := nextFrame(t, hub, eventJoin)
	assert.Equal(t, joinFrame.Ref, joinFrame.JoinRef)
	assert.Equal(t, "Jo", decodePayload(t, joinFrame.Payload)["profile"].(map[string]any)["displayName"])

	reply, err := ch.Push(context.Background(), "get_host", nil)
	require.NoError(t, err)
	var host models.HostInfo
	require.NoError(t, reply.Decode(&host))
	assert.Equal(t, "media.local", host.Host)
	assert.Equal(t, 443, host.Port)

	hostFrame := nextFrame(t, hub, "get_host")
	assert.Equal(t, joinFrame.JoinRef, hostFrame.JoinRef)
	assert.NotEqual(t, joinFrame.Ref, hostFrame.Ref)
}

func TestSocket_JoinErrorReply(t *testing.T) {
	hub := newFakeHub(t, func(f frame) [][]byte {
		return [][]byte{replyFrame(t, f, models.ReplyStatusError, map[string]any{"reason": "closed"})}
	})
	s := dialTestSocket(t, hub, SocketConfig{})

	_, err := s.Channel(testTopic, nil).Join(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReply)
	assert.Equal(t, "closed", ReplyReason(err))
}

func TestSocket_PushErrorReply(t *testing.T) {
	hub := newFakeHub(t, func(f frame) [][]byte {
		if f.Event == "sign_in" {
			return [][]byte{replyFrame(t, f, models.ReplyStatusError, map[string]any{"reason": "invalid_token"})}
		}
		return [][]byte{replyFrame(t, f, models.ReplyStatusOK, map[string]any{})}
	})
	s := dialTestSocket(t, hub, SocketConfig{})
	ch := s.Channel(testTopic, nil)
	_, err := ch.Join(context.Background())
	require.NoError(t, err)

	reply, err := ch.Push(context.Background(), "sign_in", map[string]any{"token": "bad"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReply)
	assert.Equal(t, "invalid_token", ReplyReason(err))
	assert.Equal(t, models.ReplyStatusError, reply.Status)
	assert.Contains(t, err.Error(), "sign_in")
}

func TestSocket_Cast(t *testing.T) {
	hub := newFakeHub(t, okHandler(t))
	s := dialTestSocket(t, hub, SocketConfig{})
	ch := s.Channel(testTopic, nil)
	_, err := ch.Join(context.Background())
	require.NoError(t, err)

	require.NoError(t, ch.Cast("mute", map[string]any{"session_id": "peer-1"}))

	f := nextFrame(t, hub, "mute")
	assert.Equal(t, testTopic, f.Topic)
	assert.NotEmpty(t, f.JoinRef)
	assert.Equal(t, "peer-1", decodePayload(t, f.Payload)["session_id"])
}

func TestSocket_CastNilPayloadIsEmptyObject(t *testing.T) {
	hub := newFakeHub(t, okHandler(t))
	s := dialTestSocket(t, hub, SocketConfig{})
	ch := s.Channel(testTopic, nil)

	require.NoError(t, ch.Cast("favorite", nil))

	f := nextFrame(t, hub, "favorite")
	assert.JSONEq(t, `{}`, string(f.Payload))
}

func TestSocket_ServerPushDispatchedToHandlers(t *testing.T) {
	hub := newFakeHub(t, func(f frame) [][]byte {
		out := [][]byte{replyFrame(t, f, models.ReplyStatusOK, map[string]any{})}
		if f.Event == eventJoin {
			out = append(out, pushFrame(t, testTopic, "hub_refresh", map[string]any{"stale_fields": []string{"name"}}))
			out = append(out, pushFrame(t, "hub:other", "hub_refresh", map[string]any{}))
		}
		return out
	})
	s := dialTestSocket(t, hub, SocketConfig{})
	ch := s.Channel(testTopic, nil)

	got := make(chan json.RawMessage, 2)
	ch.On("hub_refresh", func(payload json.RawMessage) { got <- payload })

	_, err := ch.Join(context.Background())
	require.NoError(t, err)

	select {
	case payload := <-got:
		assert.JSONEq(t, `{"stale_fields":["name"]}`, string(payload))
	case <-time.After(2 * time.Second):
		t.Fatal("handler not called")
	}

	select {
	case <-got:
		t.Fatal("frame for another topic must not reach this channel")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestChannel_LeaveStopsDelivery(t *testing.T) {
	hub := newFakeHub(t, func(f frame) [][]byte {
		out := [][]byte{replyFrame(t, f, models.ReplyStatusOK, map[string]any{})}
		if f.Event == "ping" {
			out = append(out,
				pushFrame(t, testTopic, "hub_refresh", map[string]any{}),
				pushFrame(t, "hub:watch", "hub_refresh", map[string]any{}),
			)
		}
		return out
	})
	s := dialTestSocket(t, hub, SocketConfig{})

	left := s.Channel(testTopic, nil)
	leftGot := make(chan struct{}, 1)
	left.On("hub_refresh", func(json.RawMessage) { leftGot <- struct{}{} })
	_, err := left.Join(context.Background())
	require.NoError(t, err)
	require.NoError(t, left.Leave(context.Background()))
	nextFrame(t, hub, eventLeave)

	watch := s.Channel("hub:watch", nil)
	watchGot := make(chan struct{}, 1)
	watch.On("hub_refresh", func(json.RawMessage) { watchGot <- struct{}{} })
	_, err = watch.Join(context.Background())
	require.NoError(t, err)

	require.NoError(t, watch.Cast("ping", nil))

	select {
	case <-watchGot:
	case <-time.After(2 * time.Second):
		t.Fatal("frame for a joined topic not delivered")
	}
	select {
	case <-leftGot:
		t.Fatal("frame delivered to a channel after leave")
	default:
	}
}

func TestChannel_LeaveKeepsReplacementChannel(t *testing.T) {
	hub := newFakeHub(t, okHandler(t))
	s := dialTestSocket(t, hub, SocketConfig{})

	old := s.Channel(testTopic, nil)
	replacement := s.Channel(testTopic, nil)
	require.NoError(t, old.Leave(context.Background()))

	s.mu.Lock()
	registered := s.channels[testTopic]
	s.mu.Unlock()
	assert.Same(t, replacement, registered)
}

func TestSocket_RequestTimeout(t *testing.T) {
	hub := newFakeHub(t, okHandler(t, "slow"))
	s := dialTestSocket(t, hub, SocketConfig{RequestTimeout: 50 * time.Millisecond})
	ch := s.Channel(testTopic, nil)

	_, err := ch.Push(context.Background(), "slow", nil)
	assert.ErrorIs(t, err, ErrReplyTimeout)
}

func TestSocket_ContextCanceled(t *testing.T) {
	hub := newFakeHub(t, okHandler(t, "slow"))
	s := dialTestSocket(t, hub, SocketConfig{})
	ch := s.Channel(testTopic, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := ch.Push(ctx, "slow", nil)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestSocket_Heartbeat(t *testing.T) {
	hub := newFakeHub(t, okHandler(t))
	dialTestSocket(t, hub, SocketConfig{HeartbeatInterval: 10 * time.Millisecond})

	f := nextFrame(t, hub, eventHeartbeat)
	assert.Equal(t, phoenixTopic, f.Topic)
	assert.Empty(t, f.JoinRef)
}

func TestSocket_Disconnect(t *testing.T) {
	hub := newFakeHub(t, okHandler(t))
	s := dialTestSocket(t, hub, SocketConfig{})
	ch := s.Channel(testTopic, nil)

	require.NoError(t, ch.Disconnect())

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("socket not closed")
	}
	assert.NoError(t, s.Err())

	_, err := ch.Push(context.Background(), "get_host", nil)
	assert.ErrorIs(t, err, ErrSocketClosed)
	assert.ErrorIs(t, ch.Cast("mute", nil), ErrSocketClosed)

	// second disconnect is a no-op
	assert.NoError(t, s.Disconnect())
}

func TestSocket_ServerGoneFailsPendingPush(t *testing.T) {
	hub := newFakeHub(t, okHandler(t))
	s := dialTestSocket(t, hub, SocketConfig{})
	ch := s.Channel(testTopic, nil)

	errCh := make(chan error, 1)
	go func() {
		_, err := ch.Push(context.Background(), dropConnectionEvent, nil)
		errCh <- err
	}()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, ErrSocketClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("pending push not released")
	}
}

func TestChannel_Params(t *testing.T) {
	hub := newFakeHub(t, okHandler(t))
	s := dialTestSocket(t, hub, SocketConfig{})

	params := map[string]any{"perms_token": "p", "auth_token": "a", "context": "ctx"}
	ch := s.Channel(testTopic, params)

	// the channel owns a copy
	params["context"] = "changed"
	assert.Equal(t, "ctx", ch.Params()["context"])

	ch.DeleteParams("perms_token", "auth_token", "missing")
	assert.Equal(t, map[string]any{"context": "ctx"}, ch.Params())

	// returned params are a copy too
	ch.Params()["context"] = "mutated"
	assert.Equal(t, "ctx", ch.Params()["context"])
}

func TestSocketEndpoint(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		params  map[string]string
		want    string
		wantErr bool
	}{
		{name: "https to wss", raw: "https://hubs.local/socket", want: "wss://hubs.local/socket/websocket?vsn=2.0.0"},
		{name: "http to ws", raw: "http://localhost:4000/socket", want: "ws://localhost:4000/socket/websocket?vsn=2.0.0"},
		{name: "already websocket", raw: "wss://hubs.local/socket/websocket", want: "wss://hubs.local/socket/websocket?vsn=2.0.0"},
		{name: "trailing slash", raw: "wss://hubs.local/socket/", want: "wss://hubs.local/socket/websocket?vsn=2.0.0"},
		{name: "with params", raw: "wss://hubs.local/socket", params: map[string]string{"a": "1"}, want: "wss://hubs.local/socket/websocket?a=1&vsn=2.0.0"},
		{name: "bad scheme", raw: "ftp://hubs.local", wantErr: true},
		{name: "no host", raw: "wss:///socket", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := socketEndpoint(tt.raw, tt.params)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDial_Unreachable(t *testing.T) {
	_, err := Dial(context.Background(), SocketConfig{URL: "ws://127.0.0.1:1/socket"}, logger.Nop())
	assert.Error(t, err)
}
