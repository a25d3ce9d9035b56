package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-hub-channel/internal/logger"
	"github.com/MKhiriev/go-hub-channel/internal/utils"
	"github.com/MKhiriev/go-hub-channel/models"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 2 * time.Second
	sendBufferSize = 64
)

// SocketConfig configures a websocket connection to the hub server.
type SocketConfig struct {
	// URL is the socket endpoint, e.g. "wss://hubs.example.com/socket".
	// "/websocket" and the protocol version are appended if missing.
	URL string
	// Params are sent as query parameters on connect.
	Params map[string]string
	// Header is sent with the websocket handshake.
	Header http.Header
	// RequestTimeout bounds every acknowledged push. Zero disables it.
	RequestTimeout time.Duration
	// HeartbeatInterval is the period of "phoenix" heartbeats. Zero
	// disables heartbeats.
	HeartbeatInterval time.Duration
}

// Socket multiplexes hub channels over one websocket connection.
// Replies are matched to pushes by ref; all other frames are dispatched to
// the channel registered for their topic.
type Socket struct {
	conn     *websocket.Conn
	cfg      SocketConfig
	logger   *logger.Logger
	traceIDs *utils.UUIDGenerator

	ref atomic.Uint64

	mu       sync.Mutex
	pending  map[string]chan models.Reply
	channels map[string]*WebsocketChannel

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
}

// Dial connects to the socket endpoint and starts the read and write loops.
func Dial(ctx context.Context, cfg SocketConfig, log *logger.Logger) (*Socket, error) {
	endpoint, err := socketEndpoint(cfg.URL, cfg.Params)
	if err != nil {
		return nil, err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, cfg.Header)
	if err != nil {
		log.Err(err).Str("func", "Dial").Str("url", endpoint).Msg("error connecting socket")
		return nil, fmt.Errorf("dial socket: %w", err)
	}
	log.Debug().Str("func", "Dial").Str("url", endpoint).Msg("socket connected")

	s := &Socket{
		conn:     conn,
		cfg:      cfg,
		logger:   log,
		traceIDs: utils.NewUUIDGenerator(),
		pending:  make(map[string]chan models.Reply),
		channels: make(map[string]*WebsocketChannel),
		send:     make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
	}

	go s.readLoop()
	go s.writeLoop()

	return s, nil
}

func socketEndpoint(raw string, params map[string]string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("invalid socket url: %w", err)
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("invalid socket url %q: unsupported scheme", raw)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid socket url %q: no host", raw)
	}

	if !strings.HasSuffix(u.Path, "/websocket") {
		u.Path = strings.TrimRight(u.Path, "/") + "/websocket"
	}

	q := u.Query()
	for k, v := range params {
		q.Set(k, v)
	}
	q.Set("vsn", protocolVersion)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Channel registers a channel for topic. params are sent on join.
func (s *Socket) Channel(topic string, params map[string]any) *WebsocketChannel {
	ch := newWebsocketChannel(s, topic, params)

	s.mu.Lock()
	s.channels[topic] = ch
	s.mu.Unlock()

	return ch
}

// removeChannel unregisters ch unless its topic was re-registered since.
func (s *Socket) removeChannel(ch *WebsocketChannel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.channels[ch.topic] == ch {
		delete(s.channels, ch.topic)
	}
}

// Done is closed once the socket is disconnected.
func (s *Socket) Done() <-chan struct{} {
	return s.done
}

// Err returns the error that closed the socket, nil after a clean
// Disconnect or while still connected.
func (s *Socket) Err() error {
	select {
	case <-s.done:
		return s.closeErr
	default:
		return nil
	}
}

// Disconnect sends a close frame and tears the connection down.
func (s *Socket) Disconnect() error {
	select {
	case <-s.done:
		return nil
	default:
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	err := s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
	s.shutdown(nil)

	if err != nil && err != websocket.ErrCloseSent {
		return fmt.Errorf("close socket: %w", err)
	}
	return nil
}

func (s *Socket) nextRef() string {
	return strconv.FormatUint(s.ref.Add(1), 10)
}

func (s *Socket) enqueue(joinRef, ref, topic, event string, payload any) error {
	data, err := encodeFrame(joinRef, ref, topic, event, payload)
	if err != nil {
		return err
	}

	select {
	case <-s.done:
		return ErrSocketClosed
	default:
	}

	select {
	case s.send <- data:
		return nil
	case <-s.done:
		return ErrSocketClosed
	}
}

// request sends a frame with the given ref and waits for its phx_reply.
func (s *Socket) request(ctx context.Context, joinRef, ref, topic, event string, payload any) (models.Reply, error) {
	ctx, log := s.logger.WithTraceID(ctx, s.traceIDs.Generate())

	replyCh := make(chan models.Reply, 1)
	s.mu.Lock()
	s.pending[ref] = replyCh
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.pending, ref)
		s.mu.Unlock()
	}()

	if err := s.enqueue(joinRef, ref, topic, event, payload); err != nil {
		return models.Reply{}, err
	}
	log.Debug().Str("topic", topic).Str("event", event).Str("ref", ref).Msg("push sent")

	var timeout <-chan time.Time
	if s.cfg.RequestTimeout > 0 {
		t := time.NewTimer(s.cfg.RequestTimeout)
		defer t.Stop()
		timeout = t.C
	}

	select {
	case reply := <-replyCh:
		log.Debug().Str("event", event).Str("status", reply.Status).Msg("reply received")
		return reply, nil
	case <-ctx.Done():
		return models.Reply{}, ctx.Err()
	case <-timeout:
		log.Warn().Str("event", event).Msg("reply timed out")
		return models.Reply{}, fmt.Errorf("%s: %w", event, ErrReplyTimeout)
	case <-s.done:
		return models.Reply{}, ErrSocketClosed
	}
}

func (s *Socket) readLoop() {
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				err = nil
			}
			s.shutdown(err)
			return
		}

		f, err := decodeFrame(data)
		if err != nil {
			s.logger.Warn().Err(err).Str("func", "Socket.readLoop").Msg("dropping frame")
			continue
		}
		s.dispatch(f)
	}
}

func (s *Socket) dispatch(f frame) {
	if f.Event == eventReply && f.Ref != "" {
		s.mu.Lock()
		replyCh := s.pending[f.Ref]
		delete(s.pending, f.Ref)
		s.mu.Unlock()

		if replyCh != nil {
			var reply models.Reply
			if err := json.Unmarshal(f.Payload, &reply); err != nil {
				s.logger.Warn().Err(err).Str("ref", f.Ref).Msg("malformed reply")
				reply = models.Reply{Status: models.ReplyStatusError}
			}
			replyCh <- reply
			return
		}
		// replies to casts and heartbeats are not awaited
		if f.Topic != phoenixTopic {
			s.logger.Debug().Str("topic", f.Topic).Str("ref", f.Ref).Msg("unawaited reply")
		}
		return
	}

	s.mu.Lock()
	ch := s.channels[f.Topic]
	s.mu.Unlock()

	if ch == nil {
		s.logger.Debug().Str("topic", f.Topic).Str("event", f.Event).Msg("frame for unknown topic")
		return
	}
	ch.handle(f)
}

func (s *Socket) writeLoop() {
	var heartbeat <-chan time.Time
	if s.cfg.HeartbeatInterval > 0 {
		t := time.NewTicker(s.cfg.HeartbeatInterval)
		defer t.Stop()
		heartbeat = t.C
	}

	for {
		select {
		case <-s.done:
			return
		case data := <-s.send:
			if err := s.write(data); err != nil {
				s.shutdown(err)
				return
			}
		case <-heartbeat:
			data, err := encodeFrame("", s.nextRef(), phoenixTopic, eventHeartbeat, nil)
			if err != nil {
				continue
			}
			if err = s.write(data); err != nil {
				s.shutdown(err)
				return
			}
		}
	}
}

func (s *Socket) write(data []byte) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteMessage(websocket.TextMessage, data)
}

func (s *Socket) shutdown(err error) {
	s.closeOnce.Do(func() {
		s.closeErr = err
		close(s.done)
		s.conn.Close()

		if err != nil {
			s.logger.Err(err).Str("func", "Socket.shutdown").Msg("socket closed with error")
		} else {
			s.logger.Debug().Str("func", "Socket.shutdown").Msg("socket closed")
		}
	})
}
