package adapter

import (
	"encoding/json"
	"fmt"
)

// Phoenix v2 reserved topics and events.
const (
	phoenixTopic   = "phoenix"
	eventHeartbeat = "heartbeat"
	eventJoin      = "phx_join"
	eventLeave     = "phx_leave"
	eventReply     = "phx_reply"
	eventClose     = "phx_close"
	eventError     = "phx_error"

	protocolVersion = "2.0.0"
)

// frame is one Phoenix v2 message: [join_ref, ref, topic, event, payload].
type frame struct {
	JoinRef string
	Ref     string
	Topic   string
	Event   string
	Payload json.RawMessage
}

func encodeFrame(joinRef, ref, topic, event string, payload any) ([]byte, error) {
	if payload == nil {
		payload = struct{}{}
	}

	data, err := json.Marshal([]any{nullableRef(joinRef), nullableRef(ref), topic, event, payload})
	if err != nil {
		return nil, fmt.Errorf("encode %s frame: %w", event, err)
	}
	return data, nil
}

func decodeFrame(data []byte) (frame, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return frame{}, fmt.Errorf("%w: %v", ErrInvalidFrame, err)
	}
	if len(parts) != 5 {
		return frame{}, fmt.Errorf("%w: %d elements", ErrInvalidFrame, len(parts))
	}

	var (
		f            frame
		joinRef, ref *string
	)
	if err := json.Unmarshal(parts[0], &joinRef); err != nil {
		return frame{}, fmt.Errorf("%w: join_ref: %v", ErrInvalidFrame, err)
	}
	if err := json.Unmarshal(parts[1], &ref); err != nil {
		return frame{}, fmt.Errorf("%w: ref: %v", ErrInvalidFrame, err)
	}
	if err := json.Unmarshal(parts[2], &f.Topic); err != nil {
		return frame{}, fmt.Errorf("%w: topic: %v", ErrInvalidFrame, err)
	}
	if err := json.Unmarshal(parts[3], &f.Event); err != nil {
		return frame{}, fmt.Errorf("%w: event: %v", ErrInvalidFrame, err)
	}
	if joinRef != nil {
		f.JoinRef = *joinRef
	}
	if ref != nil {
		f.Ref = *ref
	}
	f.Payload = parts[4]

	return f, nil
}

func nullableRef(ref string) any {
	if ref == "" {
		return nil
	}
	return ref
}
