// Package hand feeds tracker events into the ring controller. A
// tracker process (or the demo's mouse emulation) produces a stream of
// source-detected/lost, pose, press and release events; this package
// carries the remote variant over a websocket.
package hand

import (
	"encoding/json"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/arcsin16/HoloRingCommand/internal/ring"
)

// Sink receives tracker events. *ring.Controller satisfies it.
type Sink interface {
	Activate(frame ring.Frame)
	Deactivate()
	HandSample(p rl.Vector3)
	Pressed()
	Released()
}

// Message is one tracker event on the wire.
//
//	{"type": "detected", "origin": [0,0,0], "right": [1,0,0]}
//	{"type": "pose", "pos": [0.12, -0.03, 0.4]}
//	{"type": "press"} / {"type": "release"} / {"type": "lost"}
type Message struct {
	Type   string     `json:"type"`
	Pos    [3]float32 `json:"pos,omitempty"`
	Origin [3]float32 `json:"origin,omitempty"`
	Right  [3]float32 `json:"right,omitempty"`
}

func vec(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

// Decode parses one wire message.
func Decode(data []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("hand: parse message: %w", err)
	}
	if msg.Type == "" {
		return Message{}, fmt.Errorf("hand: message has no type")
	}
	return msg, nil
}

// Dispatch routes a decoded message into the sink. Unknown types are
// ignored so older trackers can talk to newer builds.
func Dispatch(msg Message, sink Sink) {
	switch msg.Type {
	case "detected":
		right := vec(msg.Right)
		if right == (rl.Vector3{}) {
			right = rl.Vector3{X: 1}
		}
		sink.Activate(ring.Frame{Origin: vec(msg.Origin), Right: right})
	case "lost":
		sink.Deactivate()
	case "pose":
		sink.HandSample(vec(msg.Pos))
	case "press":
		sink.Pressed()
	case "release":
		sink.Released()
	}
}
