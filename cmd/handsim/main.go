// handsim replays a scripted hand-tracking session against a running
// holoring instance: detect the source, sweep the hand right far
// enough for a few rotation steps, fire the selected command, then
// drop the source.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/arcsin16/HoloRingCommand/internal/hand"
)

func main() {
	addr := flag.String("addr", "localhost:8591", "holoring tracker address")
	steps := flag.Int("steps", 3, "rotation steps to sweep through")
	flag.Parse()

	url := "ws://" + *addr + "/track"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		log.Fatalf("handsim: dial %s: %v", url, err)
	}
	defer conn.Close()
	log.Printf("handsim: connected to %s", url)

	send := func(msg hand.Message) {
		if err := conn.WriteJSON(msg); err != nil {
			log.Fatalf("handsim: write: %v", err)
		}
	}

	send(hand.Message{Type: "detected", Right: [3]float32{1, 0, 0}})
	time.Sleep(400 * time.Millisecond) // let the fade-in finish

	// First pose only records the baseline.
	send(hand.Message{Type: "pose", Pos: [3]float32{0, 0, 0.4}})
	time.Sleep(30 * time.Millisecond)

	// 0.02 m per sample crosses a default 0.05 m threshold every third
	// sample; pause between steps so each rotation can play out.
	x := float32(0)
	for step := 0; step < *steps; step++ {
		for i := 0; i < 3; i++ {
			x += 0.02
			send(hand.Message{Type: "pose", Pos: [3]float32{x, 0, 0.4}})
			time.Sleep(30 * time.Millisecond)
		}
		time.Sleep(300 * time.Millisecond)
	}

	send(hand.Message{Type: "press"})
	time.Sleep(200 * time.Millisecond)
	send(hand.Message{Type: "release"})
	time.Sleep(400 * time.Millisecond)
	send(hand.Message{Type: "lost"})
	log.Printf("handsim: session complete")
}
