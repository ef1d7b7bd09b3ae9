package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"slotmachine/internal/gfx"
)

var mouseButtons = []rl.MouseButton{rl.MouseButtonLeft, rl.MouseButtonRight, rl.MouseButtonMiddle}

// PollEvents translates raylib's input state into events. raylib polls the OS during
// EndDrawing, so this reports what arrived during the previous Present.
func (r *Renderer) PollEvents(dst []gfx.Event) []gfx.Event {
	if rl.WindowShouldClose() {
		dst = append(dst, gfx.Event{Kind: gfx.EventQuit})
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		dst = append(dst, gfx.Event{Kind: gfx.EventKeyDown, Key: gfx.Key(key)})
	}
	for _, b := range mouseButtons {
		if rl.IsMouseButtonPressed(b) {
			dst = append(dst, gfx.Event{Kind: gfx.EventMouseDown, X: rl.GetMouseX(), Y: rl.GetMouseY()})
		}
	}
	return dst
}
