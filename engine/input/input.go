package input

import (
	"github.com/1siamBot/hexgrid/engine/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MouseEvent is the payload of mouse button events
type MouseEvent struct {
	Button ebiten.MouseButton
	X, Y   int
}

// trackedButtons are polled every frame
var trackedButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// InputState tracks mouse state per frame
type InputState struct {
	MouseX, MouseY int

	// Buttons that changed state this frame
	JustPressed  []ebiten.MouseButton
	JustReleased []ebiten.MouseButton

	frame uint64
}

func NewInputState() *InputState {
	return &InputState{}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.frame++
	s.MouseX, s.MouseY = ebiten.CursorPosition()

	s.JustPressed = s.JustPressed[:0]
	s.JustReleased = s.JustReleased[:0]
	for _, b := range trackedButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			s.JustPressed = append(s.JustPressed, b)
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			s.JustReleased = append(s.JustReleased, b)
		}
	}
}

// Emit queues one event per button transition seen in the last Update
func (s *InputState) Emit(bus *core.EventBus) {
	for _, b := range s.JustPressed {
		bus.Emit(core.Event{
			Type:    core.EvtMouseButtonPressed,
			Frame:   s.frame,
			Payload: MouseEvent{Button: b, X: s.MouseX, Y: s.MouseY},
		})
	}
	for _, b := range s.JustReleased {
		bus.Emit(core.Event{
			Type:    core.EvtMouseButtonReleased,
			Frame:   s.frame,
			Payload: MouseEvent{Button: b, X: s.MouseX, Y: s.MouseY},
		})
	}
}

// ButtonName returns a short label for b
func ButtonName(b ebiten.MouseButton) string {
	switch b {
	case ebiten.MouseButtonLeft:
		return "left"
	case ebiten.MouseButtonRight:
		return "right"
	case ebiten.MouseButtonMiddle:
		return "middle"
	}
	return "other"
}
