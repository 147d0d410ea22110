package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func touchAt(x, y float32) *mobile.TouchEvent {
	return &mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestGestureHandler_Detect(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float32
		duration time.Duration
		want     GestureType
	}{
		{name: "tap", dx: 2, dy: 3, duration: 50 * time.Millisecond, want: GestureTap},
		{name: "long press", dx: 1, dy: 1, duration: time.Second, want: GestureLongPress},
		{name: "swipe right", dx: 120, dy: 10, duration: 100 * time.Millisecond, want: GestureSwipeRight},
		{name: "swipe left", dx: -120, dy: 10, duration: 100 * time.Millisecond, want: GestureSwipeLeft},
		{name: "swipe down", dx: 5, dy: 90, duration: 100 * time.Millisecond, want: GestureSwipeDown},
		{name: "swipe up", dx: 5, dy: -90, duration: 100 * time.Millisecond, want: GestureSwipeUp},
		{name: "slow swipe is still a swipe", dx: 200, dy: 0, duration: time.Second, want: GestureSwipeRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []GestureType
			gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })
			gh.detect(tt.dx, tt.dy, tt.duration)

			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("detected %v, want [%v]", got, tt.want)
			}
		})
	}
}

func TestGestureHandler_Touch(t *testing.T) {
	var got []GestureType
	gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })

	// Up without down is ignored
	gh.TouchUp(touchAt(10, 10))
	if len(got) != 0 {
		t.Fatalf("unexpected gestures %v", got)
	}

	gh.TouchDown(touchAt(10, 10))
	gh.TouchUp(touchAt(200, 20))
	if len(got) != 1 || got[0] != GestureSwipeRight {
		t.Fatalf("got %v, want swipe right", got)
	}

	gh.TouchDown(touchAt(10, 10))
	gh.TouchCancel(touchAt(10, 10))
	gh.TouchUp(touchAt(10, 200))
	if len(got) != 1 {
		t.Errorf("cancelled touch produced a gesture: %v", got)
	}
}

func TestGestureArea_Drag(t *testing.T) {
	test.NewApp()
	var got []GestureType
	area := NewGestureArea(widget.NewLabel("content"), func(g GestureType) { got = append(got, g) })

	area.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 0, DY: 40}})
	area.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 5, DY: 40}})
	area.DragEnd()

	if len(got) != 1 || got[0] != GestureSwipeDown {
		t.Fatalf("got %v, want swipe down", got)
	}

	// Short drags are not swipes
	area.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 10, DY: 0}})
	area.DragEnd()
	if len(got) != 1 {
		t.Errorf("short drag produced a gesture: %v", got)
	}

	// DragEnd without drag is ignored
	area.DragEnd()
	if len(got) != 1 {
		t.Errorf("stray DragEnd produced a gesture: %v", got)
	}
}
