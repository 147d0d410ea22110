package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// GestureHandler handles mobile gestures
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position
	tracking       bool

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Now()
	gh.touchStartPos = event.Position
	gh.tracking = true
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if !gh.tracking {
		return
	}
	gh.tracking = false
	gh.detect(event.Position.X-gh.touchStartPos.X, event.Position.Y-gh.touchStartPos.Y, time.Since(gh.touchStartTime))
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(_ *mobile.TouchEvent) {
	gh.tracking = false
	gh.touchStartTime = time.Time{}
}

// detect classifies a finished touch by its movement and duration
func (gh *GestureHandler) detect(dx, dy float32, duration time.Duration) {
	distance := dx*dx + dy*dy
	threshold := gh.swipeThreshold * gh.swipeThreshold

	switch {
	case distance >= threshold:
		gh.detectSwipeDirection(dx, dy)
	case duration >= gh.longPressDuration:
		gh.triggerGesture(GestureLongPress)
	default:
		gh.triggerGesture(GestureTap)
	}
}

// detectSwipeDirection determines the direction of a swipe gesture
func (gh *GestureHandler) detectSwipeDirection(dx, dy float32) {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	// Determine primary direction
	if absDx > absDy {
		if dx > 0 {
			gh.triggerGesture(GestureSwipeRight)
		} else {
			gh.triggerGesture(GestureSwipeLeft)
		}
	} else {
		if dy > 0 {
			gh.triggerGesture(GestureSwipeDown)
		} else {
			gh.triggerGesture(GestureSwipeUp)
		}
	}
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// GestureArea wraps content and reports swipes made on it, from touch
// events on mobile and from drags on desktop
type GestureArea struct {
	widget.BaseWidget

	content fyne.CanvasObject
	handler *GestureHandler

	dragDX, dragDY float32
	dragging       bool
}

// NewGestureArea creates a gesture area around content
func NewGestureArea(content fyne.CanvasObject, onGesture func(GestureType)) *GestureArea {
	g := &GestureArea{
		content: content,
		handler: NewGestureHandler(onGesture),
	}
	g.ExtendBaseWidget(g)
	return g
}

// CreateRenderer creates the widget renderer
func (g *GestureArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(g.content)
}

// TouchDown handles touch down events
func (g *GestureArea) TouchDown(event *mobile.TouchEvent) {
	g.handler.TouchDown(event)
}

// TouchUp handles touch up events
func (g *GestureArea) TouchUp(event *mobile.TouchEvent) {
	g.handler.TouchUp(event)
}

// TouchCancel handles touch cancel events
func (g *GestureArea) TouchCancel(event *mobile.TouchEvent) {
	g.handler.TouchCancel(event)
}

// Dragged accumulates drag movement
func (g *GestureArea) Dragged(event *fyne.DragEvent) {
	if !g.dragging {
		g.dragging = true
		g.dragDX, g.dragDY = 0, 0
	}
	g.dragDX += event.Dragged.DX
	g.dragDY += event.Dragged.DY
}

// DragEnd reports a swipe when the drag was long enough
func (g *GestureArea) DragEnd() {
	if !g.dragging {
		return
	}
	g.dragging = false
	distance := g.dragDX*g.dragDX + g.dragDY*g.dragDY
	if distance >= g.handler.swipeThreshold*g.handler.swipeThreshold {
		g.handler.detectSwipeDirection(g.dragDX, g.dragDY)
	}
}
