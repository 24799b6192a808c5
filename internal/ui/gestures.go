package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureNone GestureType = iota
	GestureTap
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// String returns a readable gesture name for logs
func (g GestureType) String() string {
	switch g {
	case GestureTap:
		return "tap"
	case GestureSwipeLeft:
		return "swipe-left"
	case GestureSwipeRight:
		return "swipe-right"
	case GestureSwipeUp:
		return "swipe-up"
	case GestureSwipeDown:
		return "swipe-down"
	case GestureLongPress:
		return "long-press"
	default:
		return "none"
	}
}

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// GestureHandler turns touch down/up pairs into gestures
type GestureHandler struct {
	onGesture func(GestureType)
	now       func() time.Time

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		now:               time.Now,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = gh.now()
	gh.touchStartPos = event.Position
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if gh.touchStartTime.IsZero() {
		return
	}
	gesture := gh.classify(event.Position, gh.now().Sub(gh.touchStartTime))
	gh.touchStartTime = time.Time{}
	gh.triggerGesture(gesture)
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(event *mobile.TouchEvent) {
	// Reset tracking
	gh.touchStartTime = time.Time{}
}

// classify decides the gesture for a finished touch.
// A swipe wins over a long press when the finger moved far enough.
func (gh *GestureHandler) classify(end fyne.Position, duration time.Duration) GestureType {
	dx := end.X - gh.touchStartPos.X
	dy := end.Y - gh.touchStartPos.Y

	if dx*dx+dy*dy >= gh.swipeThreshold*gh.swipeThreshold {
		return swipeDirection(dx, dy)
	}
	if duration >= gh.longPressDuration {
		return GestureLongPress
	}
	return GestureTap
}

// swipeDirection determines the direction of a swipe gesture
func swipeDirection(dx, dy float32) GestureType {
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
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}
