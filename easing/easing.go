// Package easing provides interpolation curves for tickerx ticks.
//
// A curve maps the time a tick has been running onto a value between its
// endpoints. Curves are plain functions so callers can supply their own; this
// package ships the linear default, the standard Penner set (via gween), and
// curves compiled from small JavaScript expressions.
package easing

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
)

// Func maps elapsed time onto a value between from and to.
// It is only called while 0 <= elapsed < duration.
type Func func(elapsed, from, to, duration float32) float32

// ErrUnknownEasing is returned by ByName for names that are not registered.
var ErrUnknownEasing = errors.New("unknown easing")

// Linear interpolates between from and to, clamping the factor to [0, 1].
func Linear(elapsed, from, to, duration float32) float32 {
	if duration <= 0 {
		return to
	}
	t := elapsed / duration
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return from + (to-from)*t
}

// FromTween adapts a gween curve, which works on (begin, change), to a Func.
func FromTween(f ease.TweenFunc) Func {
	return func(elapsed, from, to, duration float32) float32 {
		return f(elapsed, from, to-from, duration)
	}
}

var registry = map[string]Func{
	"linear": Linear,

	"in-quad":        FromTween(ease.InQuad),
	"out-quad":       FromTween(ease.OutQuad),
	"in-out-quad":    FromTween(ease.InOutQuad),
	"in-cubic":       FromTween(ease.InCubic),
	"out-cubic":      FromTween(ease.OutCubic),
	"in-out-cubic":   FromTween(ease.InOutCubic),
	"in-quart":       FromTween(ease.InQuart),
	"out-quart":      FromTween(ease.OutQuart),
	"in-out-quart":   FromTween(ease.InOutQuart),
	"in-quint":       FromTween(ease.InQuint),
	"out-quint":      FromTween(ease.OutQuint),
	"in-out-quint":   FromTween(ease.InOutQuint),
	"in-sine":        FromTween(ease.InSine),
	"out-sine":       FromTween(ease.OutSine),
	"in-out-sine":    FromTween(ease.InOutSine),
	"in-expo":        FromTween(ease.InExpo),
	"out-expo":       FromTween(ease.OutExpo),
	"in-out-expo":    FromTween(ease.InOutExpo),
	"in-circ":        FromTween(ease.InCirc),
	"out-circ":       FromTween(ease.OutCirc),
	"in-out-circ":    FromTween(ease.InOutCirc),
	"in-elastic":     FromTween(ease.InElastic),
	"out-elastic":    FromTween(ease.OutElastic),
	"in-out-elastic": FromTween(ease.InOutElastic),
	"in-back":        FromTween(ease.InBack),
	"out-back":       FromTween(ease.OutBack),
	"in-out-back":    FromTween(ease.InOutBack),
	"in-bounce":      FromTween(ease.InBounce),
	"out-bounce":     FromTween(ease.OutBounce),
	"in-out-bounce":  FromTween(ease.InOutBounce),
}

// ByName looks up a registered curve. Names are case-insensitive and accept
// either dashes or underscores ("out_bounce", "Out-Bounce").
func ByName(name string) (Func, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if key == "" {
		return Linear, nil
	}
	f, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
	}
	return f, nil
}

// Names returns the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
