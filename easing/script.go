package easing

import (
	"fmt"
	"strings"

	"github.com/dop251/goja"
)

// Compile builds a Func from a JavaScript expression. The expression sees
// t (elapsed), from, to and d (duration) and must evaluate to a number:
//
//	from + (to - from) * Math.pow(t / d, 3)
//
// A body containing "return" is used as a function body verbatim.
//
// The returned Func owns a goja runtime and must not be shared across
// goroutines. It panics if evaluation fails at call time; ticks recover
// that panic and fall back to Linear.
func Compile(src string) (Func, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("compile easing: empty expression")
	}

	body := src
	if !strings.Contains(body, "return") {
		body = "return (" + body + ");"
	}
	wrapped := fmt.Sprintf("(function(t, from, to, d) { %s })", body)

	vm := goja.New()
	val, err := vm.RunString(wrapped)
	if err != nil {
		return nil, fmt.Errorf("compile easing: %w", err)
	}
	fn, ok := goja.AssertFunction(val)
	if !ok {
		return nil, fmt.Errorf("compile easing: %q is not callable", src)
	}

	// Undefined names and non-numeric results fail here rather than mid-tween.
	if _, err := call(vm, fn, 0.5, 0, 1, 1); err != nil {
		return nil, fmt.Errorf("compile easing: %w", err)
	}

	return func(elapsed, from, to, duration float32) float32 {
		v, err := call(vm, fn, elapsed, from, to, duration)
		if err != nil {
			panic(err)
		}
		return v
	}, nil
}

func call(vm *goja.Runtime, fn goja.Callable, elapsed, from, to, duration float32) (float32, error) {
	res, err := fn(goja.Undefined(),
		vm.ToValue(float64(elapsed)),
		vm.ToValue(float64(from)),
		vm.ToValue(float64(to)),
		vm.ToValue(float64(duration)),
	)
	if err != nil {
		return 0, fmt.Errorf("JavaScript error: %w", err)
	}
	switch res.Export().(type) {
	case int64, float64:
		return float32(res.ToFloat()), nil
	default:
		return 0, fmt.Errorf("easing script returned %v, want a number", res)
	}
}
