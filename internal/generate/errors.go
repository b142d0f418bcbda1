package generate

import "errors"

var errNoEraser = errors.New("javascript output requested but no type eraser is configured")
