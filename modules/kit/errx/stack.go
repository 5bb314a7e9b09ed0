package errx

import (
	"errors"
	"runtime"
)

const (
	maxStackDepth = 64
	maxChainDepth = 32
)

func captureStack(skip int) []uintptr {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip, pcs)
	if n <= 0 {
		return nil
	}
	return pcs[:n]
}

func cloneStack(in []uintptr) []uintptr {
	if len(in) == 0 {
		return nil
	}
	return append([]uintptr(nil), in...)
}

func hasStackInChain(err error) bool {
	for i := 0; i < maxChainDepth && err != nil; i++ {
		if sp, ok := err.(interface{ Stack() []uintptr }); ok && len(sp.Stack()) != 0 {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
