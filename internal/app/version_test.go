package app

import "testing"

func TestShowVersionDoesNotPanic(t *testing.T) {
	ShowVersion()
}
