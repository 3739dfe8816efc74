package utils

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileWithLineNum(t *testing.T) {
	file := FileWithLineNum()
	assert.True(t, strings.Contains(file, ".go:"), "got %q", file)
}

func TestCallerFrame(t *testing.T) {
	frame := func() runtime.Frame { return CallerFrame() }()
	assert.True(t, strings.HasSuffix(frame.File, "_test.go"), "got %q", frame.File)
}

func TestCheckTruth(t *testing.T) {
	checks := []struct {
		v   string
		out bool
	}{
		{"123", true},
		{"true", true},
		{"TRUE", true},
		{"", false},
		{"false", false},
		{"False", false},
		{"FALSE", false},
		{"0", false},
	}

	for _, c := range checks {
		assert.Equal(t, c.out, CheckTruth(c.v), "CheckTruth(%q)", c.v)
	}
	assert.True(t, CheckTruth("", "yes"))
}
