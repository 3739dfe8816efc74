package utils

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

var upySourceDir string

func init() {
	_, file, _, _ := runtime.Caller(0)
	upySourceDir = sourceDir(file)
}

// sourceDir module root of the given file inside the utils package
func sourceDir(file string) string {
	dir := filepath.Dir(filepath.Dir(file))
	return filepath.ToSlash(dir) + "/"
}

func isInternal(file string) bool {
	return strings.HasPrefix(file, upySourceDir) && !strings.HasSuffix(file, "_test.go")
}

// FileWithLineNum return the file name and line number of the first caller outside upy
func FileWithLineNum() string {
	// the second caller usually from upy internal, so set i start from 2
	for i := 2; i < 15; i++ {
		_, file, line, ok := runtime.Caller(i)
		if ok && !isInternal(file) {
			return file + ":" + strconv.FormatInt(int64(line), 10)
		}
	}

	return ""
}

// CallerFrame frame of the first caller outside upy, used by slog records
func CallerFrame() runtime.Frame {
	pcs := [13]uintptr{}
	n := runtime.Callers(3, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for i := 0; i < n; i++ {
		frame, more := frames.Next()
		if !isInternal(frame.File) {
			return frame
		}
		if !more {
			break
		}
	}
	return runtime.Frame{}
}

// CheckTruth check string true or not
func CheckTruth(vals ...string) bool {
	for _, val := range vals {
		if val != "" && !strings.EqualFold(val, "false") && val != "0" {
			return true
		}
	}
	return false
}
