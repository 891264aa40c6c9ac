package hooks

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// Hook sets Field on every entry to the file:line of the code that logged it.
type Hook struct {
	Field  string
	Depth  int // path elements kept, 0 keeps the full path
	levels []logrus.Level
}

func (hook *Hook) Levels() []logrus.Level {
	return hook.levels
}

func (hook *Hook) Fire(entry *logrus.Entry) error {
	file, line := findCaller()
	entry.Data[hook.Field] = fmt.Sprintf("%s:%d", trim(file, hook.Depth), line)
	return nil
}

func NewHook(levels ...logrus.Level) *Hook {
	hook := Hook{
		Field:  "source",
		Depth:  2,
		levels: levels,
	}
	if len(hook.levels) == 0 {
		hook.levels = logrus.AllLevels
	}

	return &hook
}

// findCaller skips logrus frames and the hook itself.
func findCaller() (string, int) {
	for skip := 3; skip < 16; skip++ {
		_, file, line, ok := runtime.Caller(skip)
		if !ok {
			break
		}
		if strings.Contains(file, "sirupsen/logrus") || strings.HasSuffix(file, "hooks/filename.go") {
			continue
		}
		return file, line
	}
	return "", 0
}

func trim(file string, depth int) string {
	if depth <= 0 || file == "" {
		return file
	}
	parts := strings.Split(filepath.ToSlash(file), "/")
	if len(parts) <= depth {
		return file
	}
	return strings.Join(parts[len(parts)-depth:], "/")
}
