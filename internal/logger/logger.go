package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

type Level int32

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var (
	std   = log.New(os.Stdout, "", log.LstdFlags)
	level atomic.Int32
)

func init() {
	level.Store(int32(INFO))
}

// ParseLevel maps debug/info/warn/error to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG, nil
	case "info", "":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	}
	return INFO, fmt.Errorf("invalid log level: %s", s)
}

// Setup sets the minimum level from its textual name.
func Setup(name string) error {
	lv, err := ParseLevel(name)
	if err != nil {
		return err
	}
	level.Store(int32(lv))
	return nil
}

// SetOutput redirects all log lines, mainly for tests.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func CurrentLevel() Level {
	return Level(level.Load())
}

func logf(lv Level, tag, format string, args ...interface{}) {
	if lv < CurrentLevel() {
		return
	}
	std.Printf("%s %s", tag, fmt.Sprintf(format, args...))
}

func Debugf(format string, args ...interface{}) { logf(DEBUG, "DEBUG", format, args...) }
func Infof(format string, args ...interface{})  { logf(INFO, "INFO", format, args...) }
func Warnf(format string, args ...interface{})  { logf(WARN, "WARN", format, args...) }
func Errorf(format string, args ...interface{}) { logf(ERROR, "ERROR", format, args...) }

func Fatalf(format string, args ...interface{}) {
	std.Printf("FATAL %s", fmt.Sprintf(format, args...))
	os.Exit(1)
}
