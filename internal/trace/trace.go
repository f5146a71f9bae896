// Package trace writes a debug log of every subprocess invocation to a
// rotating file inside the repository's .git directory. It is disabled
// unless the ANIST_DEBUG environment variable is set, so normal runs pay
// only a nil check.
package trace

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu     sync.Mutex
	logger *slog.Logger
)

// Init configures the trace logger to write under gitRoot/.git/anist.log.
// It is a no-op when ANIST_DEBUG is unset or Init was already called.
func Init(gitRoot string) {
	if os.Getenv("ANIST_DEBUG") == "" {
		return
	}

	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		return
	}

	writer := &lumberjack.Logger{
		Filename:   filepath.Join(gitRoot, ".git", "anist.log"),
		MaxSize:    1,  // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
	}
	logger = slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// Command records a completed subprocess invocation.
func Command(name string, args []string, duration time.Duration, err error) {
	mu.Lock()
	l := logger
	mu.Unlock()
	if l == nil {
		return
	}

	attrs := []slog.Attr{
		slog.String("cmd", name+" "+strings.Join(args, " ")),
		slog.Duration("duration", duration),
	}
	level := slog.LevelDebug
	msg := "subprocess"
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		level = slog.LevelError
		msg = "subprocess failed"
	}
	l.LogAttrs(context.Background(), level, msg, attrs...)
}
