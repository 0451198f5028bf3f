package observ

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	outMu sync.Mutex
	out   io.Writer = os.Stderr
)

// SetOutput redirects log lines, mainly so tests can capture them.
func SetOutput(w io.Writer) {
	outMu.Lock()
	defer outMu.Unlock()
	out = w
}

func emit(level, event string, kv map[string]any) {
	if kv == nil {
		kv = map[string]any{}
	}
	kv["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	kv["level"] = level
	kv["event"] = event
	b, _ := json.Marshal(kv)
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintln(out, string(b))
}

func Log(event string, kv map[string]any) {
	emit("info", event, kv)
}

// Warn records recoverable fallbacks: defaulted fields, skipped candles,
// excluded positions. The pipeline continues after every warn.
func Warn(event string, kv map[string]any) {
	emit("warn", event, kv)
}
