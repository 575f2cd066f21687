// Package debuglog appends diagnostic lines to the file named by MD_LOG_FILE.
package debuglog

import (
	"bytes"
	"fmt"
	"os"
	"sync"
)

// EnvVar names the log file.
const EnvVar = "MD_LOG_FILE"

var mu sync.Mutex

// Enabled reports whether MD_LOG_FILE is set.
func Enabled() bool {
	return os.Getenv(EnvVar) != ""
}

// Log formats a line and appends it to the log file. It does nothing when
// MD_LOG_FILE is unset or cannot be opened.
func Log(format string, args ...any) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	var b bytes.Buffer
	b.WriteString("md: ")
	_, _ = fmt.Fprintf(&b, format, args...)
	if b.Bytes()[b.Len()-1] != '\n' {
		_ = b.WriteByte('\n')
	}
	_, _ = f.Write(b.Bytes())
}
