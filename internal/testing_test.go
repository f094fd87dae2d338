package logstats

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func testNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}

func testError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("expected error")
	}
}

func testLine(status, size string) string {
	return `127.0.0.1 - [2024-01-01 10:00:00.000000] "GET /projects/260 HTTP/1.1" ` + status + " " + size + "\n"
}

func testLines(n int, status, size string) string {
	return strings.Repeat(testLine(status, size), n)
}

// syncBuffer is written by the runner goroutine and read by the test.
type syncBuffer struct {
	mutex  sync.Mutex
	buffer bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.Write(p)
}

func (b *syncBuffer) String() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.String()
}
