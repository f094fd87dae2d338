package logstats

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"math/bits"
	"sort"
)

// Status codes that are counted individually. Entries with any other status
// only contribute to the total size.
var statusCodes = []int{200, 301, 400, 401, 403, 404, 405, 500}

type metrics struct {
	totalSize    uint64
	statusCounts map[int]uint64
}

func (m *metrics) add(e *entry) {
	if e == nil {
		return
	}

	// The total saturates instead of wrapping around.
	t, c := bits.Add64(m.totalSize, e.size, 0)
	if c != 0 {
		t = math.MaxUint64
	}
	m.totalSize = t
	if _, f := m.statusCounts[e.status]; f {
		m.statusCounts[e.status]++
	}
}

func (m *metrics) write(w io.Writer) error {
	b := &bytes.Buffer{}
	fmt.Fprintf(b, "File size: %d\n", m.totalSize)

	cs := make([]int, 0, len(m.statusCounts))
	for c := range m.statusCounts {
		cs = append(cs, c)
	}
	sort.Ints(cs)
	for _, c := range cs {
		if n := m.statusCounts[c]; n > 0 {
			fmt.Fprintf(b, "%d: %d\n", c, n)
		}
	}

	_, err := w.Write(b.Bytes())
	return err
}

func newMetrics() *metrics {
	m := &metrics{
		statusCounts: make(map[int]uint64, len(statusCodes)),
	}
	for _, c := range statusCodes {
		m.statusCounts[c] = 0
	}

	return m
}
