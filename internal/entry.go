package logstats

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var entryRegexp = regexp.MustCompile(`^\s*(?P<host>\S+)\s* - \[(?P<date>.*?)\] "(?P<request>[^"]*)" (?P<status>\d{3}) (?P<size>\d+)$`)

type entry struct {
	host   string
	status int
	size   uint64
}

// parseEntry matches a single access log line. The whole line has to match,
// a trailing line break is ignored.
func parseEntry(l string) (*entry, error) {
	l = strings.TrimSuffix(l, "\n")
	l = strings.TrimSuffix(l, "\r")

	m := entryRegexp.FindStringSubmatch(l)
	if len(m) == 0 {
		return nil, errors.New("line does not match regexp")
	}

	sm := make(map[string]string)
	for i, name := range entryRegexp.SubexpNames() {
		if i != 0 && name != "" {
			sm[name] = m[i]
		}
	}

	s, err := strconv.Atoi(sm["status"])
	if err != nil {
		return nil, fmt.Errorf(`failed to parse status "%s": %w`, sm["status"], err)
	}
	sz, err := strconv.ParseUint(sm["size"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf(`failed to parse size "%s": %w`, sm["size"], err)
	}

	return &entry{
		host:   sm["host"],
		status: s,
		size:   sz,
	}, nil
}
