package logstats

import (
	"bufio"
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog/log"
)

// readLines forwards the lines of r, including their line breaks, until r is
// exhausted or ctx is done. Read errors end the input just like EOF does.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	c := make(chan string, 1)
	go func() {
		defer close(c)

		br := bufio.NewReader(r)
		for {
			l, err := br.ReadString('\n')
			if l != "" {
				if ctx.Err() != nil {
					return
				}
				select {
				case c <- l:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					log.Warn().Err(err).Msg("failed to read input, treating as end of input")
				}
				return
			}
		}
	}()

	return c
}
