package logstats

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/oklog/run"
	"github.com/rs/zerolog/log"
)

const reportInterval = 10

type Runner struct {
	input    io.Reader
	output   io.Writer
	metrics  *metrics
	parsed   atomic.Uint64
	signals  []os.Signal
	notified chan struct{}
	stop     context.CancelFunc
	stopped  context.Context
}

func (rn *Runner) report() {
	if err := rn.metrics.write(rn.output); err != nil {
		log.Error().Err(err).Msg("failed to write report")
	}
}

func (rn *Runner) process(l string) {
	e, err := parseEntry(l)
	if err != nil {
		log.Debug().Err(err).Str("line", l).Msg("skipping line")
		return
	}
	log.Debug().Str("host", e.host).Int("status", e.status).Uint64("size", e.size).Msg("recording entry")

	rn.metrics.add(e)
	if rn.parsed.Add(1)%reportInterval == 0 {
		rn.report()
	}
}

func (rn *Runner) consume() error {
	lc := readLines(rn.stopped, rn.input)
	for {
		select {
		case <-rn.stopped.Done():
			return nil
		case l, ok := <-lc:
			if !ok {
				log.Info().Uint64("parsed", rn.parsed.Load()).Msg("reached end of input")
				return nil
			}
			// A stop request wins over a line that is already available.
			select {
			case <-rn.stopped.Done():
				return nil
			default:
			}
			rn.process(l)
		}
	}
}

// Run processes the input until it is exhausted, a signal is received or Stop
// is called. In each case exactly one final report is written. Signals stay
// caught until the final report has been written.
func (rn *Runner) Run() {
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, rn.signals...)
	defer signal.Stop(sc)
	close(rn.notified)

	var g run.Group
	g.Add(rn.consume, func(error) {
		rn.stop()
	})
	g.Add(func() error {
		select {
		case s := <-sc:
			return run.SignalError{Signal: s}
		case <-rn.stopped.Done():
			return rn.stopped.Err()
		}
	}, func(error) {
		rn.stop()
	})

	log.Info().Int("reportInterval", reportInterval).Ints("statusCodes", statusCodes).Msg("started")
	err := g.Run()
	var serr run.SignalError
	switch {
	case errors.As(err, &serr):
		log.Info().Str("signal", serr.Signal.String()).Msg("received signal")
	case err != nil && !errors.Is(err, context.Canceled):
		log.Error().Err(err).Msg("stopped unexpectedly")
	}

	rn.report()
}

func (rn *Runner) Stop() {
	rn.stop()
}

func NewRunner(in io.Reader, out io.Writer) *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		input:    in,
		output:   out,
		metrics:  newMetrics(),
		signals:  []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		notified: make(chan struct{}),
		stop:     cancel,
		stopped:  ctx,
	}
}
