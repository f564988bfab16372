// Package workerpool implements the bounded thread pool capability: a
// fixed-size worker set consuming scheduled closures off one FIFO queue.
package workerpool

import (
	"flag"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/populationgenomics/seqr-query-backend/pkg/util"
)

var (
	metricQueueLength = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "seqr",
		Subsystem: "worker_pool",
		Name:      "queue_length",
		Help:      "Current number of jobs waiting in the worker pool queue.",
	})

	metricQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "seqr",
		Subsystem: "worker_pool",
		Name:      "queue_depth",
		Help:      "Configured capacity of the worker pool queue.",
	})
)

// Config controls pool sizing. MaxWorkers bounds peak concurrent work,
// which is also the practical memory-budget knob: peak in-flight decoded
// input is proportional to pool width, not URL count.
type Config struct {
	MaxWorkers int
	QueueDepth int
}

// RegisterFlagsAndApplyDefaults wires Config to a flag set under prefix,
// the same convention the teacher's backend configs use, so this is the
// natural seam for a second tunable (e.g. queue depth) without touching
// call sites.
func (c *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	c.MaxWorkers = 16
	c.QueueDepth = 1024
	f.IntVar(&c.MaxWorkers, util.PrefixConfig(prefix, "num-workers"), c.MaxWorkers, "Number of worker pool goroutines.")
}

// Pool is a fixed-size goroutine pool reading off one shared, buffered
// channel of closures. The buffered channel is the Go-native substitute
// for the teacher's mutex-plus-condition-variable queue: a channel already
// blocks a receiver until the queue is non-empty, so an explicit condition
// variable would only duplicate what the channel gives for free.
type Pool struct {
	jobs chan func() error
	wg   sync.WaitGroup
}

// New spawns cfg.MaxWorkers goroutines, each reading from one shared
// buffered channel of capacity cfg.QueueDepth.
func New(cfg Config) *Pool {
	p := &Pool{jobs: make(chan func() error, cfg.QueueDepth)}
	metricQueueDepth.Set(float64(cfg.QueueDepth))

	for i := 0; i < cfg.MaxWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		metricQueueLength.Set(float64(len(p.jobs)))
		_ = job()
	}
}

// RunOnAll schedules every job and blocks until all of them have run.
// Each job reports its own outcome through whatever side channel the
// caller gave it (e.g. a per-URL result slot); RunOnAll itself only
// returns the first error among jobs that failed, matching the division
// of responsibility in the teacher's pool — the pool runs closures to
// completion, and any cross-job prioritization (like cancellation beating
// a per-URL failure) happens one layer up, in the coordinator.
func (p *Pool) RunOnAll(jobs []func() error) error {
	var wg sync.WaitGroup
	var once sync.Once
	var firstErr error

	wg.Add(len(jobs))
	for _, job := range jobs {
		job := job
		p.jobs <- func() error {
			defer wg.Done()
			if err := job(); err != nil {
				once.Do(func() { firstErr = err })
				return err
			}
			return nil
		}
		metricQueueLength.Set(float64(len(p.jobs)))
	}

	wg.Wait()
	return firstErr
}

// Shutdown closes the job channel; workers drain remaining jobs in FIFO
// order (Go channels are already FIFO, so no sentinel values are needed)
// and exit once it's empty. The pool is process-wide and torn down only
// at process exit, so Shutdown is typically called at most once.
func (p *Pool) Shutdown() {
	close(p.jobs)
	p.wg.Wait()
}
