package querier

import (
	"flag"

	"github.com/populationgenomics/seqr-query-backend/pkg/workerpool"
)

// Config is the service-level configuration slice the coordinator and its
// gRPC surface need at startup, following the same
// RegisterFlagsAndApplyDefaults(prefix, *flag.FlagSet) convention the
// backend configs use, so a second reader backend's flags can be added
// here later without touching call sites.
type Config struct {
	WorkerPool workerpool.Config `yaml:"worker_pool"`
}

// RegisterFlagsAndApplyDefaults passes prefix straight through to the pool
// config rather than nesting it under a "querier" segment: -num-workers is
// the one flag this binary exposes today (spec.md §6), and it must register
// under exactly that name, not -querier.num-workers.
func (c *Config) RegisterFlagsAndApplyDefaults(prefix string, f *flag.FlagSet) {
	c.WorkerPool.RegisterFlagsAndApplyDefaults(prefix, f)
}
