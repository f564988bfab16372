// Package querier implements the query coordinator and the gRPC surface
// built on top of it: fan-out per-URL scans, aggregate the global row
// count, and assemble one uniformly-schema'd response.
package querier

import (
	"bytes"
	"context"
	"sync/atomic"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/populationgenomics/seqr-query-backend/pkg/seqrpb"
	"github.com/populationgenomics/seqr-query-backend/pkg/urlreader"
	"github.com/populationgenomics/seqr-query-backend/pkg/variantscan"
	"github.com/populationgenomics/seqr-query-backend/pkg/workerpool"
)

var (
	metricQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "seqr",
		Name:      "query_duration_seconds",
		Help:      "Time spent executing a query, by outcome.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})

	metricRowsReturned = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "seqr",
		Name:      "query_rows_returned",
		Help:      "Number of rows returned per query.",
		Buckets:   prometheus.ExponentialBuckets(1, 8, 8),
	})

	metricScanErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "seqr",
		Name:      "scan_errors_total",
		Help:      "Per-URL scan failures, by URL scheme.",
	}, []string{"scheme"})
)

// Coordinator runs the end-to-end query flow described in the component
// design: build options, fan out one scan per URL on the shared pool,
// wait, check the row cap (which beats any per-URL failure), then assemble
// the output stream in request order.
type Coordinator struct {
	Reader urlreader.Reader
	Pool   *workerpool.Pool
	Logger log.Logger
}

type urlResult struct {
	records []arrow.Record
	err     error
}

// Query implements the 9-step coordinator flow.
func (c *Coordinator) Query(ctx context.Context, request *seqrpb.QueryRequest) (*seqrpb.QueryResponse, error) {
	start := time.Now()
	outcome := "ok"
	defer func() {
		metricQueryDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	}()

	// Step 1: build scanner options.
	options, err := variantscan.BuildOptions(request)
	if err != nil {
		outcome = "invalid-argument"
		return nil, err
	}

	urls := request.GetArrowUrls()
	results := make([]urlResult, len(urls))
	counter := &atomic.Int64{}

	// Steps 2-4: schedule one task per URL, wait for the countdown.
	jobs := make([]func() error, len(urls))
	for i, url := range urls {
		i, url := i, url
		jobs[i] = func() error {
			records, err := variantscan.ScanURL(ctx, c.Reader, url, options, counter)
			if err != nil {
				level.Warn(c.Logger).Log("msg", "per-URL scan failed", "url", url, "err", err)
				metricScanErrors.WithLabelValues(urlScheme(url)).Inc()
			}
			results[i] = urlResult{records: records, err: err}
			return nil
		}
	}
	_ = c.Pool.RunOnAll(jobs)

	// Step 5: the row cap beats any per-URL failure.
	if counter.Load() > options.MaxRows {
		outcome = "cancelled"
		releaseAll(results)
		return nil, variantscan.MaxRowsExceededError(options.MaxRows)
	}

	// Step 6: surface the first per-URL failure.
	for _, result := range results {
		if result.err != nil {
			outcome = "invalid-argument"
			releaseAll(results)
			return nil, result.err
		}
	}

	// Step 7: pick the output schema from the first non-empty result.
	var schema *arrow.Schema
	for _, result := range results {
		if len(result.records) > 0 {
			schema = result.records[0].Schema()
			break
		}
	}
	if schema == nil {
		level.Info(c.Logger).Log("msg", "query complete", "urls", len(urls), "rows", 0, "duration", time.Since(start))
		return &seqrpb.QueryResponse{NumRows: 0}, nil
	}

	// Steps 8-9: write every retained batch, in URL order, under the
	// chosen schema, then populate the response.
	mem := memory.NewGoAllocator()
	var buf bytes.Buffer
	writer, err := ipc.NewFileWriter(&buf, ipc.WithSchema(schema), ipc.WithAllocator(mem))
	if err != nil {
		outcome = "invalid-argument"
		releaseAll(results)
		return nil, variantscan.InvalidArgumentf("failed to create file writer: %v", err)
	}

	for _, result := range results {
		for _, record := range result.records {
			if err := writer.Write(record); err != nil {
				outcome = "invalid-argument"
				releaseAll(results)
				return nil, variantscan.InvalidArgumentf("failed to write record batch: %v", err)
			}
		}
	}
	if err := writer.Close(); err != nil {
		outcome = "invalid-argument"
		releaseAll(results)
		return nil, variantscan.InvalidArgumentf("failed to close file writer: %v", err)
	}
	releaseAll(results)

	numRows := counter.Load()
	metricRowsReturned.Observe(float64(numRows))
	level.Info(c.Logger).Log("msg", "query complete", "urls", len(urls), "rows", numRows, "duration", time.Since(start))

	return &seqrpb.QueryResponse{NumRows: numRows, RecordBatches: buf.Bytes()}, nil
}

func releaseAll(results []urlResult) {
	for _, result := range results {
		for _, record := range result.records {
			record.Release()
		}
	}
}

func urlScheme(url string) string {
	for i := 0; i < len(url); i++ {
		if url[i] == ':' {
			return url[:i]
		}
	}
	return "unknown"
}
