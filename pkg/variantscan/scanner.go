package variantscan

import (
	"bytes"
	"context"
	"sync/atomic"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/populationgenomics/seqr-query-backend/pkg/seqrpb"
	"github.com/populationgenomics/seqr-query-backend/pkg/urlreader"
)

// Options is the immutable, per-query value the coordinator builds once
// and shares by reference among every scanner goroutine: the projection,
// the compiled filter, and the row cap. Never mutated after BuildOptions
// returns.
type Options struct {
	ProjectionColumns []string
	Filter            *Expr
	MaxRows           int64
}

// BuildOptions validates and compiles a request into Options. max_rows
// must be strictly positive; the filter expression must compile.
func BuildOptions(request *seqrpb.QueryRequest) (*Options, error) {
	filter, err := Build(request.GetFilterExpression())
	if err != nil {
		return nil, err
	}
	if request.GetMaxRows() <= 0 {
		return nil, InvalidArgumentf("invalid max_rows value of %d", request.GetMaxRows())
	}

	return &Options{
		ProjectionColumns: request.GetProjectionColumns(),
		Filter:            filter,
		MaxRows:           request.GetMaxRows(),
	}, nil
}

// MaxRowsExceededError is the single cancelled-error constructor every
// cap-exceeded path returns, so the message is identical whether it's
// raised by a scanner's early-cancel check or by the coordinator's
// post-fan-out check.
func MaxRowsExceededError(maxRows int64) error {
	return Cancelledf("more than %d rows matched; please use a more restrictive search", maxRows)
}

// ScanURL processes exactly one URL: early-cancel check, fetch, decode,
// filter, project, collect. It returns the ordered list of non-empty
// post-filter batches; the caller is responsible for releasing them.
func ScanURL(ctx context.Context, reader urlreader.Reader, url string, options *Options, numRows *atomic.Int64) ([]arrow.Record, error) {
	// Step 1: early cancel. Prevents new files from starting once the cap
	// is already blown; in-flight scans still finish their current file.
	if numRows.Load() > options.MaxRows {
		return nil, MaxRowsExceededError(options.MaxRows)
	}

	// Step 2: fetch.
	data, err := reader.Read(ctx, url)
	if err != nil {
		return nil, InvalidArgumentf("failed to read %s: %v", url, err)
	}

	// Step 3: decode. Single-threaded per file; parallelism happens across
	// URLs, one level up, so nested parallelism here would only contend.
	mem := memory.NewGoAllocator()
	fileReader, err := ipc.NewFileReader(bytes.NewReader(data), ipc.WithAllocator(mem))
	if err != nil {
		return nil, InvalidArgumentf("failed to open record batch reader for %s: %v", url, err)
	}
	defer fileReader.Close()

	var kept []arrow.Record
	for i := 0; i < fileReader.NumRecords(); i++ {
		record, err := fileReader.Record(i)
		if err != nil {
			release(kept)
			return nil, InvalidArgumentf("failed to read record batch %d for %s: %v", i, url, err)
		}

		// Step 4: scan — filter against the full decoded schema first, so a
		// predicate can reference any column in the file, not only the ones
		// named in the projection, then project down to the requested
		// columns. Threading is disabled for the same reason decoding is
		// single-threaded above.
		filtered, err := FilterRecord(mem, record, options.Filter)
		record.Release()
		if err != nil {
			release(kept)
			return nil, InvalidArgumentf("failed to apply filter for %s: %v", url, err)
		}

		projected, err := ProjectColumns(filtered, options.ProjectionColumns)
		filtered.Release()
		if err != nil {
			release(kept)
			return nil, InvalidArgumentf("failed to project columns for %s: %v", url, err)
		}
		filtered = projected

		// Step 5: collect. Empty batches are dropped without touching the
		// counter.
		if filtered.NumRows() == 0 {
			filtered.Release()
			continue
		}

		numRows.Add(filtered.NumRows())
		kept = append(kept, filtered)
	}

	return kept, nil
}

func release(records []arrow.Record) {
	for _, r := range records {
		r.Release()
	}
}
