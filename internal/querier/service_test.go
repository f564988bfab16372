package querier

import (
	"context"
	"errors"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/populationgenomics/seqr-query-backend/pkg/seqrpb"
	"github.com/populationgenomics/seqr-query-backend/pkg/variantscan"
	"github.com/populationgenomics/seqr-query-backend/pkg/workerpool"
)

func TestGrpcCode_MapsEveryKind(t *testing.T) {
	assert.Equal(t, codes.InvalidArgument, grpcCode(variantscan.KindInvalidArgument))
	assert.Equal(t, codes.Canceled, grpcCode(variantscan.KindCancelled))
	assert.Equal(t, codes.Internal, grpcCode(variantscan.KindInternal))
}

func TestService_Query_RowCapExceededMapsToCancelled(t *testing.T) {
	xpos := make([]int64, 10)
	ids := make([]string, 10)
	for i := range xpos {
		ids[i] = "v"
	}
	fixture := buildFixture(t, xpos, ids)
	reader := &fakeReader{data: map[string][]byte{"file:///a": fixture, "file:///b": fixture}}

	coordinator := &Coordinator{
		Reader: reader,
		Pool:   workerpool.New(workerpool.Config{MaxWorkers: 4, QueueDepth: 16}),
		Logger: log.NewNopLogger(),
	}
	defer coordinator.Pool.Shutdown()

	svc := &Service{Coordinator: coordinator}
	_, err := svc.Query(context.Background(), &seqrpb.QueryRequest{
		ArrowUrls:         []string{"file:///a", "file:///b"},
		ProjectionColumns: []string{"xpos", "variantId"},
		FilterExpression:  trueLiteralFilter(),
		MaxRows:           15,
	})

	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Canceled, st.Code())
}

func TestService_Query_UnsupportedURLMapsToInvalidArgument(t *testing.T) {
	reader := &fakeReader{err: map[string]error{"http://x": errors.New("unsupported URL scheme: http://x")}}
	coordinator := &Coordinator{
		Reader: reader,
		Pool:   workerpool.New(workerpool.Config{MaxWorkers: 2, QueueDepth: 8}),
		Logger: log.NewNopLogger(),
	}
	defer coordinator.Pool.Shutdown()

	svc := &Service{Coordinator: coordinator}
	_, err := svc.Query(context.Background(), &seqrpb.QueryRequest{
		ArrowUrls:         []string{"http://x"},
		ProjectionColumns: []string{"xpos"},
		FilterExpression:  trueLiteralFilter(),
		MaxRows:           100,
	})

	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}
