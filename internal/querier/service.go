package querier

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/populationgenomics/seqr-query-backend/pkg/seqrpb"
	"github.com/populationgenomics/seqr-query-backend/pkg/variantscan"
)

// Service adapts a Coordinator to the generated QueryServiceServer
// interface, translating internal error Kinds to transport status codes
// at this boundary only — nothing under pkg/variantscan or the coordinator
// imports grpc.
type Service struct {
	seqrpb.UnimplementedQueryServiceServer
	Coordinator *Coordinator
}

func (s *Service) Query(ctx context.Context, request *seqrpb.QueryRequest) (*seqrpb.QueryResponse, error) {
	response, err := s.Coordinator.Query(ctx, request)
	if err != nil {
		return nil, status.Error(grpcCode(variantscan.KindOf(err)), err.Error())
	}
	return response, nil
}

func grpcCode(kind variantscan.Kind) codes.Code {
	switch kind {
	case variantscan.KindInvalidArgument:
		return codes.InvalidArgument
	case variantscan.KindCancelled:
		return codes.Canceled
	default:
		return codes.Internal
	}
}

// Register wires the query service, plus health checking and reflection,
// into server — matching the C++ original's
// EnableDefaultHealthCheckService/InitProtoReflectionServerBuilderPlugin
// pair and the teacher's own grpc_health_v1.RegisterHealthServer call.
func Register(server *grpc.Server, svc *Service) {
	seqrpb.RegisterQueryServiceServer(server, svc)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("seqr.QueryService", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(server, healthServer)

	reflection.Register(server)
}
