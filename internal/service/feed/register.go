package feed

import (
	"google.golang.org/grpc"

	"github.com/frasehub/frasehub/internal/app"
	pb "github.com/frasehub/frasehub/internal/proto/feed"
)

// Registrar ties the Feed service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Feed service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Feed service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	service := NewFeedService(r.appCtx)
	pb.RegisterFeedServiceServer(s, service)
}
