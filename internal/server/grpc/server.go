package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/travelpath/server/internal/logging"
	pb "github.com/travelpath/server/internal/proto"
	"github.com/travelpath/server/internal/server/models"
	"github.com/travelpath/server/internal/server/services"
)

// maxMessageSize admits partner batch frames carrying full-size photos.
const maxMessageSize = 50 * 1024 * 1024

// PhotoIngestor is the slice of the photo service the gRPC front consumes.
type PhotoIngestor interface {
	Ingest(ctx context.Context, ownerID, placeID, contentType string, data []byte, source models.PhotoSource) (*models.PhotoRecord, error)
}

var _ PhotoIngestor = (*services.PhotoService)(nil)

type GRPCServer struct {
	pb.UnimplementedPhotoServiceServer
	address   string
	photos    PhotoIngestor
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, ps PhotoIngestor, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		photos:    ps,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.accessTokenStreamInterceptor),
		grpc.MaxRecvMsgSize(maxMessageSize),
	)

	// registers service
	pb.RegisterPhotoServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
