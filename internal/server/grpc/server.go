package grpc

import (
	"context"
	"math/big"
	"net"

	"github.com/dmitrijs2005/zkauth/internal/logging"
	pb "github.com/dmitrijs2005/zkauth/internal/proto"
	"github.com/dmitrijs2005/zkauth/internal/zkp"
	"google.golang.org/grpc"
)

// authService is the protocol layer the transport delegates to.
type authService interface {
	Params() *zkp.Params
	Register(ctx context.Context, user string, y1, y2 *big.Int) error
	CreateChallenge(ctx context.Context, user string, r1, r2 *big.Int) (string, *big.Int, error)
	VerifyAuthentication(ctx context.Context, authID string, answer *big.Int) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServer
	address string
	auth    authService
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as authService) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    as,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer()

	// registers service
	pb.RegisterAuthServer(srv, s)

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
