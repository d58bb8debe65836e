package grpc

import (
	"context"
	"errors"
	"math/big"

	"github.com/dmitrijs2005/zkauth/internal/common"
	pb "github.com/dmitrijs2005/zkauth/internal/proto"
	"github.com/dmitrijs2005/zkauth/internal/zkp"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// authFailedMsg is returned for both unknown sessions and failed
// proofs. Keeping the responses identical stops a caller from probing
// whether a session existed or the secret was wrong.
const authFailedMsg = "authentication failed"

func bytesToInt(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// GetAuthenticationParameters publishes the group the server was
// started with. Clients must prove against these exact values; deriving
// their own group would yield a different beta and fail every login.
func (s *GRPCServer) GetAuthenticationParameters(ctx context.Context, req *pb.AuthenticationParametersRequest) (*pb.AuthenticationParametersResponse, error) {
	g := s.auth.Params()
	return &pb.AuthenticationParametersResponse{
		P:     g.P.Bytes(),
		Q:     g.Q.Bytes(),
		Alpha: g.Alpha.Bytes(),
		Beta:  g.Beta.Bytes(),
	}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request", "user", req.GetUser())

	err := s.auth.Register(ctx, req.GetUser(), bytesToInt(req.GetY1()), bytesToInt(req.GetY2()))

	if err != nil {
		switch {
		case errors.Is(err, common.ErrAlreadyRegistered):
			return nil, status.Error(codes.AlreadyExists, err.Error())
		case errors.Is(err, zkp.ErrInvalidParameters):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		default:
			s.logger.Error(ctx, err.Error())
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	s.logger.Info(ctx, "Registered", "user", req.GetUser())
	return &pb.RegisterResponse{}, nil
}

func (s *GRPCServer) CreateAuthenticationChallenge(ctx context.Context, req *pb.AuthenticationChallengeRequest) (*pb.AuthenticationChallengeResponse, error) {

	authID, c, err := s.auth.CreateChallenge(ctx, req.GetUser(), bytesToInt(req.GetR1()), bytesToInt(req.GetR2()))

	if err != nil {
		switch {
		case errors.Is(err, common.ErrUnknownUser):
			return nil, status.Error(codes.NotFound, err.Error())
		case errors.Is(err, zkp.ErrInvalidParameters):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		default:
			s.logger.Error(ctx, err.Error())
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	return &pb.AuthenticationChallengeResponse{AuthId: authID, C: c.Bytes()}, nil
}

func (s *GRPCServer) VerifyAuthentication(ctx context.Context, req *pb.AuthenticationAnswerRequest) (*pb.AuthenticationAnswerResponse, error) {

	token, err := s.auth.VerifyAuthentication(ctx, req.GetAuthId(), bytesToInt(req.GetS()))

	if err != nil {
		switch {
		// unknown, expired, replayed, and failing attempts all get the
		// same answer
		case errors.Is(err, common.ErrUnknownSession),
			errors.Is(err, common.ErrInvalidProof),
			errors.Is(err, common.ErrUnknownUser):
			return nil, status.Error(codes.Unauthenticated, authFailedMsg)
		case errors.Is(err, zkp.ErrInvalidParameters):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		default:
			s.logger.Error(ctx, err.Error())
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	s.logger.Info(ctx, "Authenticated", "auth_id", req.GetAuthId())
	return &pb.AuthenticationAnswerResponse{SessionId: token}, nil
}
