// Package client wraps the generated gRPC client with big.Int-aware
// helpers and error mapping.
package client

import (
	"context"
	"math/big"
	"time"

	"github.com/dmitrijs2005/zkauth/internal/common"
	pb "github.com/dmitrijs2005/zkauth/internal/proto"
	"github.com/dmitrijs2005/zkauth/internal/zkp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const requestTimeout = 12 * time.Second

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AuthClient
}

func NewAuthClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthClient(conn)
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.Unavailable:
		return ErrUnavailable
	case codes.AlreadyExists:
		return common.ErrAlreadyRegistered
	case codes.NotFound:
		return common.ErrUnknownUser
	case codes.Unauthenticated:
		return ErrAuthenticationFailed
	default:
		return err
	}
}

// GetParams fetches the group the server authenticates against. The
// whole protocol depends on both sides using the same (p, q, alpha,
// beta), so the fetched set is validated before use.
func (s *GRPCClient) GetParams(ctx context.Context) (*zkp.Params, error) {

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := s.client.GetAuthenticationParameters(ctx, &pb.AuthenticationParametersRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	params := &zkp.Params{
		P:     new(big.Int).SetBytes(resp.GetP()),
		Q:     new(big.Int).SetBytes(resp.GetQ()),
		Alpha: new(big.Int).SetBytes(resp.GetAlpha()),
		Beta:  new(big.Int).SetBytes(resp.GetBeta()),
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return params, nil
}

func (s *GRPCClient) Register(ctx context.Context, user string, y1, y2 *big.Int) error {

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req := &pb.RegisterRequest{User: user, Y1: y1.Bytes(), Y2: y2.Bytes()}

	if _, err := s.client.Register(ctx, req); err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) CreateChallenge(ctx context.Context, user string, r1, r2 *big.Int) (string, *big.Int, error) {

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req := &pb.AuthenticationChallengeRequest{User: user, R1: r1.Bytes(), R2: r2.Bytes()}

	resp, err := s.client.CreateAuthenticationChallenge(ctx, req)
	if err != nil {
		return "", nil, s.mapError(err)
	}

	return resp.GetAuthId(), new(big.Int).SetBytes(resp.GetC()), nil
}

func (s *GRPCClient) VerifyAuthentication(ctx context.Context, authID string, answer *big.Int) (string, error) {

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req := &pb.AuthenticationAnswerRequest{AuthId: authID, S: answer.Bytes()}

	resp, err := s.client.VerifyAuthentication(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.GetSessionId(), nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}
