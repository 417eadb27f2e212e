// Package grpcaddr exposes the strkey contract-address codec as a gRPC
// service, for the non-Go dashboard processes that already speak RPC.
//
// The service is a thin host: every method is a pure call into the strkey
// package, and malformed input surfaces as codes.InvalidArgument with the
// codec's stable RuleID in the message.
package grpcaddr

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/christopherkarani/blendv3-sub002/strkey"
)

// Server implements the AddressCodec service over the strkey package.
type Server struct {
	UnimplementedAddressCodecServer
}

func (s *Server) Encode(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	addr, err := strkey.Encode(in.GetValue())
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String(addr), nil
}

func (s *Server) Decode(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	hexHash, err := strkey.Decode(in.GetValue())
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String(hexHash), nil
}

func (s *Server) Validate(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	_ = ctx
	return wrapperspb.Bool(strkey.IsValidContractAddress(in.GetValue())), nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if ruleID := strkey.RuleID(err); ruleID != "" {
		// Malformed input is the caller's problem, and not transient.
		return status.Errorf(codes.InvalidArgument, "%s: %s", ruleID, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
