package grpcaddr

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrInvalidInput reports that the server rejected the value as malformed.
// The wrapped message carries the codec's RuleID for diagnostics.
var ErrInvalidInput = errors.New("grpcaddr: invalid input")

func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() == codes.InvalidArgument {
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	}
	return err
}
