package grpcaddr

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client is a convenience wrapper mirroring the strkey package surface over
// the AddressCodec gRPC service.
type Client struct {
	cc     *grpc.ClientConn
	client AddressCodecClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, client: NewAddressCodecClient(cc), Timeout: 0}, nil
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// Encode converts a 64-character hex contract hash into StrKey form.
func (c *Client) Encode(hexHash string) (string, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Encode(ctx, wrapperspb.String(hexHash))
	if err != nil {
		return "", mapRPC(err)
	}
	return reply.GetValue(), nil
}

// Decode converts a StrKey contract address back to hex.
func (c *Client) Decode(strKey string) (string, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Decode(ctx, wrapperspb.String(strKey))
	if err != nil {
		return "", mapRPC(err)
	}
	return reply.GetValue(), nil
}

// Validate reports whether value is a valid contract StrKey. Transport
// failures read as invalid.
func (c *Client) Validate(value string) bool {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.Validate(ctx, wrapperspb.String(value))
	if err != nil {
		return false
	}
	return reply.GetValue()
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}
