package grpcaddr

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	RegisterAddressCodecServer(srv, &Server{})

	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	dialer := func(ctx context.Context, s string) (net.Conn, error) { return lis.Dial() }
	cc, err := grpc.DialContext(
		context.Background(),
		"bufnet",
		grpc.WithContextDialer(dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("DialContext: %v", err)
	}
	t.Cleanup(func() { _ = cc.Close() })

	return &Client{cc: cc, client: NewAddressCodecClient(cc), Timeout: 2 * time.Second}
}

func TestAddressCodec_RoundTrip(t *testing.T) {
	client := newTestClient(t)

	hexIn := strings.Repeat("00", 32)
	addr, err := client.Encode(hexIn)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if addr != "CAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABSC4" {
		t.Fatalf("Encode = %s", addr)
	}
	hexOut, err := client.Decode(addr)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if hexOut != hexIn {
		t.Fatalf("round trip mismatch: %s", hexOut)
	}
}

func TestAddressCodec_Validate(t *testing.T) {
	client := newTestClient(t)

	if !client.Validate("CAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAABSC4") {
		t.Fatalf("expected valid")
	}
	if client.Validate("not an address") {
		t.Fatalf("expected invalid")
	}
}

func TestAddressCodec_InvalidInputMapping(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Encode("zz")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	// The server includes the stable RuleID for diagnostics.
	if !strings.Contains(err.Error(), "STRKEY-") {
		t.Fatalf("RuleID missing from error: %v", err)
	}

	_, err = client.Decode("CAAA")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
