package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc"

	"github.com/christopherkarani/blendv3-sub002/grpcaddr"
)

func main() {
	fs := flag.NewFlagSet("blend-addrd", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7780", "listen address")

	_ = fs.Parse(os.Args[1:])

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer()
	grpcaddr.RegisterAddressCodecServer(s, &grpcaddr.Server{})

	fmt.Fprintf(os.Stderr, "blend-addrd listening on %s\n", lis.Addr().String())
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
