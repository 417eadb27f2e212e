package grpcaddr

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// AddressCodecServer is the server API for the AddressCodec gRPC service.
//
// We intentionally use protobuf well-known wrapper types so this package does
// not require a protoc/codegen toolchain.
//
// Proto definition: addresscodec.proto.
type AddressCodecServer interface {
	Encode(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	Decode(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	Validate(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
}

// UnimplementedAddressCodecServer can be embedded to have forward compatible
// implementations.
type UnimplementedAddressCodecServer struct{}

func (UnimplementedAddressCodecServer) Encode(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Encode not implemented")
}
func (UnimplementedAddressCodecServer) Decode(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Decode not implemented")
}
func (UnimplementedAddressCodecServer) Validate(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Validate not implemented")
}

// RegisterAddressCodecServer registers the AddressCodec service on a gRPC
// server.
func RegisterAddressCodecServer(s grpc.ServiceRegistrar, srv AddressCodecServer) {
	s.RegisterService(&AddressCodec_ServiceDesc, srv)
}

// AddressCodecClient is the client API for the AddressCodec gRPC service.
type AddressCodecClient interface {
	Encode(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Decode(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Validate(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
}

type addressCodecClient struct{ cc grpc.ClientConnInterface }

func NewAddressCodecClient(cc grpc.ClientConnInterface) AddressCodecClient {
	return &addressCodecClient{cc: cc}
}

func (c *addressCodecClient) Encode(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, "/blend.strkey.v1.AddressCodec/Encode", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *addressCodecClient) Decode(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, "/blend.strkey.v1.AddressCodec/Decode", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *addressCodecClient) Validate(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	err := c.cc.Invoke(ctx, "/blend.strkey.v1.AddressCodec/Validate", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func _AddressCodec_Encode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AddressCodecServer).Encode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/blend.strkey.v1.AddressCodec/Encode"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AddressCodecServer).Encode(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _AddressCodec_Decode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AddressCodecServer).Decode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/blend.strkey.v1.AddressCodec/Decode"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AddressCodecServer).Decode(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _AddressCodec_Validate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AddressCodecServer).Validate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/blend.strkey.v1.AddressCodec/Validate"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AddressCodecServer).Validate(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// AddressCodec_ServiceDesc is the grpc.ServiceDesc for the AddressCodec
// service.
var AddressCodec_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "blend.strkey.v1.AddressCodec",
	HandlerType: (*AddressCodecServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Encode", Handler: _AddressCodec_Encode_Handler},
		{MethodName: "Decode", Handler: _AddressCodec_Decode_Handler},
		{MethodName: "Validate", Handler: _AddressCodec_Validate_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "addresscodec.proto",
}
