// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: toolprovider.proto

package toolsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ToolProvider_Invoke_FullMethodName = "/prospector.tools.v1.ToolProvider/Invoke"
)

// ToolProviderClient is the client API for ToolProvider service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ToolProvider is the in-house provider service contract. Providers that
// are not reachable as public HTTP APIs (internal scrapers, warehouse
// lookups) implement this service and are bound via the grpc adapter.
type ToolProviderClient interface {
	// Invoke executes one operation and returns its result.
	Invoke(ctx context.Context, in *InvokeToolRequest, opts ...grpc.CallOption) (*InvokeToolResponse, error)
}

type toolProviderClient struct {
	cc grpc.ClientConnInterface
}

func NewToolProviderClient(cc grpc.ClientConnInterface) ToolProviderClient {
	return &toolProviderClient{cc}
}

func (c *toolProviderClient) Invoke(ctx context.Context, in *InvokeToolRequest, opts ...grpc.CallOption) (*InvokeToolResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(InvokeToolResponse)
	err := c.cc.Invoke(ctx, ToolProvider_Invoke_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ToolProviderServer is the server API for ToolProvider service.
// All implementations must embed UnimplementedToolProviderServer
// for forward compatibility.
//
// ToolProvider is the in-house provider service contract. Providers that
// are not reachable as public HTTP APIs (internal scrapers, warehouse
// lookups) implement this service and are bound via the grpc adapter.
type ToolProviderServer interface {
	// Invoke executes one operation and returns its result.
	Invoke(context.Context, *InvokeToolRequest) (*InvokeToolResponse, error)
	mustEmbedUnimplementedToolProviderServer()
}

// UnimplementedToolProviderServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedToolProviderServer struct{}

func (UnimplementedToolProviderServer) Invoke(context.Context, *InvokeToolRequest) (*InvokeToolResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Invoke not implemented")
}
func (UnimplementedToolProviderServer) mustEmbedUnimplementedToolProviderServer() {}
func (UnimplementedToolProviderServer) testEmbeddedByValue()                      {}

// UnsafeToolProviderServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ToolProviderServer will
// result in compilation errors.
type UnsafeToolProviderServer interface {
	mustEmbedUnimplementedToolProviderServer()
}

func RegisterToolProviderServer(s grpc.ServiceRegistrar, srv ToolProviderServer) {
	// If the following call panics, it indicates UnimplementedToolProviderServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ToolProvider_ServiceDesc, srv)
}

func _ToolProvider_Invoke_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InvokeToolRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ToolProviderServer).Invoke(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ToolProvider_Invoke_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ToolProviderServer).Invoke(ctx, req.(*InvokeToolRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ToolProvider_ServiceDesc is the grpc.ServiceDesc for ToolProvider service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ToolProvider_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "prospector.tools.v1.ToolProvider",
	HandlerType: (*ToolProviderServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Invoke",
			Handler:    _ToolProvider_Invoke_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "toolprovider.proto",
}
