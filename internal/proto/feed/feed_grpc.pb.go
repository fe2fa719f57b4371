// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: feed.proto

package feed

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.32.0 or later.
const _ = grpc.SupportPackageIsVersion7

const (
	FeedService_ListQuotes_FullMethodName     = "/frasehub.feed.v1.FeedService/ListQuotes"
	FeedService_GetQuoteByCode_FullMethodName = "/frasehub.feed.v1.FeedService/GetQuoteByCode"
	FeedService_PublishQuote_FullMethodName   = "/frasehub.feed.v1.FeedService/PublishQuote"
	FeedService_ToggleLike_FullMethodName     = "/frasehub.feed.v1.FeedService/ToggleLike"
	FeedService_HasReacted_FullMethodName     = "/frasehub.feed.v1.FeedService/HasReacted"
	FeedService_RegisterView_FullMethodName   = "/frasehub.feed.v1.FeedService/RegisterView"
	FeedService_TrackView_FullMethodName      = "/frasehub.feed.v1.FeedService/TrackView"
	FeedService_RegisterShare_FullMethodName  = "/frasehub.feed.v1.FeedService/RegisterShare"
	FeedService_CountLikes_FullMethodName     = "/frasehub.feed.v1.FeedService/CountLikes"
)

// FeedServiceClient is the client API for FeedService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type FeedServiceClient interface {
	ListQuotes(ctx context.Context, in *ListQuotesRequest, opts ...grpc.CallOption) (*ListQuotesResponse, error)
	GetQuoteByCode(ctx context.Context, in *GetQuoteByCodeRequest, opts ...grpc.CallOption) (*GetQuoteByCodeResponse, error)
	PublishQuote(ctx context.Context, in *PublishQuoteRequest, opts ...grpc.CallOption) (*PublishQuoteResponse, error)
	ToggleLike(ctx context.Context, in *ToggleLikeRequest, opts ...grpc.CallOption) (*ToggleLikeResponse, error)
	HasReacted(ctx context.Context, in *HasReactedRequest, opts ...grpc.CallOption) (*HasReactedResponse, error)
	RegisterView(ctx context.Context, in *RegisterViewRequest, opts ...grpc.CallOption) (*RegisterViewResponse, error)
	// TrackView defers registration by the configured dwell delay and
	// drops it when the call is cancelled first.
	TrackView(ctx context.Context, in *TrackViewRequest, opts ...grpc.CallOption) (*TrackViewResponse, error)
	RegisterShare(ctx context.Context, in *RegisterShareRequest, opts ...grpc.CallOption) (*RegisterShareResponse, error)
	CountLikes(ctx context.Context, in *CountLikesRequest, opts ...grpc.CallOption) (*CountLikesResponse, error)
}

type feedServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFeedServiceClient(cc grpc.ClientConnInterface) FeedServiceClient {
	return &feedServiceClient{cc}
}

func (c *feedServiceClient) ListQuotes(ctx context.Context, in *ListQuotesRequest, opts ...grpc.CallOption) (*ListQuotesResponse, error) {
	out := new(ListQuotesResponse)
	err := c.cc.Invoke(ctx, FeedService_ListQuotes_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedServiceClient) GetQuoteByCode(ctx context.Context, in *GetQuoteByCodeRequest, opts ...grpc.CallOption) (*GetQuoteByCodeResponse, error) {
	out := new(GetQuoteByCodeResponse)
	err := c.cc.Invoke(ctx, FeedService_GetQuoteByCode_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedServiceClient) PublishQuote(ctx context.Context, in *PublishQuoteRequest, opts ...grpc.CallOption) (*PublishQuoteResponse, error) {
	out := new(PublishQuoteResponse)
	err := c.cc.Invoke(ctx, FeedService_PublishQuote_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedServiceClient) ToggleLike(ctx context.Context, in *ToggleLikeRequest, opts ...grpc.CallOption) (*ToggleLikeResponse, error) {
	out := new(ToggleLikeResponse)
	err := c.cc.Invoke(ctx, FeedService_ToggleLike_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedServiceClient) HasReacted(ctx context.Context, in *HasReactedRequest, opts ...grpc.CallOption) (*HasReactedResponse, error) {
	out := new(HasReactedResponse)
	err := c.cc.Invoke(ctx, FeedService_HasReacted_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedServiceClient) RegisterView(ctx context.Context, in *RegisterViewRequest, opts ...grpc.CallOption) (*RegisterViewResponse, error) {
	out := new(RegisterViewResponse)
	err := c.cc.Invoke(ctx, FeedService_RegisterView_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedServiceClient) TrackView(ctx context.Context, in *TrackViewRequest, opts ...grpc.CallOption) (*TrackViewResponse, error) {
	out := new(TrackViewResponse)
	err := c.cc.Invoke(ctx, FeedService_TrackView_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedServiceClient) RegisterShare(ctx context.Context, in *RegisterShareRequest, opts ...grpc.CallOption) (*RegisterShareResponse, error) {
	out := new(RegisterShareResponse)
	err := c.cc.Invoke(ctx, FeedService_RegisterShare_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *feedServiceClient) CountLikes(ctx context.Context, in *CountLikesRequest, opts ...grpc.CallOption) (*CountLikesResponse, error) {
	out := new(CountLikesResponse)
	err := c.cc.Invoke(ctx, FeedService_CountLikes_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FeedServiceServer is the server API for FeedService service.
// All implementations must embed UnimplementedFeedServiceServer
// for forward compatibility
type FeedServiceServer interface {
	ListQuotes(context.Context, *ListQuotesRequest) (*ListQuotesResponse, error)
	GetQuoteByCode(context.Context, *GetQuoteByCodeRequest) (*GetQuoteByCodeResponse, error)
	PublishQuote(context.Context, *PublishQuoteRequest) (*PublishQuoteResponse, error)
	ToggleLike(context.Context, *ToggleLikeRequest) (*ToggleLikeResponse, error)
	HasReacted(context.Context, *HasReactedRequest) (*HasReactedResponse, error)
	RegisterView(context.Context, *RegisterViewRequest) (*RegisterViewResponse, error)
	// TrackView defers registration by the configured dwell delay and
	// drops it when the call is cancelled first.
	TrackView(context.Context, *TrackViewRequest) (*TrackViewResponse, error)
	RegisterShare(context.Context, *RegisterShareRequest) (*RegisterShareResponse, error)
	CountLikes(context.Context, *CountLikesRequest) (*CountLikesResponse, error)
	mustEmbedUnimplementedFeedServiceServer()
}

// UnimplementedFeedServiceServer must be embedded to have forward compatible implementations.
type UnimplementedFeedServiceServer struct {
}

func (UnimplementedFeedServiceServer) ListQuotes(context.Context, *ListQuotesRequest) (*ListQuotesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListQuotes not implemented")
}
func (UnimplementedFeedServiceServer) GetQuoteByCode(context.Context, *GetQuoteByCodeRequest) (*GetQuoteByCodeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetQuoteByCode not implemented")
}
func (UnimplementedFeedServiceServer) PublishQuote(context.Context, *PublishQuoteRequest) (*PublishQuoteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PublishQuote not implemented")
}
func (UnimplementedFeedServiceServer) ToggleLike(context.Context, *ToggleLikeRequest) (*ToggleLikeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ToggleLike not implemented")
}
func (UnimplementedFeedServiceServer) HasReacted(context.Context, *HasReactedRequest) (*HasReactedResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method HasReacted not implemented")
}
func (UnimplementedFeedServiceServer) RegisterView(context.Context, *RegisterViewRequest) (*RegisterViewResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterView not implemented")
}
func (UnimplementedFeedServiceServer) TrackView(context.Context, *TrackViewRequest) (*TrackViewResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TrackView not implemented")
}
func (UnimplementedFeedServiceServer) RegisterShare(context.Context, *RegisterShareRequest) (*RegisterShareResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterShare not implemented")
}
func (UnimplementedFeedServiceServer) CountLikes(context.Context, *CountLikesRequest) (*CountLikesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CountLikes not implemented")
}
func (UnimplementedFeedServiceServer) mustEmbedUnimplementedFeedServiceServer() {}

// UnsafeFeedServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to FeedServiceServer will
// result in compilation errors.
type UnsafeFeedServiceServer interface {
	mustEmbedUnimplementedFeedServiceServer()
}

func RegisterFeedServiceServer(s grpc.ServiceRegistrar, srv FeedServiceServer) {
	s.RegisterService(&FeedService_ServiceDesc, srv)
}

func _FeedService_ListQuotes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListQuotesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedServiceServer).ListQuotes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedService_ListQuotes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedServiceServer).ListQuotes(ctx, req.(*ListQuotesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedService_GetQuoteByCode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetQuoteByCodeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedServiceServer).GetQuoteByCode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedService_GetQuoteByCode_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedServiceServer).GetQuoteByCode(ctx, req.(*GetQuoteByCodeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedService_PublishQuote_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PublishQuoteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedServiceServer).PublishQuote(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedService_PublishQuote_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedServiceServer).PublishQuote(ctx, req.(*PublishQuoteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedService_ToggleLike_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ToggleLikeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedServiceServer).ToggleLike(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedService_ToggleLike_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedServiceServer).ToggleLike(ctx, req.(*ToggleLikeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedService_HasReacted_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HasReactedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedServiceServer).HasReacted(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedService_HasReacted_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedServiceServer).HasReacted(ctx, req.(*HasReactedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedService_RegisterView_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterViewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedServiceServer).RegisterView(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedService_RegisterView_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedServiceServer).RegisterView(ctx, req.(*RegisterViewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedService_TrackView_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TrackViewRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedServiceServer).TrackView(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedService_TrackView_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedServiceServer).TrackView(ctx, req.(*TrackViewRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedService_RegisterShare_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterShareRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedServiceServer).RegisterShare(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedService_RegisterShare_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedServiceServer).RegisterShare(ctx, req.(*RegisterShareRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FeedService_CountLikes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CountLikesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FeedServiceServer).CountLikes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FeedService_CountLikes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FeedServiceServer).CountLikes(ctx, req.(*CountLikesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FeedService_ServiceDesc is the grpc.ServiceDesc for FeedService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var FeedService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "frasehub.feed.v1.FeedService",
	HandlerType: (*FeedServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListQuotes",
			Handler:    _FeedService_ListQuotes_Handler,
		},
		{
			MethodName: "GetQuoteByCode",
			Handler:    _FeedService_GetQuoteByCode_Handler,
		},
		{
			MethodName: "PublishQuote",
			Handler:    _FeedService_PublishQuote_Handler,
		},
		{
			MethodName: "ToggleLike",
			Handler:    _FeedService_ToggleLike_Handler,
		},
		{
			MethodName: "HasReacted",
			Handler:    _FeedService_HasReacted_Handler,
		},
		{
			MethodName: "RegisterView",
			Handler:    _FeedService_RegisterView_Handler,
		},
		{
			MethodName: "TrackView",
			Handler:    _FeedService_TrackView_Handler,
		},
		{
			MethodName: "RegisterShare",
			Handler:    _FeedService_RegisterShare_Handler,
		},
		{
			MethodName: "CountLikes",
			Handler:    _FeedService_CountLikes_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "feed.proto",
}
