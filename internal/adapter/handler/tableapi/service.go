package tableapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "tableside.TableService"

type TableServiceServer interface {
	Identify(context.Context, *IdentifyRequest) (*Session, error)
	ClearIdentity(context.Context, *Empty) (*Session, error)
	GetSession(context.Context, *Empty) (*Session, error)
	ListCategories(context.Context, *Empty) (*CategoriesReply, error)
	ListItems(context.Context, *ListItemsRequest) (*ItemsReply, error)
	AddItem(context.Context, *ItemRequest) (*Session, error)
	RemoveOneUnit(context.Context, *ItemRequest) (*Session, error)
	DeleteItem(context.Context, *ItemRequest) (*Session, error)
	SetQuantity(context.Context, *SetQuantityRequest) (*Session, error)
	Checkout(context.Context, *Empty) (*CheckoutReply, error)
}

// UnimplementedTableServiceServer can be embedded to satisfy
// TableServiceServer while only some methods are implemented.
type UnimplementedTableServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedTableServiceServer) Identify(context.Context, *IdentifyRequest) (*Session, error) {
	return nil, unimplemented("Identify")
}
func (UnimplementedTableServiceServer) ClearIdentity(context.Context, *Empty) (*Session, error) {
	return nil, unimplemented("ClearIdentity")
}
func (UnimplementedTableServiceServer) GetSession(context.Context, *Empty) (*Session, error) {
	return nil, unimplemented("GetSession")
}
func (UnimplementedTableServiceServer) ListCategories(context.Context, *Empty) (*CategoriesReply, error) {
	return nil, unimplemented("ListCategories")
}
func (UnimplementedTableServiceServer) ListItems(context.Context, *ListItemsRequest) (*ItemsReply, error) {
	return nil, unimplemented("ListItems")
}
func (UnimplementedTableServiceServer) AddItem(context.Context, *ItemRequest) (*Session, error) {
	return nil, unimplemented("AddItem")
}
func (UnimplementedTableServiceServer) RemoveOneUnit(context.Context, *ItemRequest) (*Session, error) {
	return nil, unimplemented("RemoveOneUnit")
}
func (UnimplementedTableServiceServer) DeleteItem(context.Context, *ItemRequest) (*Session, error) {
	return nil, unimplemented("DeleteItem")
}
func (UnimplementedTableServiceServer) SetQuantity(context.Context, *SetQuantityRequest) (*Session, error) {
	return nil, unimplemented("SetQuantity")
}
func (UnimplementedTableServiceServer) Checkout(context.Context, *Empty) (*CheckoutReply, error) {
	return nil, unimplemented("Checkout")
}

func unaryMethod[Req, Resp any](name string, call func(TableServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(TableServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(srv.(TableServiceServer), ctx, req.(*Req))
			})
		},
	}
}

var TableServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TableServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("Identify", TableServiceServer.Identify),
		unaryMethod("ClearIdentity", TableServiceServer.ClearIdentity),
		unaryMethod("GetSession", TableServiceServer.GetSession),
		unaryMethod("ListCategories", TableServiceServer.ListCategories),
		unaryMethod("ListItems", TableServiceServer.ListItems),
		unaryMethod("AddItem", TableServiceServer.AddItem),
		unaryMethod("RemoveOneUnit", TableServiceServer.RemoveOneUnit),
		unaryMethod("DeleteItem", TableServiceServer.DeleteItem),
		unaryMethod("SetQuantity", TableServiceServer.SetQuantity),
		unaryMethod("Checkout", TableServiceServer.Checkout),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tableside/table_service",
}

func RegisterTableServiceServer(s grpc.ServiceRegistrar, srv TableServiceServer) {
	s.RegisterService(&TableServiceDesc, srv)
}

// TableServiceClient calls TableService using the JSON codec.
type TableServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTableServiceClient(cc grpc.ClientConnInterface) *TableServiceClient {
	return &TableServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *TableServiceClient) Identify(ctx context.Context, in *IdentifyRequest, opts ...grpc.CallOption) (*Session, error) {
	return invoke[Session](ctx, c.cc, "Identify", in, opts)
}

func (c *TableServiceClient) ClearIdentity(ctx context.Context, opts ...grpc.CallOption) (*Session, error) {
	return invoke[Session](ctx, c.cc, "ClearIdentity", &Empty{}, opts)
}

func (c *TableServiceClient) GetSession(ctx context.Context, opts ...grpc.CallOption) (*Session, error) {
	return invoke[Session](ctx, c.cc, "GetSession", &Empty{}, opts)
}

func (c *TableServiceClient) ListCategories(ctx context.Context, opts ...grpc.CallOption) (*CategoriesReply, error) {
	return invoke[CategoriesReply](ctx, c.cc, "ListCategories", &Empty{}, opts)
}

func (c *TableServiceClient) ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ItemsReply, error) {
	return invoke[ItemsReply](ctx, c.cc, "ListItems", in, opts)
}

func (c *TableServiceClient) AddItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*Session, error) {
	return invoke[Session](ctx, c.cc, "AddItem", in, opts)
}

func (c *TableServiceClient) RemoveOneUnit(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*Session, error) {
	return invoke[Session](ctx, c.cc, "RemoveOneUnit", in, opts)
}

func (c *TableServiceClient) DeleteItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*Session, error) {
	return invoke[Session](ctx, c.cc, "DeleteItem", in, opts)
}

func (c *TableServiceClient) SetQuantity(ctx context.Context, in *SetQuantityRequest, opts ...grpc.CallOption) (*Session, error) {
	return invoke[Session](ctx, c.cc, "SetQuantity", in, opts)
}

func (c *TableServiceClient) Checkout(ctx context.Context, opts ...grpc.CallOption) (*CheckoutReply, error) {
	return invoke[CheckoutReply](ctx, c.cc, "Checkout", &Empty{}, opts)
}
