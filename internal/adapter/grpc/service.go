package grpc

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "sweep.v1.SweepService"

// SweepServiceServer is the server API for sweep.v1.SweepService
type SweepServiceServer interface {
	GetPlan(context.Context, *GetPlanRequest) (*GetPlanResponse, error)
	GetDashboard(context.Context, *GetDashboardRequest) (*GetDashboardResponse, error)
	ListAccounts(context.Context, *ListAccountsRequest) (*ListAccountsResponse, error)
	SaveAccount(context.Context, *SaveAccountRequest) (*SaveAccountResponse, error)
	DeleteAccount(context.Context, *DeleteAccountRequest) (*DeleteAccountResponse, error)
	ListCreditCards(context.Context, *ListCreditCardsRequest) (*ListCreditCardsResponse, error)
	SaveCreditCard(context.Context, *SaveCreditCardRequest) (*SaveCreditCardResponse, error)
	DeleteCreditCard(context.Context, *DeleteCreditCardRequest) (*DeleteCreditCardResponse, error)
	ListRecurringExpenses(context.Context, *ListRecurringExpensesRequest) (*ListRecurringExpensesResponse, error)
	SaveRecurringExpense(context.Context, *SaveRecurringExpenseRequest) (*SaveRecurringExpenseResponse, error)
	DeleteRecurringExpense(context.Context, *DeleteRecurringExpenseRequest) (*DeleteRecurringExpenseResponse, error)
}

// RegisterSweepServiceServer registers srv on s
func RegisterSweepServiceServer(s grpc.ServiceRegistrar, srv SweepServiceServer) {
	s.RegisterService(&SweepService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to grpc.MethodHandler
func unaryHandler[Req any, Resp any](method string, call func(SweepServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	fullMethod := "/" + ServiceName + "/" + method
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SweepServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(SweepServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// SweepService_ServiceDesc is the grpc.ServiceDesc for sweep.v1.SweepService
var SweepService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SweepServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetPlan", Handler: unaryHandler("GetPlan", SweepServiceServer.GetPlan)},
		{MethodName: "GetDashboard", Handler: unaryHandler("GetDashboard", SweepServiceServer.GetDashboard)},
		{MethodName: "ListAccounts", Handler: unaryHandler("ListAccounts", SweepServiceServer.ListAccounts)},
		{MethodName: "SaveAccount", Handler: unaryHandler("SaveAccount", SweepServiceServer.SaveAccount)},
		{MethodName: "DeleteAccount", Handler: unaryHandler("DeleteAccount", SweepServiceServer.DeleteAccount)},
		{MethodName: "ListCreditCards", Handler: unaryHandler("ListCreditCards", SweepServiceServer.ListCreditCards)},
		{MethodName: "SaveCreditCard", Handler: unaryHandler("SaveCreditCard", SweepServiceServer.SaveCreditCard)},
		{MethodName: "DeleteCreditCard", Handler: unaryHandler("DeleteCreditCard", SweepServiceServer.DeleteCreditCard)},
		{MethodName: "ListRecurringExpenses", Handler: unaryHandler("ListRecurringExpenses", SweepServiceServer.ListRecurringExpenses)},
		{MethodName: "SaveRecurringExpense", Handler: unaryHandler("SaveRecurringExpense", SweepServiceServer.SaveRecurringExpense)},
		{MethodName: "DeleteRecurringExpense", Handler: unaryHandler("DeleteRecurringExpense", SweepServiceServer.DeleteRecurringExpense)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sweep/v1/sweep.json",
}

// SweepServiceClient is the client API for sweep.v1.SweepService.
// Every call is sent with the json content-subtype.
type SweepServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSweepServiceClient creates a client on top of an existing connection
func NewSweepServiceClient(cc grpc.ClientConnInterface) *SweepServiceClient {
	return &SweepServiceClient{cc: cc}
}

func invoke[Req any, Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SweepServiceClient) GetPlan(ctx context.Context, in *GetPlanRequest, opts ...grpc.CallOption) (*GetPlanResponse, error) {
	return invoke[GetPlanRequest, GetPlanResponse](ctx, c.cc, "GetPlan", in, opts)
}

func (c *SweepServiceClient) GetDashboard(ctx context.Context, in *GetDashboardRequest, opts ...grpc.CallOption) (*GetDashboardResponse, error) {
	return invoke[GetDashboardRequest, GetDashboardResponse](ctx, c.cc, "GetDashboard", in, opts)
}

func (c *SweepServiceClient) ListAccounts(ctx context.Context, in *ListAccountsRequest, opts ...grpc.CallOption) (*ListAccountsResponse, error) {
	return invoke[ListAccountsRequest, ListAccountsResponse](ctx, c.cc, "ListAccounts", in, opts)
}

func (c *SweepServiceClient) SaveAccount(ctx context.Context, in *SaveAccountRequest, opts ...grpc.CallOption) (*SaveAccountResponse, error) {
	return invoke[SaveAccountRequest, SaveAccountResponse](ctx, c.cc, "SaveAccount", in, opts)
}

func (c *SweepServiceClient) DeleteAccount(ctx context.Context, in *DeleteAccountRequest, opts ...grpc.CallOption) (*DeleteAccountResponse, error) {
	return invoke[DeleteAccountRequest, DeleteAccountResponse](ctx, c.cc, "DeleteAccount", in, opts)
}

func (c *SweepServiceClient) ListCreditCards(ctx context.Context, in *ListCreditCardsRequest, opts ...grpc.CallOption) (*ListCreditCardsResponse, error) {
	return invoke[ListCreditCardsRequest, ListCreditCardsResponse](ctx, c.cc, "ListCreditCards", in, opts)
}

func (c *SweepServiceClient) SaveCreditCard(ctx context.Context, in *SaveCreditCardRequest, opts ...grpc.CallOption) (*SaveCreditCardResponse, error) {
	return invoke[SaveCreditCardRequest, SaveCreditCardResponse](ctx, c.cc, "SaveCreditCard", in, opts)
}

func (c *SweepServiceClient) DeleteCreditCard(ctx context.Context, in *DeleteCreditCardRequest, opts ...grpc.CallOption) (*DeleteCreditCardResponse, error) {
	return invoke[DeleteCreditCardRequest, DeleteCreditCardResponse](ctx, c.cc, "DeleteCreditCard", in, opts)
}

func (c *SweepServiceClient) ListRecurringExpenses(ctx context.Context, in *ListRecurringExpensesRequest, opts ...grpc.CallOption) (*ListRecurringExpensesResponse, error) {
	return invoke[ListRecurringExpensesRequest, ListRecurringExpensesResponse](ctx, c.cc, "ListRecurringExpenses", in, opts)
}

func (c *SweepServiceClient) SaveRecurringExpense(ctx context.Context, in *SaveRecurringExpenseRequest, opts ...grpc.CallOption) (*SaveRecurringExpenseResponse, error) {
	return invoke[SaveRecurringExpenseRequest, SaveRecurringExpenseResponse](ctx, c.cc, "SaveRecurringExpense", in, opts)
}

func (c *SweepServiceClient) DeleteRecurringExpense(ctx context.Context, in *DeleteRecurringExpenseRequest, opts ...grpc.CallOption) (*DeleteRecurringExpenseResponse, error) {
	return invoke[DeleteRecurringExpenseRequest, DeleteRecurringExpenseResponse](ctx, c.cc, "DeleteRecurringExpense", in, opts)
}
