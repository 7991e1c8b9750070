package handler

import (
	"context"
	"errors"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rl1809/tableside/internal/adapter/handler/tableapi"
	"github.com/rl1809/tableside/internal/core/catalog"
	"github.com/rl1809/tableside/internal/core/identify"
	"github.com/rl1809/tableside/internal/core/service"
)

type GRPCHandler struct {
	tableapi.UnimplementedTableServiceServer
	session *service.SessionService
	menu    *catalog.Catalog
	tables  *tableIdentifier
}

func NewGRPCHandler(session *service.SessionService, menu *catalog.Catalog, cfg IdentifyConfig) *GRPCHandler {
	return &GRPCHandler{
		session: session,
		menu:    menu,
		tables:  &tableIdentifier{session: session, cfg: cfg},
	}
}

func (h *GRPCHandler) Identify(ctx context.Context, req *tableapi.IdentifyRequest) (*tableapi.Session, error) {
	var err error
	switch req.Method {
	case tableapi.MethodManual, "":
		err = h.tables.manual(ctx, req.Number)
	case tableapi.MethodScan:
		err = h.tables.scan(ctx)
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown identify method %q", req.Method)
	}

	if err != nil {
		var ue *identify.UnavailableError
		switch {
		case errors.Is(err, identify.ErrEmptyTableNumber):
			return nil, status.Error(codes.InvalidArgument, "table number is required")
		case errors.As(err, &ue):
			return nil, status.Error(codes.Unavailable, ue.Message())
		case errors.Is(err, ErrScanTimeout):
			return nil, status.Error(codes.DeadlineExceeded, "no code was scanned, please enter your table number")
		default:
			return nil, internal("identify", err)
		}
	}
	return h.snapshot(), nil
}

func (h *GRPCHandler) ClearIdentity(ctx context.Context, _ *tableapi.Empty) (*tableapi.Session, error) {
	if err := h.session.ClearIdentity(ctx); err != nil {
		return nil, internal("clear identity", err)
	}
	return h.snapshot(), nil
}

func (h *GRPCHandler) GetSession(ctx context.Context, _ *tableapi.Empty) (*tableapi.Session, error) {
	return h.snapshot(), nil
}

func (h *GRPCHandler) ListCategories(ctx context.Context, _ *tableapi.Empty) (*tableapi.CategoriesReply, error) {
	return &tableapi.CategoriesReply{Categories: h.menu.Categories()}, nil
}

func (h *GRPCHandler) ListItems(ctx context.Context, req *tableapi.ListItemsRequest) (*tableapi.ItemsReply, error) {
	items := h.menu.Items(req.Category)
	reply := &tableapi.ItemsReply{Category: req.Category, Items: make([]tableapi.MenuItem, 0, len(items))}
	for _, it := range items {
		reply.Items = append(reply.Items, toMenuItem(it, h.session.QuantityOf(it.ID)))
	}
	return reply, nil
}

func (h *GRPCHandler) AddItem(ctx context.Context, req *tableapi.ItemRequest) (*tableapi.Session, error) {
	item, ok := h.menu.Item(req.ItemID)
	if !ok {
		return nil, status.Errorf(codes.NotFound, "unknown menu item %q", req.ItemID)
	}
	if err := h.session.AddItem(ctx, item); err != nil {
		return nil, internal("add item", err)
	}
	return h.snapshot(), nil
}

func (h *GRPCHandler) RemoveOneUnit(ctx context.Context, req *tableapi.ItemRequest) (*tableapi.Session, error) {
	if err := h.session.RemoveOneUnit(ctx, req.ItemID); err != nil {
		return nil, internal("remove unit", err)
	}
	return h.snapshot(), nil
}

func (h *GRPCHandler) DeleteItem(ctx context.Context, req *tableapi.ItemRequest) (*tableapi.Session, error) {
	if err := h.session.DeleteItem(ctx, req.ItemID); err != nil {
		return nil, internal("delete item", err)
	}
	return h.snapshot(), nil
}

func (h *GRPCHandler) SetQuantity(ctx context.Context, req *tableapi.SetQuantityRequest) (*tableapi.Session, error) {
	if err := h.session.SetQuantity(ctx, req.ItemID, req.Quantity); err != nil {
		return nil, internal("set quantity", err)
	}
	return h.snapshot(), nil
}

func (h *GRPCHandler) Checkout(ctx context.Context, _ *tableapi.Empty) (*tableapi.CheckoutReply, error) {
	receipt, err := h.session.Checkout(ctx)
	if errors.Is(err, service.ErrEmptyCart) {
		return nil, status.Error(codes.FailedPrecondition, "cart is empty")
	}
	if err != nil {
		return nil, internal("checkout", err)
	}
	return &tableapi.CheckoutReply{
		Receipt: toReceipt(receipt),
		Session: *h.snapshot(),
	}, nil
}

func (h *GRPCHandler) snapshot() *tableapi.Session {
	s := toSession(h.session.Snapshot())
	return &s
}

func internal(op string, err error) error {
	log.Printf("grpc: %s: %v", op, err)
	return status.Error(codes.Internal, "internal error")
}
