package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/rl1809/tableside/internal/adapter/handler/tableapi"
	"github.com/rl1809/tableside/internal/core/catalog"
	"github.com/rl1809/tableside/internal/core/identify"
	"github.com/rl1809/tableside/internal/core/service"
)

type HTTPHandler struct {
	session *service.SessionService
	menu    *catalog.Catalog
	tables  *tableIdentifier
}

type ErrorHTTPResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Reason   string `json:"reason,omitempty"`
	Fallback string `json:"fallback,omitempty"`
}

type ManualTableHTTPRequest struct {
	Number string `json:"number"`
}

type SetQuantityHTTPRequest struct {
	Quantity *int `json:"quantity"`
}

func NewHTTPHandler(session *service.SessionService, menu *catalog.Catalog, cfg IdentifyConfig) *HTTPHandler {
	return &HTTPHandler{
		session: session,
		menu:    menu,
		tables:  &tableIdentifier{session: session, cfg: cfg},
	}
}

func (h *HTTPHandler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/menu/categories", h.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/menu/categories/{category}/items", h.ListItems).Methods(http.MethodGet)

	api.HandleFunc("/session", h.GetSession).Methods(http.MethodGet)
	api.HandleFunc("/session/table/manual", h.IdentifyManual).Methods(http.MethodPost)
	api.HandleFunc("/session/table/scan", h.IdentifyScan).Methods(http.MethodPost)
	api.HandleFunc("/session/table", h.ClearIdentity).Methods(http.MethodDelete)

	api.HandleFunc("/cart/items/{id}", h.AddItem).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{id}/unit", h.RemoveOneUnit).Methods(http.MethodDelete)
	api.HandleFunc("/cart/items/{id}", h.DeleteItem).Methods(http.MethodDelete)
	api.HandleFunc("/cart/items/{id}", h.SetQuantity).Methods(http.MethodPut)

	api.HandleFunc("/checkout", h.Checkout).Methods(http.MethodPost)
	return r
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, tableapi.CategoriesReply{Categories: h.menu.Categories()})
}

func (h *HTTPHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	items := h.menu.Items(category)
	reply := tableapi.ItemsReply{Category: category, Items: make([]tableapi.MenuItem, 0, len(items))}
	for _, it := range items {
		reply.Items = append(reply.Items, toMenuItem(it, h.session.QuantityOf(it.ID)))
	}
	writeJSON(w, http.StatusOK, reply)
}

func (h *HTTPHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.writeSession(w)
}

func (h *HTTPHandler) IdentifyManual(w http.ResponseWriter, r *http.Request) {
	var req ManualTableHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.tables.manual(r.Context(), req.Number); err != nil {
		if errors.Is(err, identify.ErrEmptyTableNumber) {
			writeError(w, http.StatusBadRequest, "table number is required")
			return
		}
		h.internalError(w, "identify manual", err)
		return
	}
	h.writeSession(w)
}

func (h *HTTPHandler) IdentifyScan(w http.ResponseWriter, r *http.Request) {
	err := h.tables.scan(r.Context())
	if err != nil {
		var ue *identify.UnavailableError
		switch {
		case errors.As(err, &ue):
			writeJSON(w, http.StatusServiceUnavailable, ErrorHTTPResponse{
				Success:  false,
				Message:  ue.Message(),
				Reason:   string(ue.Reason),
				Fallback: tableapi.MethodManual,
			})
		case errors.Is(err, ErrScanTimeout):
			writeJSON(w, http.StatusGatewayTimeout, ErrorHTTPResponse{
				Success:  false,
				Message:  "no code was scanned, please enter your table number",
				Fallback: tableapi.MethodManual,
			})
		default:
			h.internalError(w, "identify scan", err)
		}
		return
	}
	h.writeSession(w)
}

func (h *HTTPHandler) ClearIdentity(w http.ResponseWriter, r *http.Request) {
	if err := h.session.ClearIdentity(r.Context()); err != nil {
		h.internalError(w, "clear identity", err)
		return
	}
	h.writeSession(w)
}

func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	item, ok := h.menu.Item(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, "unknown menu item")
		return
	}

	if err := h.session.AddItem(r.Context(), item); err != nil {
		h.internalError(w, "add item", err)
		return
	}
	h.writeSession(w)
}

func (h *HTTPHandler) RemoveOneUnit(w http.ResponseWriter, r *http.Request) {
	if err := h.session.RemoveOneUnit(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.internalError(w, "remove unit", err)
		return
	}
	h.writeSession(w)
}

func (h *HTTPHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.session.DeleteItem(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.internalError(w, "delete item", err)
		return
	}
	h.writeSession(w)
}

func (h *HTTPHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req SetQuantityHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity == nil {
		writeError(w, http.StatusBadRequest, "quantity is required")
		return
	}

	if err := h.session.SetQuantity(r.Context(), mux.Vars(r)["id"], *req.Quantity); err != nil {
		h.internalError(w, "set quantity", err)
		return
	}
	h.writeSession(w)
}

func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.session.Checkout(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			writeError(w, http.StatusConflict, "cart is empty")
			return
		}
		h.internalError(w, "checkout", err)
		return
	}
	writeJSON(w, http.StatusOK, tableapi.CheckoutReply{
		Receipt: toReceipt(receipt),
		Session: toSession(h.session.Snapshot()),
	})
}

func (h *HTTPHandler) writeSession(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, toSession(h.session.Snapshot()))
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, op string, err error) {
	log.Printf("http: %s: %v", op, err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorHTTPResponse{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
