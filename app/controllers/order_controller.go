package controllers

import (
	"errors"
	"net/http"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/services"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/bind"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/middleware"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/response"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Index lists orders. Customers see only their own; admins see all and
// may filter by status.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	f := repositories.OrderFilter{
		Status: r.URL.Query().Get("status"),
		Page:   page,
		Limit:  limit,
	}
	if !isAdmin(r) {
		userID, ok := middleware.UserIDFromCtx(r.Context())
		if !ok {
			response.Unauthorized(w)
			return
		}
		f.UserID = userID
	}

	orders, p, err := c.orders.List(f)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to list orders")
		return
	}
	response.Paginated(w, orders, p)
}

// Show returns one order. Customers may only read their own.
func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r)
	if !ok {
		return
	}

	order, err := c.orders.Find(id)
	if err != nil {
		if database.IsNotFound(err) {
			response.NotFound(w, "order not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	if !isAdmin(r) {
		userID, _ := middleware.UserIDFromCtx(r.Context())
		if order.UserID != userID {
			response.NotFound(w, "order not found")
			return
		}
	}

	response.Success(w, order)
}

// Store places an order for the authenticated user.
func (c *OrderController) Store(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	var in services.OrderInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.orders.Create(userID, in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyOrder):
			response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrProductUnavailable):
			response.Error(w, http.StatusUnprocessableEntity, err.Error())
		default:
			response.Error(w, http.StatusInternalServerError, "failed to create order")
		}
		return
	}

	response.Created(w, order)
}

type orderStatusRequest struct {
	Status string `json:"status" validate:"required,in=pending,processing,completed,cancelled,refunded"`
}

// UpdateStatus moves an order along the transition table. Admin only.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r)
	if !ok {
		return
	}

	var req orderStatusRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	order, err := c.orders.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case database.IsNotFound(err):
			response.NotFound(w, "order not found")
		case errors.Is(err, services.ErrIllegalTransition):
			response.Error(w, http.StatusUnprocessableEntity, err.Error())
		default:
			response.Error(w, http.StatusInternalServerError, "failed to update order")
		}
		return
	}

	response.Success(w, order)
}
