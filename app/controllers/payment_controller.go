package controllers

import (
	"errors"
	"net/http"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/gateway"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/repositories"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/services"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/bind"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/response"
)

type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// Initiate starts a payment: product lookup, gateway order, pending
// Sale. Misconfigured gateway credentials fail fast naming the missing
// environment variables.
func (c *PaymentController) Initiate(w http.ResponseWriter, r *http.Request) {
	var in services.InitiateInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := c.payments.Initiate(r.Context(), in)
	if err != nil {
		switch {
		case database.IsNotFound(err):
			response.NotFound(w, "product not found")
		case errors.Is(err, gateway.ErrMissingCredentials):
			response.ConfigError(w, "payment gateway is not configured", gateway.MissingEnvVars())
		default:
			response.Error(w, http.StatusInternalServerError, "payment initiation failed")
		}
		return
	}

	response.Success(w, result)
}

// Confirm verifies the relayed gateway callback and settles the Sale.
func (c *PaymentController) Confirm(w http.ResponseWriter, r *http.Request) {
	var in services.ConfirmInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	sale, err := c.payments.Confirm(in)
	if err != nil {
		switch {
		case database.IsNotFound(err):
			response.NotFound(w, "sale not found")
		case errors.Is(err, services.ErrInvalidSignature):
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			response.Error(w, http.StatusInternalServerError, "payment confirmation failed")
		}
		return
	}

	response.Success(w, sale)
}

// Sales lists payment-attempt audit records for the back office.
func (c *PaymentController) Sales(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)

	sales, p, err := c.payments.ListSales(repositories.SaleFilter{
		PaymentStatus: r.URL.Query().Get("payment_status"),
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to list sales")
		return
	}
	response.Paginated(w, sales, p)
}

type saleStatusRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,in=pending,success,failed,cancelled"`
}

// UpdateSale is the generic admin sale updater. Setting success also
// completes the sale's order side and stamps the completion time.
func (c *PaymentController) UpdateSale(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(w, r)
	if !ok {
		return
	}

	var req saleStatusRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	sale, err := c.payments.UpdatePaymentStatus(id, req.PaymentStatus)
	if err != nil {
		switch {
		case database.IsNotFound(err):
			response.NotFound(w, "sale not found")
		case errors.Is(err, services.ErrDuplicateSale):
			response.Conflict(w, err.Error())
		default:
			response.Error(w, http.StatusInternalServerError, "failed to update sale")
		}
		return
	}

	response.Success(w, sale)
}
