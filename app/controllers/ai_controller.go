package controllers

import (
	"errors"
	"net/http"

	"github.com/sengaryogesh394-ai/digiaddaworld/app/gateway"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/jobs"
	"github.com/sengaryogesh394-ai/digiaddaworld/app/services"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/bind"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/database"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/queue"
	"github.com/sengaryogesh394-ai/digiaddaworld/pkg/response"
)

// AIController exposes the admin content-generation endpoints.
type AIController struct {
	ai *services.AIService
}

func NewAIController(ai *services.AIService) *AIController {
	return &AIController{ai: ai}
}

// GenerateCopy returns a generated description and tag set.
func (c *AIController) GenerateCopy(w http.ResponseWriter, r *http.Request) {
	var in services.CopyInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := c.ai.GenerateCopy(r.Context(), in)
	if err != nil {
		c.writeGenerationError(w, err)
		return
	}
	response.Success(w, result)
}

// GenerateImage renders and stores a product image.
func (c *AIController) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var in services.ImageInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := c.ai.GenerateImage(r.Context(), in)
	if err != nil {
		if database.IsNotFound(err) {
			response.NotFound(w, "product not found")
			return
		}
		c.writeGenerationError(w, err)
		return
	}
	response.Success(w, result)
}

type enqueueGenerationRequest struct {
	ProductID uint `json:"product_id" validate:"required,gt=0"`
}

// EnqueueGeneration queues background description/tag generation for a
// product, for bulk imports.
func (c *AIController) EnqueueGeneration(w http.ResponseWriter, r *http.Request) {
	var req enqueueGenerationRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	if err := queue.Dispatch(jobs.AIGenerationJob{ProductID: req.ProductID}); err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to queue generation")
		return
	}
	response.Success(w, map[string]any{"queued": req.ProductID})
}

func (c *AIController) writeGenerationError(w http.ResponseWriter, err error) {
	if errors.Is(err, gateway.ErrMissingAIKey) {
		response.ConfigError(w, "generative AI is not configured", []string{"OPENAI_API_KEY"})
		return
	}
	response.Error(w, http.StatusBadGateway, "content generation failed")
}
