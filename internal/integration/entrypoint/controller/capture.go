package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/agent/internal/application/classifier"
	"github.com/finance-dashboard/agent/internal/application/usecase/capture"
	"github.com/finance-dashboard/agent/internal/domain/entity"
	"github.com/finance-dashboard/agent/internal/integration/entrypoint/dto"
)

// CaptureController handles utterance classification endpoints.
type CaptureController struct {
	rules          *classifier.RuleBased
	captureUseCase *capture.CaptureUtteranceUseCase
}

// NewCaptureController creates a new capture controller instance.
func NewCaptureController(
	rules *classifier.RuleBased,
	captureUseCase *capture.CaptureUtteranceUseCase,
) *CaptureController {
	return &CaptureController{
		rules:          rules,
		captureUseCase: captureUseCase,
	}
}

// Classify handles POST /api/classify requests. It runs the rule
// cascade without persisting anything, so callers can preview the
// record an utterance would produce.
func (c *CaptureController) Classify(ctx *gin.Context) {
	req, kind, ok := c.bind(ctx)
	if !ok {
		return
	}

	record := c.rules.Classify(req.Text, kind)
	if record == nil {
		ctx.JSON(http.StatusOK, dto.ClassifyResponse{Matched: false})
		return
	}

	ctx.JSON(http.StatusOK, dto.ClassifyResponse{
		Matched: true,
		Record:  record,
		Source:  "rules",
	})
}

// Capture handles POST /api/capture requests. Matched utterances are
// persisted and delivered or queued; misses report matched=false with
// status 200 so clients can offer manual entry.
func (c *CaptureController) Capture(ctx *gin.Context) {
	req, kind, ok := c.bind(ctx)
	if !ok {
		return
	}

	output, err := c.captureUseCase.Execute(ctx.Request.Context(), capture.CaptureUtteranceInput{
		Text: req.Text,
		Kind: kind,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to capture utterance",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ClassifyResponse{
		Matched: output.Matched,
		Record:  output.Record,
		Source:  output.Source,
		Queued:  output.Queued,
	})
}

func (c *CaptureController) bind(ctx *gin.Context) (dto.ClassifyRequest, entity.Kind, bool) {
	var req dto.ClassifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return req, "", false
	}

	kind, ok := entity.ParseKind(req.Kind)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Unknown record kind: " + req.Kind,
		})
		return req, "", false
	}

	return req, kind, true
}
