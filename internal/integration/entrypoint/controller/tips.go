package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/agent/internal/application/classifier"
	"github.com/finance-dashboard/agent/internal/application/store"
)

// TipsController handles the financial tips endpoint.
type TipsController struct {
	rules   *classifier.RuleBased
	records *store.RecordStore
}

// NewTipsController creates a new tips controller instance.
func NewTipsController(rules *classifier.RuleBased, records *store.RecordStore) *TipsController {
	return &TipsController{rules: rules, records: records}
}

// List handles GET /api/tips requests. Tips are derived from the
// current cache snapshot on every call.
func (c *TipsController) List(ctx *gin.Context) {
	tips := c.rules.GenerateTips(c.records.Snapshot(), c.records.FinancialSummary())
	if tips == nil {
		tips = []classifier.Tip{}
	}
	ctx.JSON(http.StatusOK, tips)
}
