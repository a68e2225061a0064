package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/agent/internal/application/store"
	"github.com/finance-dashboard/agent/internal/domain/entity"
	domainerror "github.com/finance-dashboard/agent/internal/domain/error"
	"github.com/finance-dashboard/agent/internal/domain/valueobject"
	"github.com/finance-dashboard/agent/internal/integration/entrypoint/dto"
)

// RecordController handles record collection endpoints.
type RecordController struct {
	records *store.RecordStore
}

// NewRecordController creates a new record controller instance.
func NewRecordController(records *store.RecordStore) *RecordController {
	return &RecordController{records: records}
}

// List handles GET /api/:collection requests.
func (c *RecordController) List(ctx *gin.Context) {
	collection := entity.Collection(ctx.Param("collection"))
	if !collection.Valid() {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Unknown collection",
			Code:  string(domainerror.ErrCodeUnknownCollection),
		})
		return
	}

	records := c.records.GetAll(collection)
	if records == nil {
		records = []entity.Record{}
	}
	ctx.JSON(http.StatusOK, records)
}

// Create handles POST /api/:collection requests. The body shape depends
// on the collection; ids and timestamps are generated server-side.
func (c *RecordController) Create(ctx *gin.Context) {
	collection := entity.Collection(ctx.Param("collection"))
	if !collection.Valid() {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Unknown collection",
			Code:  string(domainerror.ErrCodeUnknownCollection),
		})
		return
	}

	record, err := c.bindRecord(ctx, collection)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	if err := c.records.Add(ctx.Request.Context(), record); err != nil {
		if errors.Is(err, domainerror.ErrDuplicateRecordID) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{
				Error: "A record with this id already exists",
				Code:  string(domainerror.ErrCodeDuplicateRecordID),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to store record",
			Code:  string(domainerror.ErrCodeRecordWriteFailed),
		})
		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// Summary handles GET /api/summary requests.
func (c *RecordController) Summary(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.records.FinancialSummary())
}

func (c *RecordController) bindRecord(ctx *gin.Context, collection entity.Collection) (entity.Record, error) {
	switch collection {
	case entity.CollectionAssets:
		var req dto.CreateAssetRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		trend := entity.TrendUp
		if req.Trend == string(entity.TrendDown) {
			trend = entity.TrendDown
		}
		return entity.NewAsset(req.Title, req.Value, req.Type, req.Date, req.Change, trend), nil

	case entity.CollectionLiabilities:
		var req dto.CreateLiabilityRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		status := entity.LiabilityStatus(req.Status)
		if status != entity.LiabilityStatusWarning && status != entity.LiabilityStatusLate {
			status = entity.LiabilityStatusCurrent
		}
		return entity.NewLiability(req.Title, req.Amount, req.Type, req.Interest, req.Payment, req.DueDate, status), nil

	case entity.CollectionExpenses:
		var req dto.CreateExpenseRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		return entity.NewExpense(req.Title, req.Budgeted, req.Spent, valueobject.ParseAmount), nil

	case entity.CollectionIncome:
		var req dto.CreateIncomeRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		return entity.NewIncome(req.Title, req.Amount, req.Description), nil

	case entity.CollectionDailyExpenses:
		var req dto.CreateDailyExpenseRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		return entity.NewDailyExpense(req.Title, req.Amount, req.Category, req.Date, req.Notes), nil

	case entity.CollectionTransactions:
		var req dto.CreateTransactionRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		txType := entity.TransactionTypeExpense
		if req.Type == string(entity.TransactionTypeIncome) {
			txType = entity.TransactionTypeIncome
		}
		return entity.NewTransaction(req.Description, req.Amount, txType, req.Category, req.Date), nil
	}

	return nil, domainerror.ErrUnknownCollection
}
