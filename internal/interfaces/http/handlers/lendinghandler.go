package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ministryshare/internal/application/lending/usecases"
	"ministryshare/internal/shared/errors"
	"ministryshare/internal/shared/logger"
	"ministryshare/internal/shared/utils"
)

type LendingHandler struct {
	createRequestUseCase *usecases.CreateLoanRequestUseCase
	listRequestsUseCase  *usecases.ListLoanRequestsUseCase
	approveUseCase       *usecases.ApproveLoanRequestUseCase
	denyUseCase          *usecases.DenyLoanRequestUseCase
	cancelUseCase        *usecases.CancelLoanRequestUseCase
	listLoansUseCase     *usecases.ListLoansUseCase
	returnUseCase        *usecases.ReturnLoanUseCase
	markLostUseCase      *usecases.MarkLoanLostUseCase
	markOverdueUseCase   *usecases.MarkLoanOverdueUseCase
	logger               logger.Interface
}

func NewLendingHandler(
	createRequestUC *usecases.CreateLoanRequestUseCase,
	listRequestsUC *usecases.ListLoanRequestsUseCase,
	approveUC *usecases.ApproveLoanRequestUseCase,
	denyUC *usecases.DenyLoanRequestUseCase,
	cancelUC *usecases.CancelLoanRequestUseCase,
	listLoansUC *usecases.ListLoansUseCase,
	returnUC *usecases.ReturnLoanUseCase,
	markLostUC *usecases.MarkLoanLostUseCase,
	markOverdueUC *usecases.MarkLoanOverdueUseCase,
	logger logger.Interface,
) *LendingHandler {
	return &LendingHandler{
		createRequestUseCase: createRequestUC,
		listRequestsUseCase:  listRequestsUC,
		approveUseCase:       approveUC,
		denyUseCase:          denyUC,
		cancelUseCase:        cancelUC,
		listLoansUseCase:     listLoansUC,
		returnUseCase:        returnUC,
		markLostUseCase:      markLostUC,
		markOverdueUseCase:   markOverdueUC,
		logger:               logger,
	}
}

type CreateLoanRequestRequest struct {
	ResourceID   uint   `json:"resource_id" binding:"required"`
	NeededByDate string `json:"needed_by_date" binding:"omitempty,dateonly"`
	ReturnByDate string `json:"return_by_date" binding:"required,dateonly"`
	Message      string `json:"message"`
}

type ReviewLoanRequestRequest struct {
	ResponseMessage string `json:"response_message"`
}

type CloseLoanRequest struct {
	Notes string `json:"notes"`
}

// parseDate accepts the date-only wire format the frontend sends.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, errors.NewValidationError("invalid date, expected YYYY-MM-DD")
	}
	return t, nil
}

func (h *LendingHandler) CreateRequest(c *gin.Context) {
	var req CreateLoanRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	returnBy, err := parseDate(req.ReturnByDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var neededBy *time.Time
	if req.NeededByDate != "" {
		t, err := parseDate(req.NeededByDate)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		neededBy = &t
	}

	a := actorFrom(c)
	result, err := h.createRequestUseCase.Execute(c.Request.Context(), usecases.CreateLoanRequestCommand{
		ResourceID:    req.ResourceID,
		ActorUserID:   a.UserID,
		ActorChurchID: a.ChurchID,
		NeededByDate:  neededBy,
		ReturnByDate:  returnBy,
		Message:       req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *LendingHandler) ListRequests(c *gin.Context) {
	a := actorFrom(c)
	p := utils.ParsePagination(c)

	cmd := usecases.ListLoanRequestsCommand{
		ActorRole:     a.Role,
		ActorChurchID: a.ChurchID,
		ChurchID:      utils.QueryUint(c, "church_id"),
		Direction:     c.Query("direction"),
		Status:        c.Query("status"),
		Pagination:    p,
	}

	result, err := h.listRequestsUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Requests, result.Total, p.Page, p.PageSize)
}

func (h *LendingHandler) ApproveRequest(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The response message is optional, as is the body itself.
	var req ReviewLoanRequestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	a := actorFrom(c)
	result, err := h.approveUseCase.Execute(c.Request.Context(), usecases.ApproveLoanRequestCommand{
		RequestID:       id,
		ActorUserID:     a.UserID,
		ActorRole:       a.Role,
		ActorChurchID:   a.ChurchID,
		ResponseMessage: req.ResponseMessage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "request approved", result)
}

func (h *LendingHandler) DenyRequest(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReviewLoanRequestRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	a := actorFrom(c)
	result, err := h.denyUseCase.Execute(c.Request.Context(), usecases.DenyLoanRequestCommand{
		RequestID:       id,
		ActorUserID:     a.UserID,
		ActorRole:       a.Role,
		ActorChurchID:   a.ChurchID,
		ResponseMessage: req.ResponseMessage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "request denied", result)
}

func (h *LendingHandler) CancelRequest(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	a := actorFrom(c)
	result, err := h.cancelUseCase.Execute(c.Request.Context(), usecases.CancelLoanRequestCommand{
		RequestID:     id,
		ActorUserID:   a.UserID,
		ActorRole:     a.Role,
		ActorChurchID: a.ChurchID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "request cancelled", result)
}

func (h *LendingHandler) ListLoans(c *gin.Context) {
	a := actorFrom(c)
	p := utils.ParsePagination(c)

	cmd := usecases.ListLoansCommand{
		ActorRole:     a.Role,
		ActorChurchID: a.ChurchID,
		ChurchID:      utils.QueryUint(c, "church_id"),
		Direction:     c.Query("direction"),
		Status:        c.Query("status"),
		Pagination:    p,
	}

	result, err := h.listLoansUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Loans, result.Total, p.Page, p.PageSize)
}

func (h *LendingHandler) ReturnLoan(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CloseLoanRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	a := actorFrom(c)
	result, err := h.returnUseCase.Execute(c.Request.Context(), usecases.ReturnLoanCommand{
		LoanID:        id,
		ActorUserID:   a.UserID,
		ActorRole:     a.Role,
		ActorChurchID: a.ChurchID,
		Notes:         req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "loan returned", result)
}

func (h *LendingHandler) MarkLoanLost(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CloseLoanRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	a := actorFrom(c)
	result, err := h.markLostUseCase.Execute(c.Request.Context(), usecases.MarkLoanLostCommand{
		LoanID:        id,
		ActorUserID:   a.UserID,
		ActorRole:     a.Role,
		ActorChurchID: a.ChurchID,
		Notes:         req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "loan marked lost", result)
}

func (h *LendingHandler) MarkLoanOverdue(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	a := actorFrom(c)
	result, err := h.markOverdueUseCase.Execute(c.Request.Context(), usecases.MarkLoanOverdueCommand{
		LoanID:        id,
		ActorUserID:   a.UserID,
		ActorRole:     a.Role,
		ActorChurchID: a.ChurchID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "loan marked overdue", result)
}
