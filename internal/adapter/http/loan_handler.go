package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cpspk/Caluracoin-NFT/internal/usecase/lending"
)

type LoanHandler struct{ uc *lending.Usecase }

func NewLoanHandler(uc *lending.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type collateralReq struct {
	ContractAddress string `json:"contract_address" validate:"required"`
	TokenID         string `json:"token_id" validate:"required"`
}

type createLoanReq struct {
	Currency             string          `json:"currency"`
	LoanAmount           uint64          `json:"loan_amount" validate:"gt=0"`
	AssetsValue          uint64          `json:"assets_value" validate:"gt=0"`
	InterestRate         uint64          `json:"interest_rate"`
	InstallmentFrequency uint64          `json:"installment_frequency" validate:"gt=0"`
	NrOfInstallments     uint64          `json:"nr_of_installments" validate:"gt=0"`
	Collateral           []collateralReq `json:"collateral" validate:"min=1,dive"`
}

type fundsReq struct {
	FundsSent uint64 `json:"funds_sent" validate:"gt=0"`
}

type extendReq struct {
	NrOfWeeks uint64 `json:"nr_of_weeks" validate:"gt=0"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid Ax-Actor-Id"})
	}
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	in := lending.CreateLoanInput{
		Borrower:             actor,
		Currency:             req.Currency,
		LoanAmount:           req.LoanAmount,
		AssetsValue:          req.AssetsValue,
		InterestRate:         req.InterestRate,
		InstallmentFrequency: req.InstallmentFrequency,
		NrOfInstallments:     req.NrOfInstallments,
	}
	for _, col := range req.Collateral {
		in.Collateral = append(in.Collateral, lending.CollateralInput{
			ContractAddress: col.ContractAddress,
			TokenID:         col.TokenID,
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ApproveLoan(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid Ax-Actor-Id"})
	}
	id, err := loanIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid loan id"})
	}
	var req fundsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if err := h.uc.Approve(c.Request().Context(), lending.ApproveInput{LoanID: id, Caller: actor, FundsSent: req.FundsSent}); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LoanHandler) CancelLoan(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid Ax-Actor-Id"})
	}
	id, err := loanIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid loan id"})
	}
	if err := h.uc.Cancel(c.Request().Context(), id, actor); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LoanHandler) PayLoan(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid Ax-Actor-Id"})
	}
	id, err := loanIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid loan id"})
	}
	var req fundsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if err := h.uc.Pay(c.Request().Context(), lending.PayInput{LoanID: id, Caller: actor, FundsSent: req.FundsSent}); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LoanHandler) ExtendLoan(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid Ax-Actor-Id"})
	}
	id, err := loanIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid loan id"})
	}
	var req extendReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	if err := h.uc.Extend(c.Request().Context(), id, actor, req.NrOfWeeks); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LoanHandler) WithdrawItems(c echo.Context) error {
	actor, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid Ax-Actor-Id"})
	}
	id, err := loanIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid loan id"})
	}
	if err := h.uc.Withdraw(c.Request().Context(), id, actor); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	id, err := loanIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid loan id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) GetStatus(c echo.Context) error {
	id, err := loanIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid loan id"})
	}
	st, err := h.uc.Status(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loan_id": id, "status": st, "status_name": st.String()})
}

func (h *LoanHandler) GetNrOfPayments(c echo.Context) error {
	id, err := loanIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid loan id"})
	}
	n, err := h.uc.NrOfPayments(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loan_id": id, "nr_of_payments": n})
}
