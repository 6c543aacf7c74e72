package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cpspk/Caluracoin-NFT/internal/usecase/admin"
)

type AdminHandler struct{ uc *admin.Usecase }

func NewAdminHandler(uc *admin.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

type setParamReq struct {
	Value uint64 `json:"value"`
}

func (h *AdminHandler) setParam(c echo.Context, apply func(ctx echo.Context, actor string, value uint64) error) error {
	actor, ok := actorID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid Ax-Actor-Id"})
	}
	var req setParamReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := apply(c, actor, req.Value); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) SetLTV(c echo.Context) error {
	return h.setParam(c, func(ctx echo.Context, actor string, v uint64) error {
		return h.uc.SetLTV(ctx.Request().Context(), actor, v)
	})
}

func (h *AdminHandler) SetInterestRateToCompany(c echo.Context) error {
	return h.setParam(c, func(ctx echo.Context, actor string, v uint64) error {
		return h.uc.SetInterestRateToCompany(ctx.Request().Context(), actor, v)
	})
}

func (h *AdminHandler) SetInterestRateToLender(c echo.Context) error {
	return h.setParam(c, func(ctx echo.Context, actor string, v uint64) error {
		return h.uc.SetInterestRateToLender(ctx.Request().Context(), actor, v)
	})
}

func (h *AdminHandler) GetParameters(c echo.Context) error {
	p, err := h.uc.Parameters(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]uint64{
		"ltv":                      p.LTV,
		"loan_fee":                 p.LoanFee,
		"interest_rate_to_company": p.InterestRateToCompany,
		"interest_rate_to_lender":  p.InterestRateToLender,
	})
}
