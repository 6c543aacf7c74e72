package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cpspk/Caluracoin-NFT/internal/domain/custody"
	"github.com/cpspk/Caluracoin-NFT/internal/domain/loan"
)

// actorID extracts the caller's ledger account from the Ax-Actor-Id header.
func actorID(c echo.Context) (string, bool) {
	id := strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Id"))
	if !reHex32.MatchString(id) {
		return "", false
	}
	return id, true
}

func loanIDParam(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("loan_id"), 10, 64)
}

// statusFor maps the precondition taxonomy onto HTTP codes. Every failure
// is a rejected operation, never a crash.
func statusFor(err error) int {
	switch {
	case errors.Is(err, loan.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, loan.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, loan.ErrAlreadyFunded),
		errors.Is(err, loan.ErrNotYetFunded),
		errors.Is(err, loan.ErrWrongPhase),
		errors.Is(err, loan.ErrExpired),
		errors.Is(err, loan.ErrAlreadyReleased):
		return http.StatusConflict
	case errors.Is(err, loan.ErrInvalidTerms),
		errors.Is(err, loan.ErrInsufficientFunds),
		errors.Is(err, loan.ErrOverFunds),
		errors.Is(err, loan.ErrImpreciseFunds):
		return http.StatusBadRequest
	case errors.Is(err, custody.ErrInsufficientBalance),
		errors.Is(err, custody.ErrNotAssetOwner):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func fail(c echo.Context, err error) error {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(code, map[string]string{"error": msg})
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
