package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidFiscalYear    = errors.New("invalid fiscal year")
	ErrInvalidTrendMonths   = errors.New("months must be between 1 and 24")
)
