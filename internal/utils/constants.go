package utils

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

const (
	ErrValidationFailed = "Validation failed"
	ErrInternalServer   = "Internal server error"
	ErrUnauthorized     = "Unauthorized access"
	ErrForbidden        = "Access forbidden"
)

const (
	// RedemptionCodePrefix marks every issued ticket code.
	RedemptionCodePrefix = "TKT"

	// RedemptionCodeRandomLength is the length of the random suffix.
	RedemptionCodeRandomLength = 9
)

// ChatHistoryLimit caps how many messages a history query returns.
const ChatHistoryLimit = 50
