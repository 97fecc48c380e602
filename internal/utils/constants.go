package utils

import "time"

// Application Constants
const (
	AppName    = "GoInsure"
	AppVersion = "1.0.0"

	// Default values
	DefaultCurrency = "USD"
	DefaultTimeZone = "UTC"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Vehicle Constants
	MinManufactureYear = 1900

	// Coverage Level Constants
	MaxCoverageLevelNameLength = 50
	MaxDescriptionLength       = 500
	MinMultiplier              = 0.1
	MaxMultiplier              = 10.0

	// Policy Constants
	PolicyNumberPrefix = "POL-"
	PolicyNumberLength = 8

	// Claim Constants
	MinClaimAmount       = 0.01
	MaxClaimReasonLength = 500
	ImagePathDelimiter   = ","

	// File Upload
	MaxImageSize       = 5 * 1024 * 1024 // 5MB
	ClaimUploadsPrefix = "claims"

	// Cache
	CoverageLevelCacheTTL = 30 * time.Minute

	// Customer Constants
	MaxNameLength    = 100
	MaxEmailLength   = 100
	MaxPhoneLength   = 15
	MaxAddressLength = 255
)

// Response Status
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Common error messages
const (
	ErrValidationFailed = "Validation failed"
	ErrInternalServer   = "Internal server error"
	ErrUnauthorized     = "Unauthorized access"
	ErrForbidden        = "Access forbidden"
)

// User roles
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)
