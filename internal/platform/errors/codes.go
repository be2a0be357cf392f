// Package errors provides structured error handling with machine-readable codes.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Profile and input validation errors
	CodeProfileNameEmpty     Code = "PROFILE_NAME_EMPTY"
	CodeBirthDateRequired    Code = "BIRTH_DATE_REQUIRED"
	CodeBirthDateOutOfRange  Code = "BIRTH_DATE_OUT_OF_RANGE"
	CodeInvalidLatitude      Code = "INVALID_LATITUDE"
	CodeInvalidLongitude     Code = "INVALID_LONGITUDE"
	CodeInvalidTimeRange     Code = "INVALID_TIME_RANGE"
	CodeDateRangeInverted    Code = "DATE_RANGE_INVERTED"
	CodeTargetDateOutOfRange Code = "TARGET_DATE_OUT_OF_RANGE"

	// Ephemeris errors
	CodeEphemerisUnavailable Code = "EPHEMERIS_UNAVAILABLE"
	CodeUnknownBody          Code = "UNKNOWN_BODY"

	// Reference data errors
	CodeDataIntegrity Code = "DATA_INTEGRITY"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"

	// Export errors
	CodeExportFailed Code = "EXPORT_FAILED"
)
