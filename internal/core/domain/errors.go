package domain

import "errors"

// Code is a machine-readable failure kind reported to callers.
type Code string

const (
	CodeInvalidInput          Code = "INVALID_INPUT"
	CodeInvalidPrice          Code = "INVALID_PRICE"
	CodeInvalidCommissionRate Code = "INVALID_COMMISSION_RATE"
	CodeCampaignNotActive     Code = "CAMPAIGN_NOT_ACTIVE"
	CodeInvalidInfluencer     Code = "INVALID_INFLUENCER"
	CodeInvalidAccountOwner   Code = "INVALID_ACCOUNT_OWNER"
	CodeLinkCampaignMismatch  Code = "LINK_CAMPAIGN_MISMATCH"
	CodeEscrowEmpty           Code = "ESCROW_EMPTY"
	CodeMintMismatch          Code = "MINT_MISMATCH"
	CodeCalculationError      Code = "CALCULATION_ERROR"
	CodeDerivationExhausted   Code = "DERIVATION_EXHAUSTED"
	CodeInsufficientFunds     Code = "INSUFFICIENT_FUNDS"
	CodeUnauthorized          Code = "UNAUTHORIZED"
	CodeNotFound              Code = "NOT_FOUND"
	CodeAlreadyExists         Code = "ALREADY_EXISTS"
	CodeConflict              Code = "CONFLICT"
)

// parents lists codes that are a refinement of a broader one, so that
// errors.Is(ErrInvalidPrice, ErrInvalidInput) holds.
var parents = map[Code]Code{
	CodeInvalidPrice:          CodeInvalidInput,
	CodeInvalidCommissionRate: CodeInvalidInput,
}

// Error is the domain error type. Two errors match under errors.Is when
// their codes match.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries this error's code or its parent code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code || parents[e.Code] == t.Code
}

// New creates a domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf extracts the code of the first domain error in err's chain.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Sentinels for errors.Is comparisons.
var (
	ErrInvalidInput          = New(CodeInvalidInput, "invalid input")
	ErrInvalidPrice          = New(CodeInvalidPrice, "price must be greater than zero")
	ErrInvalidCommissionRate = New(CodeInvalidCommissionRate, "commission rate must be between 0 and 10000 basis points")
	ErrCampaignNotActive     = New(CodeCampaignNotActive, "campaign is not active")
	ErrInvalidInfluencer     = New(CodeInvalidInfluencer, "affiliate payout target does not match the affiliate link")
	ErrInvalidAccountOwner   = New(CodeInvalidAccountOwner, "seller payout target does not match the campaign owner")
	ErrLinkCampaignMismatch  = New(CodeLinkCampaignMismatch, "affiliate link belongs to another campaign")
	ErrEscrowEmpty           = New(CodeEscrowEmpty, "escrow does not hold the campaign asset")
	ErrMintMismatch          = New(CodeMintMismatch, "asset does not match the campaign asset")
	ErrCalculationError      = New(CodeCalculationError, "commission arithmetic overflow or underflow")
	ErrDerivationExhausted   = New(CodeDerivationExhausted, "no valid derived authority for seeds")
	ErrInsufficientFunds     = New(CodeInsufficientFunds, "insufficient funds")
	ErrUnauthorized          = New(CodeUnauthorized, "authorizer may not move funds from holder")
	ErrNotFound              = New(CodeNotFound, "record not found")
	ErrAlreadyExists         = New(CodeAlreadyExists, "record already exists")
	ErrConflict              = New(CodeConflict, "concurrent update conflict, retry")
)
