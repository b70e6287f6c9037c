// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type DisabledError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LimitError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	AlreadyMigrated              = ExistsError("migration already performed")
	BalanceNotZero               = InvalidError("cannot close because the balance is not zero")
	CallDepthExceeded            = LimitError("maximum call depth exceeded")
	CannotDecodeKey              = InvalidError("cannot decode key")
	CannotTransferToSelf         = InvalidError("cannot transfer to self")
	CannotWrapToSelf             = InvalidError("cannot wrap ram to self")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ConfigurationNotInitialised  = ProcessError("configuration not initialised")
	DatabaseIsNotSet             = ProcessError("database is not set")
	ForeignTokenRejected         = InvalidError("only contract token transfers are allowed")
	InsufficientResource         = LimitError("insufficient resource bytes")
	InvalidAccountName           = InvalidError("invalid account name")
	InvalidAction                = InvalidError("invalid action")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidFingerprint           = InvalidError("invalid certificate fingerprint")
	InvalidIdentity              = InvalidError("invalid identity file")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidItem                  = InvalidError("invalid item")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidLoggerChannel         = ProcessError("invalid logger channel")
	InvalidMaximumSupply         = InvalidError("invalid maximum supply")
	InvalidQuantity              = InvalidError("invalid quantity")
	InvalidSignature             = PermissionError("invalid signature")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	InvalidSymbol                = InvalidError("invalid symbol name")
	IssueToIssuerOnly            = InvalidError("tokens can only be issued to issuer account")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MaximumSupplyBelowSupply     = LimitError("maximum supply is less than current supply")
	MaximumSupplyExceeded        = LimitError("quantity exceeds available supply")
	MemoTooLong                  = InvalidError("memo has more than 256 bytes")
	MissingAuthority             = PermissionError("missing required authority")
	MissingParameters            = InvalidError("missing parameters")
	NoBalance                    = NotFoundError("no balance object found")
	NotInitialised               = ProcessError("not initialised")
	NotPositiveQuantity          = InvalidError("must use positive quantity")
	NotRegisteredDelegate        = PermissionError("actor has not delegated authority")
	OverdrawnBalance             = LimitError("overdrawn balance")
	RateLimiting                 = ProcessError("rate limiting")
	RecipientBlocked             = InvalidError("recipient is on the egress list")
	RecipientNotFound            = NotFoundError("to account does not exist")
	ReplayedRequest              = PermissionError("request nonce already used")
	SymbolPrecisionMismatch      = InvalidError("symbol precision mismatch")
	TokenAlreadyExists           = ExistsError("token with symbol already exists")
	TokenNotFound                = NotFoundError("token with symbol does not exist")
	TransactionAlreadyInUse      = ProcessError("transaction already in use")
	TransactionNotInUse          = ProcessError("transaction not in use")
	TransferToContract           = InvalidError("use unwrap to return tokens to the contract")
	UnwrapDisabled               = DisabledError("unwrap ram is currently disabled")
	WrapDisabled                 = DisabledError("wrap ram is currently disabled")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e DisabledError) Error() string   { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LimitError) Error() string      { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrDisabled(e error) bool   { _, ok := e.(DisabledError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLimit(e error) bool      { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
