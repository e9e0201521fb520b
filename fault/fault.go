// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type stringError string

// Error - the error interface base method
func (e stringError) Error() string {
	return string(e)
}

// common errors - keep in alphabetic order
var (
	AccountDoesNotExist          = error(stringError("account does not exist"))
	AlreadyInitialised           = error(stringError("already initialised"))
	ApprovalNotGranted           = error(stringError("approval not granted"))
	BalanceOverflow              = error(stringError("balance overflow"))
	CannotDecodeAccount          = error(stringError("cannot decode account"))
	CannotDecodePrivateKey       = error(stringError("cannot decode private key"))
	CannotDecodeSalt             = error(stringError("cannot decode salt"))
	CertificateFileAlreadyExists = error(stringError("certificate file already exists"))
	ChecksumMismatch             = error(stringError("checksum mismatch"))
	CryptoFailed                 = error(stringError("crypto failed"))
	DatabaseIsNotSet             = error(stringError("database is not set"))
	IdentityNameAlreadyExists    = error(stringError("identity name already exists"))
	IdentityNameNotFound         = error(stringError("identity name not found"))
	IncompatibleOptions          = error(stringError("incompatible options"))
	InsufficientFunds            = error(stringError("insufficient funds"))
	InvalidAccount               = error(stringError("invalid account"))
	InvalidChain                 = error(stringError("invalid chain"))
	InvalidCount                 = error(stringError("invalid count"))
	InvalidCursor                = error(stringError("invalid cursor"))
	InvalidGenesisAllocation     = error(stringError("invalid genesis allocation"))
	InvalidIpAddress             = error(stringError("invalid ip address"))
	InvalidItem                  = error(stringError("invalid item"))
	InvalidKeyLength             = error(stringError("invalid key length"))
	InvalidKeyType               = error(stringError("invalid key type"))
	InvalidPasswordLength        = error(stringError("invalid password length"))
	InvalidPortNumber            = error(stringError("invalid port number"))
	InvalidPrivateKeyFile        = error(stringError("invalid private key file"))
	InvalidPublicKeyFile         = error(stringError("invalid public key file"))
	InvalidSignature             = error(stringError("invalid signature"))
	KeyFileAlreadyExists         = error(stringError("key file already exists"))
	MakeRecordFailed             = error(stringError("make record failed"))
	MissingParameters            = error(stringError("missing parameters"))
	NotAvailableDuringStartup    = error(stringError("not available during startup"))
	NotAvailableInReadOnlyMode   = error(stringError("not available in read only mode"))
	NotInitialised               = error(stringError("not initialised"))
	NotLink                      = error(stringError("not link"))
	NotPrivateKey                = error(stringError("not private key"))
	NotPublicKey                 = error(stringError("not public key"))
	NotRecordPack                = error(stringError("not record pack"))
	PasswordMismatch             = error(stringError("password mismatch"))
	RateLimiting                 = error(stringError("rate limiting"))
	RecordNotFound               = error(stringError("record not found"))
	SignatureTooLong             = error(stringError("signature too long"))
	WrongNetworkForPublicKey     = error(stringError("wrong network for public key"))
	WrongPassword                = error(stringError("wrong password"))
)
