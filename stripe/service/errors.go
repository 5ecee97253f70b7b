package service

import (
	"errors"
)

var (
	ErrMissingClientID    = errors.New("stripe connect client id is not configured")
	ErrMissingRedirectURI = errors.New("stripe oauth redirect uri is not configured")
	ErrMissingUserID      = errors.New("missing adalo user id")
	ErrMissingAccountID   = errors.New("missing stripe account id")
	ErrOAuthExchange      = errors.New("stripe oauth code exchange failed")
	ErrAccountRetrieve    = errors.New("failed to retrieve connected account")
	ErrAccountForbidden   = errors.New("user is not authorized to view this account")
	ErrChargesList        = errors.New("failed to list charges")
	ErrPayoutsList        = errors.New("failed to list payouts")
	ErrBalanceRetrieve    = errors.New("failed to retrieve balance")
)
