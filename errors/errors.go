package errors

import "fmt"

var (
	ErrEmptyInput              = fmt.Errorf("message text is empty")
	ErrNameTaken               = fmt.Errorf("display name already claimed by another address")
	ErrBlocked                 = fmt.Errorf("source address is blocklisted")
	ErrQuotaExceeded           = fmt.Errorf("daily message limit exceeded")
	ErrStoreUnavailable        = fmt.Errorf("backing store unavailable")
	ErrAddressResolution       = fmt.Errorf("network address resolution failed")
	ErrUnsupportedAvatarFormat = fmt.Errorf("avatar must be a GIF, PNG or JPEG image")
	ErrAvatarTooLarge          = fmt.Errorf("avatar image exceeds the size limit")
	ErrNoIdentity              = fmt.Errorf("no identity established")
	ErrSendInFlight            = fmt.Errorf("a send is already in progress")
)
