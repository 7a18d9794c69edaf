package market

//
// ConfirmFunc decides whether or not a transfer described by the provided prompt should go ahead.
//
type ConfirmFunc func(prompt string) bool

//
// AlwaysConfirm approves every transfer.
//
func AlwaysConfirm(string) bool {
	return true
}

//
// NeverConfirm declines every transfer.
//
func NeverConfirm(string) bool {
	return false
}

//
// SendItemsOptions holds the optional parameters of an item transfer. The zero value matches the
// market's defaults: items with errors are omitted, no admin override, and confirmation is asked.
//
type SendItemsOptions struct {
	Message          string
	FailOnItemErrors bool
	UseAdminOverride bool
	ViaShopAdmin     bool
	NoConfirm        bool
}

//
// SendTCOptions holds the optional parameters of a TC transfer. A nil From sends from the
// authenticated user.
//
type SendTCOptions struct {
	From             *UserRef
	Message          string
	UseAdminOverride bool
	ViaShopAdmin     bool
	NoConfirm        bool
}
