package market

//
// Operation is an enum that represents the various bank operations that can be requested from the
// market's ajax endpoint.
//
type Operation int

const (
	GetToken Operation = iota
	GetUserInfo
	GetInventory
	GetItems
	SendItems
	SendTC
)

func (o Operation) String() string {
	return [...]string{"get_token", "get_userinfo", "get_inventory", "get_items", "send_items", "send_tc"}[o]
}

//
// Mutating returns whether or not the operation changes state on the remote side, and thus needs a
// security token.
//
func (o Operation) Mutating() bool {
	return o == SendItems || o == SendTC
}
