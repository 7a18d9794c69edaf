package toribash

const (
	Name = "≪market-client≫"

	BaseURL = "http://forum.toribash.com/"

	LoginPath  = "login.php?do=login"
	BankPath   = "bank_ajax.php"
	MarketPath = "tori_market.php"

	AcceptHeader = "application/json"
)

// NOTE ~> The forum is a vBulletin install. Its login form expects the password already hashed and
//  accepts it under two parameter names, while the plaintext field is left blank.

const (
	loginUsernameKey   = "vb_login_username"
	loginPasswordKey   = "vb_login_password"
	loginMD5Key        = "vb_login_md5password"
	loginMD5UTFKey     = "vb_login_md5password_utf"
	loginCookieUserKey = "cookieuser"
	loginDoKey         = "do"
	loginSessionKey    = "s"
	loginSecurityKey   = "securitytoken"
	loginGuestSecurity = "guest"
	bankOperationKey   = "bank_ajax"
	tokenKey           = "token"
	userIDKey          = "userid"
	usernameKey        = "username"
	offsetKey          = "offset"
	excludeIDsKey      = "excludeids"
	inventoryIDKey     = "inventid"
	messageKey         = "message"
	omitItemErrorsKey  = "omit_items_with_errors"
	adminOverrideKey   = "use_admin_override"
	viaShopAdminKey    = "via_shop_admin"
	amountKey          = "amount"
	fromUserIDKey      = "from_userid"
	toUserIDKey        = "to_userid"
	marketFormatKey    = "format"
	marketFormatJSON   = "json"
)
