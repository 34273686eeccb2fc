package dhcpv4

import "errors"

var (
	ErrShortFrame      = errors.New("dhcpv4: frame shorter than fixed header")
	ErrShortOption     = errors.New("dhcpv4: short option header")
	ErrTruncatedOption = errors.New("dhcpv4: option value truncated")
	ErrBadCookie       = errors.New("dhcpv4: missing or invalid magic cookie")
	ErrInvalidString   = errors.New("dhcpv4: option value is not valid utf-8")
	ErrValueTooLong    = errors.New("dhcpv4: option value exceeds 255 bytes")
)
