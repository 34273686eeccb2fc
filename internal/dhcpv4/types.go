package dhcpv4

import (
	"fmt"
	"net"
)

// Fixed wire layout. All multi-byte integers are big-endian.
const (
	FixedHeaderLen = 236
	OptionsOffset  = FixedHeaderLen + len(MagicCookie)
)

// MagicCookie separates the BOOTP fixed header from the DHCP option stream.
var MagicCookie = [4]byte{0x63, 0x82, 0x53, 0x63}

// Op codes.
const (
	OpRequest uint8 = 1
	OpReply   uint8 = 2
)

// HTypeEthernet is the hardware type for 6-byte MAC addressing.
const HTypeEthernet uint8 = 1

// Option tags from the DHCP option registry that this repo itself touches.
// The codec treats every other tag as opaque.
const (
	TagPad           uint8 = 0
	TagSubnetMask    uint8 = 1
	TagRouter        uint8 = 3
	TagDomainServer  uint8 = 6
	TagHostname      uint8 = 12
	TagRequestedIP   uint8 = 50
	TagLeaseTime     uint8 = 51
	TagMessageType   uint8 = 53
	TagServerID      uint8 = 54
	TagParameterList uint8 = 55
	TagVendorClassID uint8 = 60
	TagClientID      uint8 = 61
	TagEnd           uint8 = 255
)

// DHCP message types carried in option 53.
const (
	MessageTypeDiscover uint8 = 1
	MessageTypeOffer    uint8 = 2
	MessageTypeRequest  uint8 = 3
	MessageTypeDecline  uint8 = 4
	MessageTypeAck      uint8 = 5
	MessageTypeNak      uint8 = 6
	MessageTypeRelease  uint8 = 7
	MessageTypeInform   uint8 = 8
)

var messageTypeNames = map[uint8]string{
	MessageTypeDiscover: "discover",
	MessageTypeOffer:    "offer",
	MessageTypeRequest:  "request",
	MessageTypeDecline:  "decline",
	MessageTypeAck:      "ack",
	MessageTypeNak:      "nak",
	MessageTypeRelease:  "release",
	MessageTypeInform:   "inform",
}

// MessageTypeName returns a lowercase name for an option-53 value, or
// "unknown" for values outside the registry.
func MessageTypeName(t uint8) string {
	if name, ok := messageTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Option is one decoded TLV record. Length always equals len(Value); the
// mutators in builder.go keep the two in sync.
type Option struct {
	Tag    uint8
	Length uint8
	Value  []byte
}

// Frame is one complete BOOTP/DHCP message.
type Frame struct {
	Op    uint8
	HType uint8
	HLen  uint8
	Hops  uint8
	XID   uint32
	Secs  uint16
	Flags uint16

	CIAddr [4]byte
	YIAddr [4]byte
	SIAddr [4]byte
	GIAddr [4]byte

	CHAddr [16]byte
	SName  [64]byte
	File   [128]byte

	Options []Option
}

// ClientMACString formats the leading 6 bytes of the client hardware
// address as a lowercase colon-separated MAC. Callers must ensure
// HLen == 6; other hardware lengths are not interpreted.
func (f *Frame) ClientMACString() string {
	a := f.CHAddr
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", a[0], a[1], a[2], a[3], a[4], a[5])
}

// ClientIP returns ciaddr as a net.IP.
func (f *Frame) ClientIP() net.IP {
	return net.IP(f.CIAddr[:])
}

// YourIP returns yiaddr as a net.IP.
func (f *Frame) YourIP() net.IP {
	return net.IP(f.YIAddr[:])
}

// ServerIP returns siaddr as a net.IP.
func (f *Frame) ServerIP() net.IP {
	return net.IP(f.SIAddr[:])
}

// RelayIP returns giaddr as a net.IP.
func (f *Frame) RelayIP() net.IP {
	return net.IP(f.GIAddr[:])
}

// FindOption returns the first option with the given tag. First occurrence
// is authoritative; the codec never deduplicates.
func (f *Frame) FindOption(tag uint8) (Option, bool) {
	for _, opt := range f.Options {
		if opt.Tag == tag {
			return opt, true
		}
	}
	return Option{}, false
}

// MessageType returns the option-53 value, if present.
func (f *Frame) MessageType() (uint8, bool) {
	opt, ok := f.FindOption(TagMessageType)
	if !ok || len(opt.Value) != 1 {
		return 0, false
	}
	return opt.Value[0], true
}
