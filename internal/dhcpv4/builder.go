package dhcpv4

import "encoding/binary"

// NewFrame builds a frame with classical Ethernet defaults. The fixed-width
// address and name fields are zero-valued arrays, which is exactly the
// padding the wire format requires.
func NewFrame(op uint8, xid uint32) *Frame {
	return &Frame{
		Op:    op,
		HType: HTypeEthernet,
		HLen:  6,
		XID:   xid,
	}
}

// AddOption appends opt to the option list. Order is preserved and tags are
// not deduplicated; per DHCP convention the first occurrence wins on read.
func (f *Frame) AddOption(opt Option) {
	f.Options = append(f.Options, opt)
}

// NewOption builds an empty option for the given tag.
func NewOption(tag uint8) Option {
	return Option{Tag: tag}
}

// EndOption returns the stream terminator (tag 255).
func EndOption() Option {
	return Option{Tag: TagEnd}
}

// SetValue replaces the option value with raw bytes and keeps Length in
// sync. Values longer than 255 bytes cannot be represented in a single
// option and are rejected.
func (o *Option) SetValue(value []byte) error {
	if len(value) > 255 {
		return ErrValueTooLong
	}
	o.Value = value
	o.Length = uint8(len(value))
	return nil
}

// SetString sets the option value to the UTF-8 bytes of s.
func (o *Option) SetString(s string) error {
	return o.SetValue([]byte(s))
}

// SetUint8 sets a single-byte value.
func (o *Option) SetUint8(v uint8) {
	o.Value = []byte{v}
	o.Length = 1
}

// SetUint16 sets a 2-byte big-endian value.
func (o *Option) SetUint16(v uint16) {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, v)
	o.Value = buf
	o.Length = 2
}

// SetUint32 sets a 4-byte big-endian value.
func (o *Option) SetUint32(v uint32) {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	o.Value = buf
	o.Length = 4
}

// SetUint64 sets an 8-byte big-endian value.
func (o *Option) SetUint64(v uint64) {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	o.Value = buf
	o.Length = 8
}
