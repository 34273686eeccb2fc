package dhcpv4

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// ParseOption decodes a single TLV record from the start of buf. It does not
// report how many bytes it consumed; the caller advances by 2 + len(Value).
func ParseOption(buf []byte) (Option, error) {
	if len(buf) < 2 {
		return Option{}, ErrShortOption
	}
	tag := buf[0]
	length := buf[1]
	if len(buf) < 2+int(length) {
		return Option{}, fmt.Errorf("%w: tag %d declares %d value bytes, %d available",
			ErrTruncatedOption, tag, length, len(buf)-2)
	}
	value := make([]byte, length)
	copy(value, buf[2:2+int(length)])
	return Option{Tag: tag, Length: length, Value: value}, nil
}

// StringValue interprets the option value as UTF-8 text. The codec is
// tag-agnostic; callers must know the tag's semantics warrant this.
func (o Option) StringValue() (string, error) {
	if !utf8.Valid(o.Value) {
		return "", ErrInvalidString
	}
	return string(o.Value), nil
}

// ParseFrame decodes one BOOTP/DHCP message from buf. The buffer must hold
// the full 236-byte fixed header; when anything follows it, the 4-byte magic
// cookie is verified and the TLV stream after it is decoded until an End
// option (tag 255) or buffer exhaustion. Pad bytes (tag 0) are skipped and
// the End option itself is not appended.
func ParseFrame(buf []byte) (*Frame, error) {
	if len(buf) < FixedHeaderLen {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrShortFrame, len(buf), FixedHeaderLen)
	}

	f := &Frame{
		Op:    buf[0],
		HType: buf[1],
		HLen:  buf[2],
		Hops:  buf[3],
		XID:   binary.BigEndian.Uint32(buf[4:8]),
		Secs:  binary.BigEndian.Uint16(buf[8:10]),
		Flags: binary.BigEndian.Uint16(buf[10:12]),
	}
	copy(f.CIAddr[:], buf[12:16])
	copy(f.YIAddr[:], buf[16:20])
	copy(f.SIAddr[:], buf[20:24])
	copy(f.GIAddr[:], buf[24:28])
	copy(f.CHAddr[:], buf[28:44])
	copy(f.SName[:], buf[44:108])
	copy(f.File[:], buf[108:236])

	// Header-only frames (plain BOOTP) carry no cookie and no options.
	if len(buf) == FixedHeaderLen {
		return f, nil
	}
	if len(buf) < OptionsOffset || !bytes.Equal(buf[FixedHeaderLen:OptionsOffset], MagicCookie[:]) {
		return nil, ErrBadCookie
	}

	cursor := OptionsOffset
	for cursor < len(buf) {
		switch buf[cursor] {
		case TagEnd:
			return f, nil
		case TagPad:
			cursor++
			continue
		}
		opt, err := ParseOption(buf[cursor:])
		if err != nil {
			return nil, fmt.Errorf("dhcpv4: parse option at offset %d: %w", cursor, err)
		}
		f.Options = append(f.Options, opt)
		cursor += 2 + len(opt.Value)
	}
	return f, nil
}
