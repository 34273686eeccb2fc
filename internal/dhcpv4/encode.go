package dhcpv4

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Bytes returns the wire form of the option: tag, length, value. Length is
// trusted to match len(Value); the mutators maintain that invariant.
func (o Option) Bytes() []byte {
	buf := make([]byte, 2+len(o.Value))
	buf[0] = o.Tag
	buf[1] = o.Length
	copy(buf[2:], o.Value)
	return buf
}

// Encode writes the frame to w: fixed header, magic cookie, then each option
// in list order. No End option is appended; callers that need one add it to
// the option list themselves.
func Encode(w io.Writer, f *Frame) error {
	header := make([]byte, OptionsOffset)
	header[0] = f.Op
	header[1] = f.HType
	header[2] = f.HLen
	header[3] = f.Hops
	binary.BigEndian.PutUint32(header[4:8], f.XID)
	binary.BigEndian.PutUint16(header[8:10], f.Secs)
	binary.BigEndian.PutUint16(header[10:12], f.Flags)
	copy(header[12:16], f.CIAddr[:])
	copy(header[16:20], f.YIAddr[:])
	copy(header[20:24], f.SIAddr[:])
	copy(header[24:28], f.GIAddr[:])
	copy(header[28:44], f.CHAddr[:])
	copy(header[44:108], f.SName[:])
	copy(header[108:236], f.File[:])
	copy(header[236:240], MagicCookie[:])

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("dhcpv4: write header: %w", err)
	}
	for _, opt := range f.Options {
		if _, err := w.Write(opt.Bytes()); err != nil {
			return fmt.Errorf("dhcpv4: write option %d: %w", opt.Tag, err)
		}
	}
	return nil
}

// Bytes returns the wire form of the frame.
func (f *Frame) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(OptionsOffset)
	if err := Encode(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
