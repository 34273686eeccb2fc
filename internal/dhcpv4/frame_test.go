package dhcpv4

import (
	"bytes"
	"errors"
	"testing"
)

// headerVector is the 236-byte header-only frame used across the decode
// tests: op=1, htype=1, hlen=6, xid=0x6e86444c, secs=8, chaddr starting
// with 52:54:01:12:34:56, everything else zero.
func headerVector() []byte {
	buf := make([]byte, FixedHeaderLen)
	copy(buf, []byte{
		0x01, 0x01, 0x06, 0x00,
		0x6e, 0x86, 0x44, 0x4c,
		0x00, 0x08, 0x00, 0x00,
	})
	copy(buf[28:], []byte{0x52, 0x54, 0x01, 0x12, 0x34, 0x56})
	return buf
}

func TestParseFrameEmptyBuffer(t *testing.T) {
	_, err := ParseFrame(nil)
	if !errors.Is(err, ErrShortFrame) {
		t.Fatalf("expected ErrShortFrame, got %v", err)
	}
}

func TestParseFrameTooShort(t *testing.T) {
	for _, size := range []int{4, 44, FixedHeaderLen - 1} {
		_, err := ParseFrame(make([]byte, size))
		if !errors.Is(err, ErrShortFrame) {
			t.Fatalf("size %d: expected ErrShortFrame, got %v", size, err)
		}
	}
}

func TestParseFrameHeaderOnly(t *testing.T) {
	f, err := ParseFrame(headerVector())
	if err != nil {
		t.Fatalf("parse frame: %v", err)
	}
	if f.Op != 0x01 || f.HType != 0x01 || f.HLen != 6 || f.Hops != 0 {
		t.Fatalf("unexpected leading fields: %+v", f)
	}
	if f.XID != 0x6e86444c || f.Secs != 8 || f.Flags != 0 {
		t.Fatalf("unexpected xid/secs/flags: %+v", f)
	}
	var zero4 [4]byte
	if f.CIAddr != zero4 || f.YIAddr != zero4 || f.SIAddr != zero4 || f.GIAddr != zero4 {
		t.Fatalf("expected zero addresses: %+v", f)
	}
	wantCH := [16]byte{0x52, 0x54, 0x01, 0x12, 0x34, 0x56}
	if f.CHAddr != wantCH {
		t.Fatalf("unexpected chaddr: %v", f.CHAddr)
	}
	if f.ClientMACString() != "52:54:01:12:34:56" {
		t.Fatalf("unexpected mac string: %q", f.ClientMACString())
	}
	if len(f.SName) != 64 || len(f.File) != 128 {
		t.Fatalf("unexpected sname/file sizes: %d/%d", len(f.SName), len(f.File))
	}
	if len(f.Options) != 0 {
		t.Fatalf("expected no options, got %d", len(f.Options))
	}
}

func TestParseFrameTruncatedCookie(t *testing.T) {
	buf := append(headerVector(), 0x63, 0x82)
	_, err := ParseFrame(buf)
	if !errors.Is(err, ErrBadCookie) {
		t.Fatalf("expected ErrBadCookie, got %v", err)
	}
}

func TestParseFrameBadCookie(t *testing.T) {
	buf := append(headerVector(), 0xde, 0xad, 0xbe, 0xef, 0x35, 0x01, 0x01)
	_, err := ParseFrame(buf)
	if !errors.Is(err, ErrBadCookie) {
		t.Fatalf("expected ErrBadCookie, got %v", err)
	}
}

func withOptions(tail ...byte) []byte {
	buf := append(headerVector(), MagicCookie[:]...)
	return append(buf, tail...)
}

func TestParseFrameOptions(t *testing.T) {
	buf := withOptions(
		0x35, 0x01, 0x03, // message type: request
		0x32, 0x04, 0x0a, 0x00, 0x00, 0x2a, // requested ip: 10.0.0.42
	)
	f, err := ParseFrame(buf)
	if err != nil {
		t.Fatalf("parse frame: %v", err)
	}
	if len(f.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(f.Options))
	}
	if mt, ok := f.MessageType(); !ok || mt != MessageTypeRequest {
		t.Fatalf("unexpected message type: %d %v", mt, ok)
	}
	ip, ok := f.FindOption(TagRequestedIP)
	if !ok || !bytes.Equal(ip.Value, []byte{0x0a, 0x00, 0x00, 0x2a}) {
		t.Fatalf("unexpected requested ip option: %+v", ip)
	}
}

func TestParseFrameEndTerminatesStream(t *testing.T) {
	buf := withOptions(
		0x35, 0x01, 0x01,
		0xff,             // lone End sentinel
		0x3d, 0x02, 0xaa, // would be a client id, must be ignored
	)
	f, err := ParseFrame(buf)
	if err != nil {
		t.Fatalf("parse frame: %v", err)
	}
	if len(f.Options) != 1 || f.Options[0].Tag != TagMessageType {
		t.Fatalf("expected only the message type option: %+v", f.Options)
	}
}

func TestParseFrameTrailingEndWithoutLength(t *testing.T) {
	// End as the very last byte, no length byte after it.
	buf := withOptions(0x35, 0x01, 0x01, 0xff)
	f, err := ParseFrame(buf)
	if err != nil {
		t.Fatalf("parse frame: %v", err)
	}
	if len(f.Options) != 1 {
		t.Fatalf("expected 1 option, got %d", len(f.Options))
	}
}

func TestParseFrameSkipsPadBytes(t *testing.T) {
	buf := withOptions(
		0x00, 0x00, // pad filler
		0x35, 0x01, 0x02,
		0x00,
		0xff,
	)
	f, err := ParseFrame(buf)
	if err != nil {
		t.Fatalf("parse frame: %v", err)
	}
	if len(f.Options) != 1 || f.Options[0].Tag != TagMessageType {
		t.Fatalf("pad bytes not skipped: %+v", f.Options)
	}
}

func TestParseFrameTruncatedOptionPropagates(t *testing.T) {
	buf := withOptions(0x3c, 0x20, 'P', 'X', 'E') // declares 32 bytes, has 3
	_, err := ParseFrame(buf)
	if !errors.Is(err, ErrTruncatedOption) {
		t.Fatalf("expected wrapped ErrTruncatedOption, got %v", err)
	}
}

func TestParseFrameDanglingLengthlessTag(t *testing.T) {
	buf := withOptions(0x35) // tag with no length byte
	_, err := ParseFrame(buf)
	if !errors.Is(err, ErrShortOption) {
		t.Fatalf("expected wrapped ErrShortOption, got %v", err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	f := NewFrame(OpRequest, 0x6e86444c)
	f.Secs = 8
	f.Flags = 0x8000
	f.CIAddr = [4]byte{192, 168, 1, 10}
	f.GIAddr = [4]byte{192, 168, 1, 1}
	copy(f.CHAddr[:], []byte{0x52, 0x54, 0x01, 0x12, 0x34, 0x56})
	copy(f.SName[:], "boot.example.net")
	copy(f.File[:], "pxelinux.0")

	mt := NewOption(TagMessageType)
	mt.SetUint8(MessageTypeRequest)
	f.AddOption(mt)

	host := NewOption(TagHostname)
	if err := host.SetString("client-1"); err != nil {
		t.Fatalf("set hostname: %v", err)
	}
	f.AddOption(host)

	lease := NewOption(TagLeaseTime)
	lease.SetUint32(86400)
	f.AddOption(lease)

	wire, err := f.Bytes()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(wire) != OptionsOffset+3+10+6 {
		t.Fatalf("unexpected wire length: %d", len(wire))
	}

	got, err := ParseFrame(wire)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Op != f.Op || got.HType != f.HType || got.HLen != f.HLen || got.Hops != f.Hops ||
		got.XID != f.XID || got.Secs != f.Secs || got.Flags != f.Flags {
		t.Fatalf("scalar fields mismatch: got=%+v want=%+v", got, f)
	}
	if got.CIAddr != f.CIAddr || got.YIAddr != f.YIAddr || got.SIAddr != f.SIAddr || got.GIAddr != f.GIAddr {
		t.Fatalf("address fields mismatch")
	}
	if got.CHAddr != f.CHAddr || got.SName != f.SName || got.File != f.File {
		t.Fatalf("fixed buffers mismatch")
	}
	if len(got.Options) != len(f.Options) {
		t.Fatalf("option count mismatch: %d vs %d", len(got.Options), len(f.Options))
	}
	for i, opt := range f.Options {
		if got.Options[i].Tag != opt.Tag || !bytes.Equal(got.Options[i].Value, opt.Value) {
			t.Fatalf("option %d mismatch: got=%+v want=%+v", i, got.Options[i], opt)
		}
	}
}

func TestNewFrameEthernetDefaults(t *testing.T) {
	f := NewFrame(OpReply, 42)
	if f.Op != OpReply || f.HType != HTypeEthernet || f.HLen != 6 || f.Hops != 0 || f.Flags != 0 {
		t.Fatalf("unexpected defaults: %+v", f)
	}
	if f.XID != 42 || len(f.Options) != 0 {
		t.Fatalf("unexpected xid/options: %+v", f)
	}
}

func TestEncodeWriterFailure(t *testing.T) {
	f := NewFrame(OpRequest, 1)
	err := Encode(failWriter{}, f)
	if err == nil {
		t.Fatal("expected write error")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestMessageTypeName(t *testing.T) {
	if MessageTypeName(MessageTypeDiscover) != "discover" {
		t.Fatalf("unexpected name for discover")
	}
	if MessageTypeName(200) != "unknown" {
		t.Fatalf("unexpected name for out-of-registry value")
	}
}
