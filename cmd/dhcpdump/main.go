// dhcpdump decodes a single raw BOOTP/DHCP payload from a file (or stdin)
// and prints the frame fields and options.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/croylabs/dhcpwire/internal/dhcpv4"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [file]\n\nReads a raw DHCP payload from file (or stdin) and prints it.\n", os.Args[0])
	}
	flag.Parse()

	payload, err := readPayload(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "dhcpdump: %v\n", err)
		os.Exit(1)
	}
	frame, err := dhcpv4.ParseFrame(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dhcpdump: %v\n", err)
		os.Exit(1)
	}
	dump(frame)
}

func readPayload(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func dump(f *dhcpv4.Frame) {
	fmt.Printf("op=%d htype=%d hlen=%d hops=%d\n", f.Op, f.HType, f.HLen, f.Hops)
	fmt.Printf("xid=0x%08x secs=%d flags=0x%04x\n", f.XID, f.Secs, f.Flags)
	fmt.Printf("ciaddr=%s yiaddr=%s siaddr=%s giaddr=%s\n",
		f.ClientIP(), f.YourIP(), f.ServerIP(), f.RelayIP())
	fmt.Printf("chaddr=%s\n", f.ClientMACString())
	if mt, ok := f.MessageType(); ok {
		fmt.Printf("message-type=%s (%d)\n", dhcpv4.MessageTypeName(mt), mt)
	}
	for _, opt := range f.Options {
		if s, err := opt.StringValue(); err == nil && printable(s) {
			fmt.Printf("option %3d len=%3d %q\n", opt.Tag, opt.Length, s)
			continue
		}
		fmt.Printf("option %3d len=%3d %s\n", opt.Tag, opt.Length, hex.EncodeToString(opt.Value))
	}
}

func printable(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return len(s) > 0
}
