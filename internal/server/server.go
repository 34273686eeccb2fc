package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/rs/zerolog"

	"github.com/croylabs/dhcpwire/internal/config"
	"github.com/croylabs/dhcpwire/internal/dhcpv4"
	"github.com/croylabs/dhcpwire/internal/observability"
)

// Handler consumes a decoded frame and may return a reply frame to send
// back to the source address. Returning (nil, nil) means no reply.
type Handler interface {
	Handle(src *net.UDPAddr, frame *dhcpv4.Frame) (*dhcpv4.Frame, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(src *net.UDPAddr, frame *dhcpv4.Frame) (*dhcpv4.Frame, error)

func (fn HandlerFunc) Handle(src *net.UDPAddr, frame *dhcpv4.Frame) (*dhcpv4.Frame, error) {
	return fn(src, frame)
}

// Server reads BOOTP/DHCP datagrams off a UDP socket, decodes each one and
// hands it to the handler. A malformed datagram is logged and skipped; it
// never stops the listener.
type Server struct {
	cfg     config.Config
	log     zerolog.Logger
	handler Handler
	conn    *net.UDPConn
}

func New(cfg config.Config, logger zerolog.Logger, handler Handler) *Server {
	observability.RegisterMetrics()
	return &Server{
		cfg:     cfg,
		log:     logger.With().Str("component", "listener").Logger(),
		handler: handler,
	}
}

// Listen binds the UDP socket. Separate from Serve so callers can learn the
// bound address before the loop starts.
func (s *Server) Listen() error {
	addr, err := net.ResolveUDPAddr("udp4", s.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("resolve listen addr %q: %w", s.cfg.ListenAddr, err)
	}
	conn, err := net.ListenUDP("udp4", addr)
	if err != nil {
		return fmt.Errorf("bind %q: %w", s.cfg.ListenAddr, err)
	}
	s.conn = conn
	s.log.Info().Str("addr", conn.LocalAddr().String()).Msg("listening")
	return nil
}

func (s *Server) LocalAddr() net.Addr {
	if s.conn == nil {
		return nil
	}
	return s.conn.LocalAddr()
}

// Serve runs the datagram loop until ctx is cancelled or the socket fails.
func (s *Server) Serve(ctx context.Context) error {
	if s.conn == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	stop := context.AfterFunc(ctx, func() { s.conn.Close() })
	defer stop()

	buf := make([]byte, s.cfg.ReadBufferBytes)
	for {
		n, src, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("read datagram: %w", err)
		}
		s.handleDatagram(src, buf[:n])
	}
}

func (s *Server) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *Server) handleDatagram(src *net.UDPAddr, payload []byte) {
	start := time.Now()
	frame, err := dhcpv4.ParseFrame(payload)
	observability.RecordDecode(s.cfg.Name, time.Since(start))
	if err != nil {
		observability.RecordDatagram(s.cfg.Name, observability.ResultMalformed)
		s.log.Warn().
			Err(err).
			Str("src", src.String()).
			Int("bytes", len(payload)).
			Msg("dropping malformed datagram")
		return
	}
	observability.RecordDatagram(s.cfg.Name, observability.ResultDecoded)

	event := s.log.Info().
		Str("src", src.String()).
		Uint8("op", frame.Op).
		Uint32("xid", frame.XID).
		Str("mac", frame.ClientMACString()).
		Int("options", len(frame.Options))
	if mt, ok := frame.MessageType(); ok {
		event = event.Str("type", dhcpv4.MessageTypeName(mt))
	}
	event.Msg("frame received")

	if s.handler == nil {
		return
	}
	reply, err := s.handler.Handle(src, frame)
	if err != nil {
		observability.RecordDatagram(s.cfg.Name, observability.ResultHandlerFail)
		s.log.Error().Err(err).Uint32("xid", frame.XID).Msg("handler failed")
		return
	}
	if reply == nil {
		return
	}
	wire, err := reply.Bytes()
	if err != nil {
		observability.RecordDatagram(s.cfg.Name, observability.ResultHandlerFail)
		s.log.Error().Err(err).Uint32("xid", reply.XID).Msg("encode reply failed")
		return
	}
	if _, err := s.conn.WriteToUDP(wire, src); err != nil {
		s.log.Error().Err(err).Str("dst", src.String()).Msg("send reply failed")
		return
	}
	observability.RecordDatagram(s.cfg.Name, observability.ResultReplied)
}
