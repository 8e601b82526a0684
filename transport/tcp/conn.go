package tcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"

	"github.com/rocketscienceinc/seabattle/internal/apperror"
)

// Conn is a reliable ordered byte stream to the opponent. Reads and writes block until they
// complete in full or the connection fails; nothing is retried.
type Conn struct {
	logger *slog.Logger
	conn   net.Conn
}

func NewConn(logger *slog.Logger, conn net.Conn) *Conn {
	return &Conn{
		logger: logger.With("component", "tcp", "remote", conn.RemoteAddr().String()),
		conn:   conn,
	}
}

// SendExact writes all of data.
func (that *Conn) SendExact(data []byte) error {
	log := that.logger.With("method", "SendExact")

	written := 0
	for written < len(data) {
		n, err := that.conn.Write(data[written:])
		written += n

		if err != nil {
			log.Debug("write failed", "written", written, "size", len(data), "error", err)
			return fmt.Errorf("%w: write: %w", apperror.ErrTransport, err)
		}

		if n == 0 {
			return fmt.Errorf("%w: write: %w", apperror.ErrTransport, io.ErrShortWrite)
		}
	}

	log.Debug("sent", "size", len(data))

	return nil
}

// ReceiveExact blocks until exactly n bytes are read.
func (that *Conn) ReceiveExact(n int) ([]byte, error) {
	log := that.logger.With("method", "ReceiveExact")

	buf := make([]byte, n)
	if _, err := io.ReadFull(that.conn, buf); err != nil {
		log.Debug("read failed", "size", n, "error", err)

		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: connection closed by peer: %w", apperror.ErrTransport, err)
		}

		return nil, fmt.Errorf("%w: read: %w", apperror.ErrTransport, err)
	}

	log.Debug("received", "size", n)

	return buf, nil
}

func (that *Conn) RemoteAddr() string {
	return that.conn.RemoteAddr().String()
}

func (that *Conn) Close() error {
	if err := that.conn.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}

	return nil
}

// Listener accepts the single inbound connection of the server side.
type Listener struct {
	logger   *slog.Logger
	listener net.Listener
}

func Listen(ctx context.Context, logger *slog.Logger, port uint16) (*Listener, error) {
	var lc net.ListenConfig

	listener, err := lc.Listen(ctx, "tcp4", net.JoinHostPort("", strconv.Itoa(int(port))))
	if err != nil {
		return nil, fmt.Errorf("%w: can't listen on port %d: %w", apperror.ErrTransport, port, err)
	}

	return &Listener{
		logger:   logger,
		listener: listener,
	}, nil
}

func (that *Listener) Addr() net.Addr {
	return that.listener.Addr()
}

// Accept waits for one connection and stops listening.
func (that *Listener) Accept() (*Conn, error) {
	log := that.logger.With("method", "Accept")

	defer func() {
		if err := that.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			log.Error("failed to close listener", "error", err)
		}
	}()

	conn, err := that.listener.Accept()
	if err != nil {
		return nil, fmt.Errorf("%w: can't accept connection: %w", apperror.ErrTransport, err)
	}

	log.Info("connection accepted", "remote", conn.RemoteAddr().String())

	return NewConn(that.logger, conn), nil
}

func (that *Listener) Close() error {
	if err := that.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("failed to close listener: %w", err)
	}

	return nil
}

func Dial(ctx context.Context, logger *slog.Logger, ip string, port uint16) (*Conn, error) {
	var dialer net.Dialer

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(ip, strconv.Itoa(int(port))))
	if err != nil {
		return nil, fmt.Errorf("%w: can't connect to %s:%d: %w", apperror.ErrTransport, ip, port, err)
	}

	logger.Info("connected", "remote", conn.RemoteAddr().String())

	return NewConn(logger, conn), nil
}
