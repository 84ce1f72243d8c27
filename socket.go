package main

import (
	"bufio"
	"context"
	"io"
	"net"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/GcZuRi1886/barstatus/types"
)

const (
	commandSocket = ".socket.sock"
	eventSocket   = ".socket2.sock"

	// Window titles travel on the event socket and can be long.
	maxEventLine = 1 << 20
)

func openSocket(ctx context.Context, dir, sockName string) (net.Conn, error) {
	if dir == "" {
		return nil, errors.New("Hyprland socket directory unknown, is HYPRLAND_INSTANCE_SIGNATURE set?")
	}
	var d net.Dialer
	sock := filepath.Join(dir, sockName)
	conn, err := d.DialContext(ctx, "unix", sock)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open Hyprland socket %s", sock)
	}
	return conn, nil
}

// sendCommand writes one request to the command socket and reads the reply.
// Hyprland closes the connection once the reply is written, so the reply is
// read to EOF regardless of its size.
func sendCommand(ctx context.Context, dir, cmd string) ([]byte, error) {
	conn, err := openSocket(ctx, dir, commandSocket)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	if _, err := conn.Write([]byte(cmd)); err != nil {
		return nil, errors.Wrapf(err, "write %q", cmd)
	}
	out, err := io.ReadAll(conn)
	if err != nil {
		return nil, errors.Wrapf(err, "read reply to %q", cmd)
	}
	return out, nil
}

// socketStream reads events from the event socket, dropping kinds nobody
// asked for.
type socketStream struct {
	conn    net.Conn
	scanner *bufio.Scanner
	kinds   map[types.EventKind]bool
	stop    func() bool
}

func newSocketStream(ctx context.Context, conn net.Conn, kinds []types.EventKind) *socketStream {
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), maxEventLine)

	wanted := make(map[types.EventKind]bool, len(kinds))
	for _, k := range kinds {
		wanted[k] = true
	}

	return &socketStream{
		conn:    conn,
		scanner: scanner,
		kinds:   wanted,
		stop:    context.AfterFunc(ctx, func() { conn.Close() }),
	}
}

func (s *socketStream) Next() (types.Event, error) {
	for s.scanner.Scan() {
		ev, err := types.ParseEvent(s.scanner.Text())
		if err != nil {
			continue
		}
		if s.kinds[ev.Kind] {
			return ev, nil
		}
	}
	if err := s.scanner.Err(); err != nil {
		return types.Event{}, errors.Wrap(err, "read Hyprland event socket")
	}
	return types.Event{}, io.EOF
}

func (s *socketStream) Close() error {
	s.stop()
	return s.conn.Close()
}
