package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/rocketscienceinc/seabattle/internal/apperror"
	"github.com/rocketscienceinc/seabattle/internal/entity"
)

const Usage = "Usage: seabattle <seed> [<ip>] <port>"

// Args are the positional command line arguments. Without an IP the program listens
// for the opponent, with an IP it connects to one.
type Args struct {
	Seed int64
	IP   string
	Port uint16
	Role entity.Role
}

// ParseArgs parses the arguments following the program name.
func ParseArgs(args []string) (*Args, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, fmt.Errorf("%w: expected 2 or 3 arguments, got %d", apperror.ErrInvalidArgs, len(args))
	}

	seed, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: seed %q is not an integer", apperror.ErrInvalidArgs, args[0])
	}

	port, err := parsePort(args[len(args)-1])
	if err != nil {
		return nil, err
	}

	parsed := &Args{
		Seed: seed,
		Port: port,
		Role: entity.RoleServer,
	}

	if len(args) == 3 {
		ip := net.ParseIP(args[1])
		if ip == nil {
			return nil, fmt.Errorf("%w: wrong IP format %q", apperror.ErrInvalidArgs, args[1])
		}

		parsed.IP = ip.String()
		parsed.Role = entity.RoleClient
	}

	return parsed, nil
}

func parsePort(value string) (uint16, error) {
	port, err := strconv.ParseUint(value, 10, 16)
	if err != nil || port == 0 {
		return 0, fmt.Errorf("%w: port %q must be in 1..65535", apperror.ErrInvalidArgs, value)
	}

	return uint16(port), nil
}
