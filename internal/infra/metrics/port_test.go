package metrics

import (
	"net"
)

// getFreePort returns a free port number.
func getFreePort() (int, error) {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil //nolint:forcetypeassert
}
