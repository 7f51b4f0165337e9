package tcp

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"time"

	"github.com/ormanli/rewards/internal/app/rewards"
)

// Reply is the outcome of a reward request.
type Reply struct {
	Accepted           bool
	ConfirmationNumber string
	Amount             rewards.MonetaryAmount
	Reason             string
}

// Client sends reward requests to a Transport.
type Client struct {
	addr    string
	timeout time.Duration
	dialer  net.Dialer
}

// NewClient creates a client for the server at addr. Each request must complete within timeout.
func NewClient(addr string, timeout time.Duration) *Client {
	return &Client{
		addr:    addr,
		timeout: timeout,
	}
}

// Reward requests a reward for a dining over a new connection.
// A rejected reward is reported in the reply, not as an error.
func (c *Client) Reward(ctx context.Context, amount rewards.MonetaryAmount, creditCardNumber, merchantNumber string) (Reply, error) {
	ctx, cncl := context.WithTimeout(ctx, c.timeout)
	defer cncl()

	conn, err := c.dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return Reply{}, err
	}
	defer conn.Close() //nolint:errcheck

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return Reply{}, err
		}
	}

	if _, err := fmt.Fprintf(conn, "%s\n", formatRequest(amount, creditCardNumber, merchantNumber)); err != nil {
		return Reply{}, err
	}

	scanner := bufio.NewScanner(conn)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return Reply{}, err
		}
		return Reply{}, ErrInvalidResponse
	}

	r, err := parseResponse(scanner.Text())
	if err != nil {
		return Reply{}, err
	}

	return Reply{
		Accepted:           r.status == Accepted,
		ConfirmationNumber: r.confirmationNumber,
		Amount:             r.amount,
		Reason:             r.reason,
	}, nil
}
