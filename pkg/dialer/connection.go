package dialer

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/javi11/poolkeeper/pkg/resourcepool"
)

type Target struct {
	Id             string
	Name           string
	Host           string
	Port           int
	ProxyURL       string
	MaxConnections int
}

// Key identifies the pool serving this target.
func (t Target) Key() resourcepool.Key {
	return resourcepool.NewKey(t.Name, t.Host, strconv.Itoa(t.Port))
}

func (t Target) Address() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

func (t Target) String() string {
	return fmt.Sprintf("%s (%s)", t.Name, t.Address())
}

// Connection is the resource handed out by pools backed by a Dialer.
type Connection interface {
	io.ReadWriteCloser
	Target() Target
	CreationTime() time.Time
}

type connection struct {
	net.Conn
	target    Target
	createdAt time.Time
}

func newConnection(conn net.Conn, target Target) Connection {
	return &connection{
		Conn:      conn,
		target:    target,
		createdAt: time.Now(),
	}
}

func (c *connection) Target() Target {
	return c.target
}

func (c *connection) CreationTime() time.Time {
	return c.createdAt
}
