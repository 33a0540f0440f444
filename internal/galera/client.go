// Package galera fetches the wsrep status variable set from a single node
// over the MySQL protocol.
package galera

import (
	"context"
	"database/sql"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Params identifies the node to query.
type Params struct {
	Host     string
	Port     int
	Username string
	Password string
	Timeout  time.Duration
}

// Client runs status queries against one node.
type Client struct {
	db *sql.DB
}

func NewClient(p Params) (*Client, error) {
	cfg := mysql.NewConfig()
	cfg.User = p.Username
	cfg.Passwd = p.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
	cfg.Timeout = p.Timeout
	cfg.ReadTimeout = p.Timeout
	cfg.WriteTimeout = p.Timeout

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, err
	}
	return &Client{db: db}, nil
}

func (c *Client) Close() error { return c.db.Close() }

// FetchStatus retrieves every wsrep status variable as a name→raw-string
// map. One query, no retries; failures come back as ConnectError or
// AccessError for the caller to map onto a severity.
func (c *Client) FetchStatus(ctx context.Context) (map[string]string, error) {
	rows, err := c.db.QueryContext(ctx, `SHOW GLOBAL STATUS LIKE 'wsrep\_%'`)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, classify(err)
		}
		out[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return out, nil
}
