package galera

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// ConnectError is a connectivity-level failure reaching the node. Callers
// surface it as CRITICAL: the node is (as far as we can tell) down.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string { return fmt.Sprintf("cannot connect to node: %v", e.Err) }
func (e *ConnectError) Unwrap() error { return e.Err }

// AccessError is an authentication or authorization failure. The node is up
// but refused the status query, so callers surface it as UNKNOWN rather than
// CRITICAL.
type AccessError struct {
	Err error
}

func (e *AccessError) Error() string { return fmt.Sprintf("access denied by node: %v", e.Err) }
func (e *AccessError) Unwrap() error { return e.Err }

// Server error numbers that mean a credential or privilege problem rather
// than an unreachable node.
var accessDeniedCodes = map[uint16]bool{
	1044: true, // ER_DBACCESS_DENIED_ERROR
	1045: true, // ER_ACCESS_DENIED_ERROR
	1698: true, // ER_ACCESS_DENIED_NO_PASSWORD_ERROR
	3118: true, // ER_ACCOUNT_HAS_BEEN_LOCKED
}

func classify(err error) error {
	var serverErr *mysql.MySQLError
	if errors.As(err, &serverErr) && accessDeniedCodes[serverErr.Number] {
		return &AccessError{Err: err}
	}
	return &ConnectError{Err: err}
}
