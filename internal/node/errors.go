package node

import "fmt"

// ConnectError wraps a failure to reach or authenticate against the
// Dogecoin Core RPC server. Endpoint and credential path are carried for
// diagnostics; the credential contents never are.
type ConnectError struct {
	Endpoint   string
	CookiePath string
	Err        error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf(
		"failed to connect to Dogecoin Core RPC at %s using cookie file %s: %v",
		e.Endpoint, e.CookiePath, e.Err,
	)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// VersionError reports a node older than the minimum gord supports. Both
// versions are pre-formatted in Dogecoin Core's dotted notation.
type VersionError struct {
	Required string
	Actual   string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf(
		"Dogecoin Core %s or newer required, current version is %s",
		e.Required, e.Actual,
	)
}
