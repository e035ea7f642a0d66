package oahash

import "errors"

// ErrProbeLimitExceeded is reported to the error logger when a probe visited every slot
// without finding the key or an empty slot. The table is rebuilt and the probe retried
var ErrProbeLimitExceeded = errors.New("oahash: probe limit exceeded")
