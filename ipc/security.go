package ipc

import "os"

// SecurityAttributes describes the access-control policy applied to a
// freshly bound endpoint: file permission bits on Unix, a security
// descriptor on Windows named pipes.
//
// The zero value means "leave creation permissions untouched"; use
// EmptySecurityAttributes for the restrictive owner-only default. All
// updates are functional: methods return a new value and never mutate
// the receiver, so attribute values are safe to share and reuse.
type SecurityAttributes struct {
	mode *os.FileMode
}

// EmptySecurityAttributes returns the restrictive default policy:
// owner-only read/write (0600).
func EmptySecurityAttributes() SecurityAttributes {
	m := os.FileMode(0o600)
	return SecurityAttributes{mode: &m}
}

// AllowEveryoneConnect widens the policy so any local user may connect
// (0666).
func (sa SecurityAttributes) AllowEveryoneConnect() SecurityAttributes {
	m := os.FileMode(0o666)
	sa.mode = &m
	return sa
}

// AllowEveryoneCreate returns a policy that leaves permissions exactly as
// the OS created them, for callers that govern access through the umask
// or an external mechanism.
func AllowEveryoneCreate() SecurityAttributes {
	return SecurityAttributes{}
}

// WithMode returns a policy forcing the given permission bits after bind.
func (sa SecurityAttributes) WithMode(mode os.FileMode) SecurityAttributes {
	m := mode
	sa.mode = &m
	return sa
}

// Mode reports the configured permission bits. ok is false when the
// policy leaves creation permissions untouched.
func (sa SecurityAttributes) Mode() (mode os.FileMode, ok bool) {
	if sa.mode == nil {
		return 0, false
	}
	return *sa.mode, true
}
