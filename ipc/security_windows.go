//go:build windows

package ipc

// descriptor translates the policy into the SDDL string handed to the
// named-pipe listener. An empty string keeps the pipe's default DACL,
// which restricts access to the creating user.
func (sa SecurityAttributes) descriptor() string {
	if sa.mode == nil {
		return ""
	}
	if *sa.mode&0o006 != 0 {
		// World-readable/writable mode bits map to "Everyone".
		return "D:P(A;;GA;;;WD)"
	}
	return "D:P(A;;GA;;;OW)"
}
