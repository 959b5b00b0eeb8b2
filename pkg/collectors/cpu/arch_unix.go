//go:build unix

package cpu

import (
	"strings"

	"golang.org/x/sys/unix"
)

// machineArch returns the machine hardware name from uname
// (e.g. x86_64, aarch64).
func machineArch() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", err
	}
	return strings.TrimRight(string(uts.Machine[:]), "\x00"), nil
}
