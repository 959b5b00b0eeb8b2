//go:build windows

package cpu

import "runtime"

// machineArch maps the Go architecture name to the machine identifier
// convention uname uses on other platforms.
func machineArch() (string, error) {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64", nil
	case "386":
		return "i686", nil
	default:
		return runtime.GOARCH, nil
	}
}
