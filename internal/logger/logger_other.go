//go:build !darwin && !linux
// +build !darwin,!linux

package logger

import "os"

// GetTerminalInfo is the fallback for platforms without a dedicated ioctl
// probe (notably Windows, where fatih/color already queries the console
// width internally for wrapping decisions this package doesn't need to
// duplicate).
func GetTerminalInfo(*os.File) TerminalInfo {
	return TerminalInfo{}
}
