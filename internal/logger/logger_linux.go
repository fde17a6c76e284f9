//go:build linux
// +build linux

package logger

import (
	"os"

	"golang.org/x/sys/unix"
)

// GetTerminalInfo mirrors logger_darwin.go's probe using Linux's termios
// ioctl name (TCGETS instead of BSD's TIOCGETA), covering the platform most
// CI and dev machines actually run on.
func GetTerminalInfo(file *os.File) (info TerminalInfo) {
	fd := file.Fd()

	if _, err := unix.IoctlGetTermios(int(fd), unix.TCGETS); err == nil {
		info.IsTTY = true
		info.UseColorEscapes = true

		if w, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ); err == nil {
			info.Width = int(w.Col)
			info.Height = int(w.Row)
		}
	}

	return
}
