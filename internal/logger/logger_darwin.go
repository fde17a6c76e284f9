//go:build darwin
// +build darwin

package logger

import (
	"os"

	"golang.org/x/sys/unix"
)

// GetTerminalInfo probes file's terminal size via the BSD ioctl. Color
// escape translation itself is left to github.com/fatih/color, which
// already handles Windows/Unix differences, so this file only ever needs
// to answer "is this a tty, and how wide is it".
func GetTerminalInfo(file *os.File) (info TerminalInfo) {
	fd := file.Fd()

	if _, err := unix.IoctlGetTermios(int(fd), unix.TIOCGETA); err == nil {
		info.IsTTY = true
		info.UseColorEscapes = true

		if w, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ); err == nil {
			info.Width = int(w.Col)
			info.Height = int(w.Row)
		}
	}

	return
}
