package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// getWindowSize は端末のウィンドウサイズ（行数・桁数）を取得する
func getWindowSize() (int, int, error) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Row), int(ws.Col), nil
}

// isTerminal は標準出力が端末に接続されているかを返す
func isTerminal() bool {
	_, err := unix.IoctlGetTermios(int(os.Stdout.Fd()), unix.TCGETS)
	return err == nil
}
