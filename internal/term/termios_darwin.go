package term

import "golang.org/x/sys/unix"

const (
	reqGetAttr      = unix.TIOCGETA
	reqSetAttrFlush = unix.TIOCSETAF // TCSAFLUSH semantics
)
