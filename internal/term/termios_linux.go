package term

import "golang.org/x/sys/unix"

const (
	reqGetAttr      = unix.TCGETS
	reqSetAttrFlush = unix.TCSETSF // TCSAFLUSH semantics
)
