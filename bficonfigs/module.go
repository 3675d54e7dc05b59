package bficonfigs

import (
	"github.com/bmoneill/bfi/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
