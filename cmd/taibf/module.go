package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfscript"
	"github.com/reusee/taibf/bfvm"
)

type Module struct {
	dscope.Module
	VM     bfvm.Module
	Script bfscript.Module
}
