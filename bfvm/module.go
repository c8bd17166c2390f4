package bfvm

import (
	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/logs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs bfconfigs.Module
}

func (Module) Engine(
	logger logs.Logger,
	permissive bfconfigs.Permissive,
	jumpTable bfconfigs.JumpTable,
	maxSteps bfconfigs.MaxSteps,
	maxCells bfconfigs.MaxCells,
) *Engine {
	return New(Config{
		Permissive: bool(permissive),
		JumpTable:  bool(jumpTable),
		MaxSteps:   int(maxSteps),
		MaxCells:   int(maxCells),
	}, logger)
}
