package bfconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/samber/lo"
)

type Permissive bool

var _ configs.Configurable = Permissive(false)

func (Permissive) ConfigExpr() string {
	return "permissive"
}

var permissiveFlag = cmds.Switch("-permissive", "treat unknown characters as comments")

func (Module) Permissive(
	loader configs.Loader,
) Permissive {
	if *permissiveFlag {
		return true
	}
	return Permissive(configs.First[bool](loader, Permissive(false).ConfigExpr()))
}

type JumpTable bool

var _ configs.Configurable = JumpTable(false)

func (JumpTable) ConfigExpr() string {
	return "jump_table"
}

var jumpTableFlag = cmds.Switch("-jump-table", "precompute loop jump targets")

func (Module) JumpTable(
	loader configs.Loader,
) JumpTable {
	if *jumpTableFlag {
		return true
	}
	return JumpTable(configs.First[bool](loader, JumpTable(false).ConfigExpr()))
}

// MaxSteps limits executed instructions per run. 0 is unlimited.
type MaxSteps int

var _ configs.Configurable = MaxSteps(0)

func (MaxSteps) ConfigExpr() string {
	return "max_steps"
}

var maxStepsFlag = cmds.Var[int]("-max-steps", "fault after this many instructions")

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(lo.CoalesceOrEmpty(
		*maxStepsFlag,
		configs.First[int](loader, MaxSteps(0).ConfigExpr()),
	))
}

// MaxCells limits allocated tape cells per run. 0 is unlimited.
type MaxCells int

var _ configs.Configurable = MaxCells(0)

func (MaxCells) ConfigExpr() string {
	return "max_cells"
}

var maxCellsFlag = cmds.Var[int]("-max-cells", "fault when the tape grows past this many cells")

func (Module) MaxCells(
	loader configs.Loader,
) MaxCells {
	return MaxCells(lo.CoalesceOrEmpty(
		*maxCellsFlag,
		configs.First[int](loader, MaxCells(0).ConfigExpr()),
	))
}

type Prompt string

var _ configs.Configurable = Prompt("")

func (Prompt) ConfigExpr() string {
	return "prompt"
}

const DefaultPrompt = "Input a byte:\n"

var promptFlag = cmds.Var[string]("-prompt", "text shown before reading a byte interactively")

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(lo.CoalesceOrEmpty(
		*promptFlag,
		configs.First[string](loader, Prompt("").ConfigExpr()),
		DefaultPrompt,
	))
}
