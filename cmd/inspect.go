package cmd

import (
	"fmt"
	"strings"

	"github.com/ComedicChimera/olive"
	"github.com/pterm/pterm"

	"irkit/generate"
	"irkit/llvm"
	"irkit/manifest"
	"irkit/report"
)

// execInspectCommand executes the `inspect` subcommand.
func execInspectCommand(result *olive.ArgParseResult) {
	path, _ := result.PrimaryArg()
	defer report.CatchErrors(path)

	man, err := manifest.Load(path)
	if err != nil {
		report.ReportStdError(path, err)
		return
	}

	ctx := llvm.NewContext()
	defer ctx.Dispose()

	mod, err := generate.Generate(ctx, man)
	if err != nil {
		report.ReportStdError(path, err)
		return
	}

	root := pterm.NewTreeFromLeveledList(describeModule(mod))
	if err := pterm.DefaultTree.WithRoot(root).Render(); err != nil {
		report.ReportStdError(path, err)
	}
}

// describeModule lists the functions of mod along with their arguments,
// attributes and entry blocks as a leveled list.
func describeModule(mod llvm.Module) pterm.LeveledList {
	list := pterm.LeveledList{{Level: 0, Text: fmt.Sprintf("module %s", mod.Name())}}

	for _, fn := range mod.Functions() {
		list = append(list, pterm.LeveledListItem{Level: 1, Text: fmt.Sprintf("%s : %s", fn.Name(), fn.Signature())})

		if attrs := fn.Attributes(); attrs != 0 {
			list = append(list, pterm.LeveledListItem{Level: 2, Text: "attrs: " + attrs.String()})
		}

		for _, arg := range fn.Args() {
			list = append(list, pterm.LeveledListItem{Level: 2, Text: describeArg(arg)})
		}

		if entry, ok := fn.Entry(); ok {
			list = append(list, pterm.LeveledListItem{
				Level: 2,
				Text:  fmt.Sprintf("entry: %s (%d blocks)", blockLabel(entry.Name()), len(fn.Blocks())),
			})
		} else {
			list = append(list, pterm.LeveledListItem{Level: 2, Text: "declaration"})
		}
	}

	return list
}

// describeArg renders one argument line: its index, name, type and attributes.
func describeArg(arg llvm.Arg) string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "arg %d ", arg.Index())

	if name, ok := arg.Name(); !ok {
		sb.WriteString("<unnamed>")
	} else if name == "" {
		sb.WriteString(`""`)
	} else {
		sb.WriteString(name)
	}

	fmt.Fprintf(&sb, " : %s", arg.Type())

	if attrs := arg.Attributes(); attrs != 0 {
		sb.WriteString(" [")
		sb.WriteString(attrs.String())
		sb.WriteString("]")
	}

	return sb.String()
}

func blockLabel(name string) string {
	if name == "" {
		return "<unnamed>"
	}

	return name
}
