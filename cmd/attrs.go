package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ComedicChimera/olive"
	"github.com/pterm/pterm"

	"irkit/llvm"
	"irkit/report"
)

// execAttrsCommand executes the `attrs` subcommand.
func execAttrsCommand(result *olive.ArgParseResult) {
	if mask, ok := stringArg(result, "decode"); ok {
		attr, err := parseMask(mask)
		if err != nil {
			report.ReportFatal("%s", err)
		}

		fmt.Println(attr)
		return
	}

	if result.HasFlag("plain") {
		fmt.Print(formatAttrTable(llvm.Attributes()))
		return
	}

	data := pterm.TableData{{"name", "keyword", "mask"}}
	for _, info := range llvm.Attributes() {
		data = append(data, []string{info.Name, info.Keyword, formatMask(info.Mask)})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		report.ReportStdError("attrs", err)
	}
}

// parseMask parses an attribute mask given in any Go integer literal syntax.
func parseMask(s string) (llvm.Attribute, error) {
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid attribute mask `%s`: %w", s, err)
	}

	return llvm.Attribute(n), nil
}

func formatMask(a llvm.Attribute) string {
	return fmt.Sprintf("0x%08x", uint32(a))
}

// formatAttrTable renders the attribute layout as plain aligned text.
func formatAttrTable(infos []llvm.AttributeInfo) string {
	sb := strings.Builder{}
	for _, info := range infos {
		fmt.Fprintf(&sb, "%-16s %-16s %s\n", info.Name, info.Keyword, formatMask(info.Mask))
	}

	return sb.String()
}
