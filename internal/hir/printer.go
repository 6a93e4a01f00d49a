package hir

import (
	"fmt"
	"strings"
)

// Print renders a module as deterministic text. The backend stores this
// encoding as the build artifact; tests assert against it.
func Print(m *Module) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "module %s\n", m.Name)
	for _, fn := range m.Functions {
		printFunction(&sb, fn)
	}
	return sb.String()
}

func printFunction(sb *strings.Builder, fn *Function) {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = fmt.Sprintf("%s=v%d", p.Name, p.Value)
	}
	fmt.Fprintf(sb, "fn %s(%s)\n", fn.Name, strings.Join(params, ", "))
	for _, blk := range fn.Blocks {
		fmt.Fprintf(sb, "b%d:\n", blk.ID)
		for _, in := range blk.Instrs {
			fmt.Fprintf(sb, "  v%d = %s\n", in.Result, instrString(in))
		}
		fmt.Fprintf(sb, "  %s\n", termString(blk.Term))
	}
}

func instrString(in *Instr) string {
	switch in.Op {
	case OpIntConst:
		return "int " + in.Text
	case OpStrConst:
		return fmt.Sprintf("str %q", in.Text)
	case OpUnit:
		return "unit"
	case OpTuple:
		return "tuple " + valueList(in.Args)
	case OpField:
		return fmt.Sprintf("field v%d.%d", in.Args[0], in.Index)
	case OpPayload:
		return fmt.Sprintf("payload v%d as %s", in.Args[0], in.Name)
	case OpMakeVariant:
		return fmt.Sprintf("variant %s %s", in.Name, valueList(in.Args))
	case OpCall:
		return fmt.Sprintf("call %s %s", in.Name, valueList(in.Args))
	case OpBinary:
		return fmt.Sprintf("binary %s v%d v%d", in.Name, in.Args[0], in.Args[1])
	case OpUnary:
		return fmt.Sprintf("unary %s v%d", in.Name, in.Args[0])
	case OpBind:
		return fmt.Sprintf("bind %s v%d", in.Name, in.Args[0])
	case OpPhi:
		parts := make([]string, len(in.Incoming))
		for i, inc := range in.Incoming {
			parts[i] = fmt.Sprintf("b%d:v%d", inc.Block, inc.Value)
		}
		return "phi " + strings.Join(parts, " ")
	default:
		return "?"
	}
}

func termString(t Terminator) string {
	switch term := t.(type) {
	case nil:
		return "<unterminated>"
	case *Jump:
		return fmt.Sprintf("jump b%d", term.Target)
	case *Return:
		return fmt.Sprintf("return v%d", term.Value)
	case *EnumSwitch:
		parts := make([]string, len(term.Cases))
		for i, c := range term.Cases {
			parts[i] = fmt.Sprintf("%s->b%d", c.Variant, c.Target)
		}
		return fmt.Sprintf("enumswitch v%d [%s]", term.Value, strings.Join(parts, " "))
	case *LiteralSwitch:
		kind := "int"
		if term.IsStr {
			kind = "str"
		}
		parts := make([]string, len(term.Cases))
		for i, c := range term.Cases {
			parts[i] = fmt.Sprintf("%s->b%d", c.Value, c.Target)
		}
		return fmt.Sprintf("%sswitch v%d [%s] default->b%d",
			kind, term.Value, strings.Join(parts, " "), term.Default)
	default:
		return "?"
	}
}

func valueList(vals []ValueID) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("v%d", v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
