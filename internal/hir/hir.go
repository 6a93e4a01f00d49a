package hir

// The high-level IR produced by the analyzer. A function body is a graph
// of basic blocks; match expressions lower into switch terminators over
// enum tags and literal values, with one merge block receiving the match
// result through a phi.

type ValueID int

type BlockID int

// NoValue marks instructions and terminators without a result operand.
const NoValue ValueID = -1

type Module struct {
	Name      string
	Functions []*Function
}

type Param struct {
	Name  string
	Value ValueID
}

type Function struct {
	Name   string
	Params []Param
	Blocks []*Block

	nextValue ValueID
}

// Entry returns the function's entry block.
func (f *Function) Entry() *Block {
	if len(f.Blocks) == 0 {
		return nil
	}
	return f.Blocks[0]
}

// Block returns the block with the given id.
func (f *Function) Block(id BlockID) *Block {
	if int(id) < 0 || int(id) >= len(f.Blocks) {
		return nil
	}
	return f.Blocks[id]
}

type Block struct {
	ID     BlockID
	Instrs []*Instr
	Term   Terminator
}

type Op int

const (
	OpIntConst Op = iota // Text = literal
	OpStrConst           // Text = literal
	OpUnit               // the empty tuple value
	OpTuple              // Args = elements
	OpField              // Args[0] = tuple, Index = field index
	OpPayload            // Args[0] = enum value, Name = qualified variant
	OpMakeVariant        // Name = qualified variant, Args = payload (0 or 1)
	OpCall               // Name = function, Args = arguments
	OpBinary             // Name = operator, Args = [lhs, rhs]
	OpUnary              // Name = operator, Args = [operand]
	OpBind               // Name = variable name, Args[0] = bound value
	OpPhi                // Incoming pairs, used by match merge blocks
)

type Incoming struct {
	Block BlockID
	Value ValueID
}

type Instr struct {
	Result ValueID
	Op     Op
	Args   []ValueID
	Name   string
	Index  int
	Text   string

	Incoming []Incoming // OpPhi only
}

// Terminator ends a basic block.
type Terminator interface {
	terminator()
}

// Jump transfers control unconditionally.
type Jump struct {
	Target BlockID
}

// Return leaves the function.
type Return struct {
	Value ValueID
}

// SwitchCase routes one enum variant to a block.
type SwitchCase struct {
	Variant string // qualified variant name
	Target  BlockID
}

// EnumSwitch branches on the variant tag of an enum value. Enums are
// closed, so there is one case per variant and no default.
type EnumSwitch struct {
	Value ValueID
	Enum  string // qualified enum name
	Cases []SwitchCase
}

// LiteralCase routes one literal value to a block.
type LiteralCase struct {
	Value  string
	Target BlockID
}

// LiteralSwitch branches on equality against integer or string literals.
// Literal domains are open, so a default target is always present.
type LiteralSwitch struct {
	Value   ValueID
	IsStr   bool
	Cases   []LiteralCase
	Default BlockID
}

func (*Jump) terminator()          {}
func (*Return) terminator()        {}
func (*EnumSwitch) terminator()    {}
func (*LiteralSwitch) terminator() {}
