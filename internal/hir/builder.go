package hir

// FunctionBuilder appends blocks and instructions to a function under
// construction. The analyzer owns one builder per function body.
type FunctionBuilder struct {
	fn  *Function
	cur *Block
}

func NewFunctionBuilder(name string, paramNames []string) *FunctionBuilder {
	fn := &Function{Name: name}
	b := &FunctionBuilder{fn: fn}
	entry := b.NewBlock()
	b.SetBlock(entry)
	for _, p := range paramNames {
		fn.Params = append(fn.Params, Param{Name: p, Value: b.newValue()})
	}
	return b
}

func (b *FunctionBuilder) Function() *Function { return b.fn }

// ParamValue returns the value id of a declared parameter.
func (b *FunctionBuilder) ParamValue(name string) (ValueID, bool) {
	for _, p := range b.fn.Params {
		if p.Name == name {
			return p.Value, true
		}
	}
	return NoValue, false
}

func (b *FunctionBuilder) newValue() ValueID {
	id := b.fn.nextValue
	b.fn.nextValue++
	return id
}

// NewBlock allocates a block without making it current.
func (b *FunctionBuilder) NewBlock() *Block {
	blk := &Block{ID: BlockID(len(b.fn.Blocks))}
	b.fn.Blocks = append(b.fn.Blocks, blk)
	return blk
}

// SetBlock makes blk the target of subsequent emissions.
func (b *FunctionBuilder) SetBlock(blk *Block) { b.cur = blk }

// CurrentBlock returns the block instructions are being appended to.
func (b *FunctionBuilder) CurrentBlock() *Block { return b.cur }

func (b *FunctionBuilder) emit(in *Instr) ValueID {
	in.Result = b.newValue()
	b.cur.Instrs = append(b.cur.Instrs, in)
	return in.Result
}

func (b *FunctionBuilder) EmitIntConst(text string) ValueID {
	return b.emit(&Instr{Op: OpIntConst, Text: text})
}

func (b *FunctionBuilder) EmitStrConst(text string) ValueID {
	return b.emit(&Instr{Op: OpStrConst, Text: text})
}

func (b *FunctionBuilder) EmitUnit() ValueID {
	return b.emit(&Instr{Op: OpUnit})
}

func (b *FunctionBuilder) EmitTuple(elements []ValueID) ValueID {
	return b.emit(&Instr{Op: OpTuple, Args: elements})
}

func (b *FunctionBuilder) EmitField(tuple ValueID, index int) ValueID {
	return b.emit(&Instr{Op: OpField, Args: []ValueID{tuple}, Index: index})
}

func (b *FunctionBuilder) EmitPayload(value ValueID, variant string) ValueID {
	return b.emit(&Instr{Op: OpPayload, Args: []ValueID{value}, Name: variant})
}

func (b *FunctionBuilder) EmitMakeVariant(variant string, payload []ValueID) ValueID {
	return b.emit(&Instr{Op: OpMakeVariant, Args: payload, Name: variant})
}

func (b *FunctionBuilder) EmitCall(fn string, args []ValueID) ValueID {
	return b.emit(&Instr{Op: OpCall, Args: args, Name: fn})
}

func (b *FunctionBuilder) EmitBinary(op string, lhs, rhs ValueID) ValueID {
	return b.emit(&Instr{Op: OpBinary, Args: []ValueID{lhs, rhs}, Name: op})
}

func (b *FunctionBuilder) EmitUnary(op string, operand ValueID) ValueID {
	return b.emit(&Instr{Op: OpUnary, Args: []ValueID{operand}, Name: op})
}

func (b *FunctionBuilder) EmitBind(name string, value ValueID) ValueID {
	return b.emit(&Instr{Op: OpBind, Args: []ValueID{value}, Name: name})
}

func (b *FunctionBuilder) EmitPhi(incoming []Incoming) ValueID {
	return b.emit(&Instr{Op: OpPhi, Incoming: incoming})
}

// Terminate sets the current block's terminator if it has none yet.
// A block terminated by a switch must not be re-terminated; the second
// write is ignored so error recovery cannot corrupt the graph.
func (b *FunctionBuilder) Terminate(t Terminator) {
	if b.cur.Term == nil {
		b.cur.Term = t
	}
}
