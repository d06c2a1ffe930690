package query

// Op is a comparison operator usable inside a filter value. The set is
// closed: every evaluation site switches exhaustively over these constants.
type Op string

const (
	OpEq    Op = "eq"
	OpNe    Op = "ne"
	OpLe    Op = "le"
	OpLt    Op = "lt"
	OpGe    Op = "ge"
	OpGt    Op = "gt"
	OpIsin  Op = "isin"
	OpRegex Op = "regex"
)

// Ops lists every recognized operator, in a stable order.
var Ops = []Op{OpEq, OpNe, OpLe, OpLt, OpGe, OpGt, OpIsin, OpRegex}

// IsValid reports whether the operator is one of the recognized constants.
func (op Op) IsValid() bool {
	switch op {
	case OpEq, OpNe, OpLe, OpLt, OpGe, OpGt, OpIsin, OpRegex:
		return true
	default:
		return false
	}
}

// comparableOps are the operators meaningful for subfilter comparison, after
// eq has been folded into isin. The order determines the comparison order.
var comparableOps = []Op{OpNe, OpLe, OpLt, OpGe, OpGt, OpIsin}
