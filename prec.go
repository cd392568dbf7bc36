package eqsolve

// tiers lists the operators at each precedence level, most binding first.
var tiers = [...][]Op{
	{OpPow},
	{OpMul, OpDiv},
	{OpAdd, OpSub},
}

func inTier(tier []Op, op Op) bool {
	for _, t := range tier {
		if t == op {
			return true
		}
	}
	return false
}

// Resolve restructures a group so that every group in the tree holds at most
// one operation. Groups nested in n are resolved first. Then each tier of
// operators, from exponentiation down to addition and subtraction, is
// collapsed left to right: each operand, operator, operand triple becomes a
// new group in place of the three nodes. The result is n itself.
//
// Resolving a tree that is already resolved leaves it unchanged. Resolve
// panics if n is not a group or if its children do not alternate between
// operands and operators.
func Resolve(n *Node) *Node {
	if n.Kind != NodeGroup {
		panic("eqsolve: Resolve on " + n.Kind.String())
	}
	for _, c := range n.Children {
		if c.Kind == NodeGroup {
			Resolve(c)
		}
	}
	for _, tier := range tiers {
		// Groups of one or three nodes are a single operand or operation.
		if len(n.Children) <= 3 {
			break
		}
		n.Children = fold(n.Children, tier)
	}
	return n
}

// fold collapses each operator of tier in kids into a group with the operands
// on either side, left to right, in a single pass. The left operand is always
// the last node already folded, so chains like 1-2-3 associate left. Folding
// stops once three nodes would remain. The result is a new slice; kids is not
// modified.
func fold(kids []*Node, tier []Op) []*Node {
	r := make([]*Node, 0, len(kids))
	r = append(r, kids[0])
	for i := 1; i < len(kids); i += 2 {
		op := kids[i]
		if op.Kind != NodeOp {
			panic("eqsolve: operand " + op.String() + " in operator position")
		}
		if len(r)+len(kids)-i > 3 && inTier(tier, op.Op) {
			r[len(r)-1] = group(op.Pos, r[len(r)-1], op, kids[i+1])
			continue
		}
		r = append(r, op, kids[i+1])
	}
	return r
}
