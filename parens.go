package eqsolve

// nest replaces each matched pair of parentheses in toks with a group node
// holding the nodes between them, recursively. The result is the list of
// top-level nodes, with every group's terms checked to alternate between
// operands and operators.
func nest(toks []lexToken, p *parsectx) ([]*Node, error) {
	kids, k, err := nestSpan(toks, 0, 0, p)
	if err != nil {
		return nil, err
	}
	if k < len(toks) {
		// nestSpan only stops early on a close parenthesis, and at the top
		// level there is nothing for it to close.
		return nil, &BracketError{Col: toks[k].pos, Right: toks[k].text}
	}
	if err := terms(kids, p.eof, ""); err != nil {
		return nil, err
	}
	return kids, nil
}

// nestSpan converts toks[i:] into nodes until it reaches a close parenthesis
// at the current depth or the end of the input. The second result is the
// index of that close parenthesis, or len(toks) if there is none. Nested
// parentheses are consumed by recursive calls, so the first close found at
// this level is the match for whatever opened it.
func nestSpan(toks []lexToken, i, depth int, p *parsectx) ([]*Node, int, error) {
	var kids []*Node
	for i < len(toks) {
		tok := toks[i]
		switch tok.kind {
		case tokenNum:
			kids = append(kids, num(tok.text, tok.pos))
			i++
		case tokenOp:
			kids = append(kids, &Node{Kind: NodeOp, Op: tok.op, Pos: tok.pos})
			i++
		case tokenOpen:
			if depth >= p.maxDepth {
				return nil, 0, &DepthError{Col: tok.pos, Max: p.maxDepth}
			}
			inner, end, err := nestSpan(toks, i+1, depth+1, p)
			if err != nil {
				return nil, 0, err
			}
			col, text := p.eof, ""
			if end < len(toks) {
				col, text = toks[end].pos, toks[end].text
			} else if !p.closeEOF {
				return nil, 0, &BracketError{Col: tok.pos, Left: tok.text}
			}
			if err := terms(inner, col, text); err != nil {
				return nil, 0, err
			}
			kids = append(kids, &Node{Kind: NodeGroup, Pos: tok.pos, Children: inner})
			i = end + 1
		case tokenClose:
			return kids, i, nil
		default:
			panic("eqsolve: unknown token: " + tok.String())
		}
	}
	return kids, len(toks), nil
}

// terms checks that kids is a sequence of operands separated by operators.
// col and end describe the token that ended the sequence, for the error when
// it is empty.
func terms(kids []*Node, col int, end string) error {
	if len(kids) == 0 {
		return &EmptyExpressionError{Col: col, End: end}
	}
	for i, n := range kids {
		switch {
		case i%2 == 0 && n.Kind == NodeOp:
			return &OperatorError{Col: n.Pos, Operator: n.Op.String()}
		case i%2 == 1 && n.Kind != NodeOp:
			return &OperandError{Col: n.Pos}
		}
	}
	if len(kids)%2 == 0 {
		n := kids[len(kids)-1]
		return &OperatorError{Col: n.Pos, Operator: n.Op.String(), Trailing: true}
	}
	return nil
}
