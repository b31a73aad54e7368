package game

// EffectiveMoves narrows a piece's pseudo-legal set to the moves its behavior
// policy will actually consider this turn.
//
// A force-move target overrides the named behavior. With a target set and
// captures available, the capture set is tie-broken by behavior: aggressive
// keeps only the highest-value captures, defensive keeps the capture(s)
// closest to the target, default and passive keep every capture. With no
// capture available the piece walks toward the target: only moves that
// strictly shrink the Manhattan distance qualify, falling back to the full
// pseudo-legal set when nothing improves.
//
// Without a target: passive pieces hold still; aggressive pieces take the
// best capture or close on the nearest enemy king; defensive pieces take any
// capture, guard within radius 5 of their nearest friendly king, and walk
// back toward it beyond that; default pieces keep the full set.
//
// Distance comparisons are strict: a move that merely ties the current
// distance does not qualify.
func EffectiveMoves(p *Piece, pos Position, b *Board) []Position {
	moves := p.PseudoLegalMoves(pos, b)

	if target, ok := p.ForceTarget(); ok {
		return forceTargetMoves(p, pos, b, moves, target)
	}

	switch p.Behavior {
	case BehaviorPassive:
		return nil
	case BehaviorAggressive:
		return aggressiveMoves(p, pos, b, moves)
	case BehaviorDefensive:
		return defensiveMoves(p, pos, b, moves)
	default:
		return moves
	}
}

const defensiveGuardRadius = 5

func forceTargetMoves(p *Piece, pos Position, b *Board, moves []Position, target Position) []Position {
	captures := captureMoves(b, moves)
	if len(captures) > 0 {
		switch p.Behavior {
		case BehaviorAggressive:
			return maxValueCaptures(b, captures)
		case BehaviorDefensive:
			return closestTo(captures, target)
		default:
			return captures
		}
	}
	if closing := reducingDistance(moves, pos, target); len(closing) > 0 {
		return closing
	}
	return moves
}

func aggressiveMoves(p *Piece, pos Position, b *Board, moves []Position) []Position {
	if captures := captureMoves(b, moves); len(captures) > 0 {
		return maxValueCaptures(b, captures)
	}
	king, ok := nearestKing(b, p.Color.Opponent(), pos)
	if !ok {
		return moves
	}
	if closing := reducingDistance(moves, pos, king); len(closing) > 0 {
		return closing
	}
	return moves
}

func defensiveMoves(p *Piece, pos Position, b *Board, moves []Position) []Position {
	// Capture always wins over positioning, with no value ranking.
	if captures := captureMoves(b, moves); len(captures) > 0 {
		return captures
	}
	king, ok := nearestKing(b, p.Color, pos)
	if !ok {
		return moves
	}
	if pos.ManhattanDistance(king) <= defensiveGuardRadius {
		return nil
	}
	if closing := reducingDistance(moves, pos, king); len(closing) > 0 {
		return closing
	}
	return moves
}

// captureMoves filters a move set down to enemy-occupied destinations.
// Pseudo-legal moves never land on friendly pieces, so occupied means enemy.
func captureMoves(b *Board, moves []Position) []Position {
	var captures []Position
	for _, m := range moves {
		if b.Get(m) != nil {
			captures = append(captures, m)
		}
	}
	return captures
}

// maxValueCaptures keeps the capture(s) of the highest-value target, ties
// included.
func maxValueCaptures(b *Board, captures []Position) []Position {
	best := -1.0
	for _, m := range captures {
		if v := b.Get(m).Value; v > best {
			best = v
		}
	}
	var kept []Position
	for _, m := range captures {
		if b.Get(m).Value == best {
			kept = append(kept, m)
		}
	}
	return kept
}

// closestTo keeps the move(s) at minimum Manhattan distance from target.
func closestTo(moves []Position, target Position) []Position {
	best := -1
	for _, m := range moves {
		if d := m.ManhattanDistance(target); best < 0 || d < best {
			best = d
		}
	}
	var kept []Position
	for _, m := range moves {
		if m.ManhattanDistance(target) == best {
			kept = append(kept, m)
		}
	}
	return kept
}

// reducingDistance keeps moves that land strictly closer to target than from.
func reducingDistance(moves []Position, from, target Position) []Position {
	current := from.ManhattanDistance(target)
	var kept []Position
	for _, m := range moves {
		if m.ManhattanDistance(target) < current {
			kept = append(kept, m)
		}
	}
	return kept
}

// nearestKing finds the closest surviving king of the given color by
// Manhattan distance from pos. Row-major order breaks distance ties.
func nearestKing(b *Board, c Color, pos Position) (Position, bool) {
	kings := b.Kings(c)
	if len(kings) == 0 {
		return Position{}, false
	}
	best := kings[0]
	bestDist := pos.ManhattanDistance(best)
	for _, k := range kings[1:] {
		if d := pos.ManhattanDistance(k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best, true
}
