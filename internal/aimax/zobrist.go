package aimax

import "sync"

var (
	zobristOnce sync.Once

	zobristPieces  [2][NumKinds][NumSquares]uint64
	zobristPending [NumSquares]uint64
	zobristSide    uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for k := 1; k < int(NumKinds); k++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][k][sq] = next()
				}
			}
		}
		for sq := 0; sq < NumSquares; sq++ {
			zobristPending[sq] = next()
		}
		zobristSide = next()
	})
}

func pieceHashKey(pc Piece, sq Square) uint64 {
	if pc.IsEmpty() || !sq.Valid() {
		return 0
	}
	initZobrist()

	var sideIdx int
	switch pc.Side {
	case Red:
		sideIdx = 0
	case Black:
		sideIdx = 1
	default:
		return 0
	}
	if pc.Kind <= KindNone || pc.Kind >= NumKinds {
		return 0
	}
	return zobristPieces[sideIdx][pc.Kind][sq]
}

func pendingHashKey(sq Square) uint64 {
	if !sq.Valid() {
		return 0
	}
	initZobrist()
	return zobristPending[sq]
}

// CalculateHash 全量计算当前局面的 Zobrist 哈希。
func (p *Position) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for sq := 0; sq < NumSquares; sq++ {
		h ^= pieceHashKey(p.Board.Squares[sq], Square(sq))
	}
	if p.SideToMove == Black {
		h ^= zobristSide
	}
	h ^= p.pendingKey()
	return h
}

func (p *Position) pendingKey() uint64 {
	if p.Phase != PhaseContinuation {
		return 0
	}
	return pendingHashKey(p.Pending)
}

// EnsureHash 确保 Position.Hash 已初始化；返回当前哈希值。
func (p *Position) EnsureHash() uint64 {
	if p.Hash == 0 {
		p.Hash = p.CalculateHash()
	}
	return p.Hash
}
