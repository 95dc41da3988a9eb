package engine

import (
	"aimax/internal/aimax"
)

const (
	pawnCrossBonus  = 50
	pawnCenterBonus = 30 // 过河兵在 3-5 列再加
	compositeBonus  = 800
	depthPenalty    = 10
)

// 过河加成系数，按走法规则取；每深入一行乘一次
var crossRiverCoef = map[aimax.Kind]int{
	aimax.Horse:    30,
	aimax.HorseCar: 30,
	aimax.Car:      20,
	aimax.Cannon:   15,
	aimax.Jun:      40,
	aimax.Wen:      35,
	aimax.Kui:      25,
	aimax.Chong:    20,
}

// Evaluator 静态评估，红方视角：正数红方好
type Evaluator struct {
	values *ValueTable
}

func NewEvaluator(values *ValueTable) *Evaluator {
	if values == nil {
		values = DefaultValues()
	}
	return &Evaluator{values: values}
}

// Evaluate depth 为剩余层数；line 为空栈时不计重复惩罚
func (ev *Evaluator) Evaluate(b *aimax.Board, depth int, line *moveLine) int {
	score := 0
	redBonus, blackBonus := 0, 0

	for i, pc := range b.Squares {
		if pc.IsEmpty() {
			continue
		}
		sq := aimax.Square(i)
		row, col := sq.Row(), sq.Col()
		val := ev.values.Value(pc.Kind)

		if pc.Kind == aimax.Pawn && pawnCrossed(pc.Side, row) {
			val += pawnCrossBonus
			if col >= 3 && col <= 5 {
				val += pawnCenterBonus
			}
		}

		bonus := 0
		if adv := riverAdvance(pc.Side, row); adv > 0 {
			bonus += crossRiverCoef[pc.Kind.Rule()] * adv
		}
		if pc.Kind.Composite() {
			bonus += compositeBonus
		}

		if pc.Side == aimax.Red {
			score += val
			redBonus += bonus
		} else {
			score -= val
			blackBonus += bonus
		}
	}

	score += redBonus - blackBonus
	score -= depth * depthPenalty
	if line != nil {
		score += lineRepetition(b, line)
	}
	return score
}

func pawnCrossed(side aimax.Side, row int) bool {
	if side == aimax.Red {
		return row >= aimax.RiverRow
	}
	return row < aimax.RiverRow
}

// riverAdvance 过河后深入的行数，没过河为 0
func riverAdvance(side aimax.Side, row int) int {
	if side == aimax.Red && row > 4 {
		return row - 4
	}
	if side == aimax.Black && row < 5 {
		return 5 - row
	}
	return 0
}
