package engine

import (
	"math/rand"

	"aimax/internal/aimax"
)

// 七种基础子的估值
var baseValues = map[aimax.Kind]int{
	aimax.King:     10000,
	aimax.Advisor:  200,
	aimax.Elephant: 200,
	aimax.Horse:    350,
	aimax.Car:      900,
	aimax.Cannon:   800,
	aimax.Pawn:     100,
}

// ValueTable 按 Kind 查子力价值；合成子 = 组成部分之和
type ValueTable struct {
	v [aimax.NumKinds]int
}

func newValueTable(base map[aimax.Kind]int) *ValueTable {
	t := &ValueTable{}
	for k, v := range base {
		t.v[k] = v
	}
	t.v[aimax.UpgradedCannon] = t.v[aimax.Cannon]
	t.v[aimax.UpgradedCar] = t.v[aimax.Car]
	t.v[aimax.HorseCar] = t.v[aimax.Car] + t.v[aimax.Horse]
	t.v[aimax.Chong] = t.v[aimax.Pawn] + t.v[aimax.Cannon]
	t.v[aimax.Kui] = t.v[aimax.Car] + t.v[aimax.Cannon]
	t.v[aimax.Jun] = t.v[aimax.Horse] + t.v[aimax.Elephant]
	t.v[aimax.Wen] = t.v[aimax.Car] + t.v[aimax.Pawn]
	t.v[aimax.Shi] = 2 * t.v[aimax.Advisor]
	return t
}

// DefaultValues 固定估值表
func DefaultValues() *ValueTable {
	return newValueTable(baseValues)
}

// RandomizedValues 每种基础子乘一个 [1.1, 1.3) 的随机倍率，合成子重新求和。
// 只在配置里显式开启时使用。
func RandomizedValues(rng *rand.Rand) *ValueTable {
	scaled := make(map[aimax.Kind]int, len(baseValues))
	for _, k := range []aimax.Kind{
		aimax.King, aimax.Advisor, aimax.Elephant, aimax.Horse,
		aimax.Car, aimax.Cannon, aimax.Pawn,
	} {
		f := 1.1 + rng.Float64()*0.2
		scaled[k] = int(float64(baseValues[k]) * f)
	}
	return newValueTable(scaled)
}

func (t *ValueTable) Value(k aimax.Kind) int {
	if k <= aimax.KindNone || k >= aimax.NumKinds {
		return 0
	}
	return t.v[k]
}
