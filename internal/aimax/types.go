package aimax

type Side int8

const (
	NoSide Side = iota
	Red         // 红方，底线在第 0 行，向行号增大方向走
	Black       // 黑方，底线在第 9 行
)

func (s Side) Opponent() Side {
	switch s {
	case Red:
		return Black
	case Black:
		return Red
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	}
	return "none"
}

type Kind int8

const (
	KindNone Kind = iota
	King          // 帅/将
	Advisor       // 士
	Elephant      // 相/象
	Horse         // 马
	Car           // 车
	Cannon        // 炮
	Pawn          // 兵/卒

	// 以下只能由吃己方子合成
	UpgradedCannon // 升级炮（兵+兵），走法同炮
	UpgradedCar    // 升级车（兵+马），走法同车
	HorseCar       // 骠（马+车）
	Chong          // 铳（兵+炮）
	Kui            // 軳（车+炮）
	Jun            // 骏（马+象）
	Wen            // 轀（车+兵）
	Shi            // 仕（士+士）

	NumKinds
)

// Rule 返回走法规则：升级炮按炮走，升级车按车走，其余就是自身
func (k Kind) Rule() Kind {
	switch k {
	case UpgradedCannon:
		return Cannon
	case UpgradedCar:
		return Car
	}
	return k
}

// Composite 是否是合成子
func (k Kind) Composite() bool {
	return k >= UpgradedCannon && k < NumKinds
}

var kindNames = [NumKinds]string{
	KindNone:       "none",
	King:           "king",
	Advisor:        "advisor",
	Elephant:       "elephant",
	Horse:          "horse",
	Car:            "car",
	Cannon:         "cannon",
	Pawn:           "pawn",
	UpgradedCannon: "upgraded_cannon",
	UpgradedCar:    "upgraded_car",
	HorseCar:       "horse_car",
	Chong:          "chong",
	Kui:            "kui",
	Jun:            "jun",
	Wen:            "wen",
	Shi:            "shi",
}

func (k Kind) String() string {
	if k < 0 || k >= NumKinds {
		return "invalid"
	}
	return kindNames[k]
}

// Piece 零值是空格
type Piece struct {
	Side Side
	Kind Kind
}

var Empty = Piece{}

func MakePiece(side Side, k Kind) Piece {
	if side == NoSide || k == KindNone {
		return Empty
	}
	return Piece{Side: side, Kind: k}
}

func (p Piece) IsEmpty() bool { return p.Kind == KindNone }

// Color 对空格返回 NoSide
func (p Piece) Color() Side {
	if p.Kind == KindNone {
		return NoSide
	}
	return p.Side
}

// Square = row*Cols + col
type Square int8

const NoSquare Square = -1

func Sq(row, col int) Square {
	if !onBoard(row, col) {
		return NoSquare
	}
	return Square(row*Cols + col)
}

func (s Square) Row() int    { return int(s) / Cols }
func (s Square) Col() int    { return int(s) % Cols }
func (s Square) Valid() bool { return s >= 0 && int(s) < NumSquares }

type Move struct {
	From         Square `json:"from"`
	To           Square `json:"to"`
	Continuation bool   `json:"continuation,omitempty"` // 轀第一步，之后须接第二步
}

var NoMove = Move{From: NoSquare, To: NoSquare}

func (m Move) IsNone() bool { return m.From == NoSquare || m.To == NoSquare }

// SameSquares 只比较起止格
func (m Move) SameSquares(o Move) bool {
	return m.From == o.From && m.To == o.To
}

// Reverses 判断 m 是否正好把 prev 走回去
func (m Move) Reverses(prev Move) bool {
	if m.IsNone() || prev.IsNone() {
		return false
	}
	return m.From == prev.To && m.To == prev.From
}
