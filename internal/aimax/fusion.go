package aimax

type fusionKey struct {
	mover, captured Kind
}

// 按走法规则查表：升级炮吃兵不会再合成，因为它的规则是炮
var fusionTable = map[fusionKey]Kind{
	{Pawn, Pawn}:       UpgradedCannon,
	{Pawn, Horse}:      UpgradedCar,
	{Pawn, Cannon}:     Chong,
	{Horse, Car}:       HorseCar,
	{Horse, Elephant}:  Jun,
	{Car, Cannon}:      Kui,
	{Car, Pawn}:        Wen,
	{Advisor, Advisor}: Shi,
}

// Fuse 吃己方子时的合成结果；不满足条件返回 mover 本身
func Fuse(mover, captured Piece) Piece {
	if mover.IsEmpty() || captured.IsEmpty() || mover.Side != captured.Side {
		return mover
	}
	k, ok := fusionTable[fusionKey{mover.Kind.Rule(), captured.Kind.Rule()}]
	if !ok {
		return mover
	}
	return Piece{Side: mover.Side, Kind: k}
}

func canFuse(mover, captured Piece) bool {
	return Fuse(mover, captured) != mover
}
