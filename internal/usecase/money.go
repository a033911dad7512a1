package usecase

import "github.com/shopspring/decimal"

var thousand = decimal.NewFromInt(1000)

// VNDを千単位に（偶数丸め）
func toThousands(vnd int64) int64 {
	return decimal.NewFromInt(vnd).Div(thousand).RoundBank(0).IntPart()
}
