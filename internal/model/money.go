package model

import "math"

// Cents переводит денежное значение с двумя знаками после запятой в копейки.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// Amount переводит копейки обратно в денежное значение для ответов API.
func Amount(cents int64) float64 {
	return float64(cents) / 100
}
