// Package validation содержит функции валидации входных данных.
package validation

import "math"

// ValidRate проверяет, что оценка лежит в диапазоне от 1 до 10.
func ValidRate(rate int16) bool {
	return rate >= 1 && rate <= 10
}

// maxQuantity ограничен типом SMALLINT колонки quantity в хранилище.
const maxQuantity = math.MaxInt16

// ValidQuantity проверяет, что количество в строке корзины положительное
// и не превышает вместимость хранилища.
func ValidQuantity(quantity int32) bool {
	return quantity >= 1 && quantity <= maxQuantity
}

// ValidPriceCents проверяет, что цена в копейках положительная.
func ValidPriceCents(cents int64) bool {
	return cents > 0
}

// ValidSlug проверяет slug категории: строчные латинские буквы,
// цифры и дефисы, без дефисов по краям.
func ValidSlug(slug string) bool {
	if slug == "" {
		return false
	}
	for i := 0; i < len(slug); i++ {
		c := slug[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
			if i == 0 || i == len(slug)-1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
