package rotation

import "time"

// secondsPerDay количество секунд в сутках UTC
const secondsPerDay = 24 * 60 * 60

// DayIndex maps wall-clock time to a stable position in the collection.
// Вычисляется как (дни с Unix эпохи по UTC) mod length: индекс постоянен
// в пределах одних UTC суток и сдвигается ровно на одну позицию на границе
// суток, с переходом через конец коллекции обратно к нулю.
func DayIndex(now time.Time, length int) int {
	if length <= 0 {
		return 0
	}

	days := int(now.UTC().Unix() / secondsPerDay)
	return NormalizeIndex(days, length)
}

// NormalizeIndex приводит произвольный (в том числе отрицательный) индекс
// к диапазону [0, length). Наивное `index % length` в Go дает отрицательный
// результат для отрицательного индекса - например, при ручной навигации
// назад с нулевой позиции - поэтому остаток берется дважды.
func NormalizeIndex(index, length int) int {
	if length <= 0 {
		return 0
	}

	return ((index % length) + length) % length
}
