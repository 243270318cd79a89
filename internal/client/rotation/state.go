package rotation

import "github.com/darkobits/frontlawn-website/internal/models"

// State представляет состояние ротации одной сессии просмотра:
// перемешанная коллекция и текущий индекс. Значение иммутабельно,
// навигация возвращает новое состояние.
//
// Index хранится "сырым": при шагах назад он может выходить за [0, length),
// нормализация выполняется при каждом чтении, а не при записи.
// Состояние живет только в памяти сессии и не персистится.
type State struct {
	Photos []models.Photo // Photos коллекция после перемешивания
	Index  int            // Index текущая позиция, нормализуется при чтении
}

// Current возвращает фотографию на текущей (нормализованной) позиции
func (s State) Current() models.Photo {
	return s.At(0)
}

// At возвращает фотографию со смещением offset от текущей позиции
func (s State) At(offset int) models.Photo {
	return s.Photos[NormalizeIndex(s.Index+offset, len(s.Photos))]
}

// Next возвращает состояние, сдвинутое на одну позицию вперед
func (s State) Next() State {
	s.Index++
	return s
}

// Prev возвращает состояние, сдвинутое на одну позицию назад
func (s State) Prev() State {
	s.Index--
	return s
}
