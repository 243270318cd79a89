package rotation

import (
	"hash/fnv"
	"math/rand/v2"

	"github.com/darkobits/frontlawn-website/internal/models"
)

// FallbackSeed используется для перемешивания, когда у клиента
// нет сохраненного имени. Отсутствие имени - валидное состояние
const FallbackSeed = "frontlawn"

// Shuffle returns a new deterministic permutation of the collection.
// Чистая функция от (photos, seed): одинаковый seed и одинаковая коллекция
// дают одинаковый порядок в любой сессии и на любом процессе. Благодаря
// этому клиент видит стабильную последовательность ротации между
// перезагрузками, а разные клиенты - разные последовательности.
//
// Если состав коллекции в источнике меняется, позиции остальных фотографий
// могут сдвинуться - это принятое ограничение, не ошибка.
func Shuffle(photos []models.Photo, seed string) []models.Photo {
	shuffled := make([]models.Photo, len(photos))
	copy(shuffled, photos)

	src := seedValue(seed)
	rng := rand.New(rand.NewPCG(src, src))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	return shuffled
}

// seedValue сводит строковый seed к числовому через FNV-1a
func seedValue(seed string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	return h.Sum64()
}
