package models

import "time"

// Photo представляет одну фотографию коллекции.
// Неизменяема после получения от источника, идентичность определяется по ID.
type Photo struct {
	ID      string `json:"id"`       // ID уникальный идентификатор фотографии
	Color   string `json:"color"`    // Color доминирующий цвет (hex), используется как подложка до загрузки изображения
	FullURL string `json:"full_url"` // FullURL ссылка на полноразмерное изображение
}

// CacheEntry представляет закэшированную коллекцию фотографий.
// Владелец - cache manager; сериализуется в JSON и хранится
// в персистентном хранилище под фиксированным ключом.
// Инвариант: UpdatedAt не убывает между записями для одного клиента.
type CacheEntry struct {
	Photos    []Photo   `json:"photos"`     // Photos коллекция в порядке, полученном от источника
	UpdatedAt time.Time `json:"updated_at"` // UpdatedAt момент последнего успешного обновления
}

// Age возвращает возраст записи относительно переданного момента времени
func (e *CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.UpdatedAt)
}

// IsStale сообщает, истек ли TTL записи
func (e *CacheEntry) IsStale(now time.Time, ttl time.Duration) bool {
	return e.Age(now) >= ttl
}
