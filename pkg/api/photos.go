package api

// Photo представляет одну запись фотографии в том виде, в котором
// её отдает удаленный источник коллекции
type Photo struct {
	ID    string    `json:"id"`    // ID уникальный идентификатор фотографии
	Color string    `json:"color"` // Color доминирующий цвет фотографии (hex, например "#0c3a28")
	URLs  PhotoURLs `json:"urls"`  // URLs ссылки на варианты изображения
}

// PhotoURLs содержит ссылки на изображение
// Источник отдает несколько размеров, клиенту нужен только полный
type PhotoURLs struct {
	Full string `json:"full"` // Full ссылка на полноразмерное изображение
}
