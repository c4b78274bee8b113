package exclusions

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("barber not found")

	// ErrExclusionNotFound возвращается, когда исключение не найдено
	ErrExclusionNotFound = errors.New("exclusion not found")

	// ErrDuplicateExclusion возвращается, когда дата уже исключена для барбера
	ErrDuplicateExclusion = errors.New("date already excluded for barber")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
