package create_booking

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("create_booking: barber not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrDateExcluded возвращается, когда дата целиком закрыта для барбера
	ErrDateExcluded = errors.New("create_booking: date is excluded for this barber")

	// ErrSlotNotAvailable возвращается, когда слот занят между чтением
	// доступности клиентом и попыткой коммита
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrStorageUnavailable возвращается при недоступности хранилища.
	// Транзиентная ошибка: строка журнала не записана, весь флоу можно повторить.
	ErrStorageUnavailable = errors.New("create_booking: storage unavailable")
)
