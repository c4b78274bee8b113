package exclusion

import "errors"

var (
	// ErrExclusionNotFound возвращается, когда запись об исключении не найдена
	ErrExclusionNotFound = errors.New("exclusion.repository: exclusion not found")

	// ErrDuplicateExclusion возвращается при повторном исключении той же даты.
	// Дубликаты безвредны по смыслу, уникальный индекс просто не дает им копиться.
	ErrDuplicateExclusion = errors.New("exclusion.repository: date already excluded")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("exclusion.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("exclusion.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("exclusion.repository: failed to scan row")
)
