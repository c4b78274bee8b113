package catalog

import "github.com/m04kA/Barbershop-BookingService/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
