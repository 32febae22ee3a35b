package create_booking

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("create_booking: salon not found")

	// ErrServicesNotFound возвращается, когда часть выбранных услуг не найдена в каталоге
	ErrServicesNotFound = errors.New("create_booking: service offerings not found")

	// ErrNoServicesSelected возвращается, когда в запросе нет ни одной услуги
	ErrNoServicesSelected = errors.New("create_booking: no services selected")

	// ErrOutsideBusinessHours возвращается, когда интервал выходит за рабочие часы салона
	ErrOutsideBusinessHours = errors.New("create_booking: booking time must be within salon's open hours")

	// ErrSlotNotAvailable возвращается, когда интервал конфликтует с существующим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
