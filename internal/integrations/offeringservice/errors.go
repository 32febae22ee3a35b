package offeringservice

import "errors"

var (
	// ErrOfferingsNotFound возвращается, когда часть запрошенных услуг не найдена
	ErrOfferingsNotFound = errors.New("offeringservice client: service offerings not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("offeringservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("offeringservice client: invalid response")
)
