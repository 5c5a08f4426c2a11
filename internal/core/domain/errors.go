package domain

import (
	"errors"
	"fmt"
)

// Ошибки, которые Use Cases возвращают наружу.
// REST-слой маппит их на HTTP-статусы.
var (
	// ErrNotFound — запись с указанным id отсутствует в хранилище.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyBound — потребность или предложение уже участвует в сделке.
	// Возвращается и при создании сделки, и при попытке удаления.
	ErrAlreadyBound = errors.New("listing is already part of a deal")

	// ErrHasRelations — запись нельзя удалить, пока на нее ссылаются
	// потребности, предложения или сделки.
	ErrHasRelations = errors.New("record is referenced by other records")

	// ErrInvalidInput — некорректные данные запроса (пустой поисковый запрос,
	// меньше трех вершин полигона, min > max и т.п.).
	ErrInvalidInput = errors.New("invalid input")
)

// InvalidInput оборачивает ErrInvalidInput с пояснением причины.
func InvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
