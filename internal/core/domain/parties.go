package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client — участник сделки со стороны спроса или предложения.
// Инвариант: заполнен хотя бы телефон или email.
type Client struct {
	ID         uuid.UUID
	LastName   string
	FirstName  string
	Patronymic string
	Phone      string
	Email      string
}

// Validate проверяет инвариант клиента.
func (c Client) Validate() error {
	if c.Phone == "" && c.Email == "" {
		return InvalidInput("client must have either a phone number or an email address")
	}
	return nil
}

// NameParts возвращает непустые части ФИО для нечеткого поиска.
func (c Client) NameParts() []string {
	return nameParts(c.FirstName, c.LastName, c.Patronymic)
}

// FullName собирает ФИО для отображения.
func (c Client) FullName() string {
	return strings.TrimSpace(strings.Join(nameParts(c.LastName, c.FirstName, c.Patronymic), " "))
}

// Realtor — риэлтор компании. CommissionShare — процент комиссии,
// который получает риэлтор (0–100); nil означает долю по умолчанию.
type Realtor struct {
	ID              uuid.UUID
	LastName        string
	FirstName       string
	Patronymic      string
	CommissionShare *decimal.Decimal
}

// Validate проверяет обязательность ФИО и диапазон доли комиссии.
func (r Realtor) Validate() error {
	if r.LastName == "" || r.FirstName == "" || r.Patronymic == "" {
		return InvalidInput("realtor must have a full name")
	}
	if r.CommissionShare != nil {
		if r.CommissionShare.IsNegative() || r.CommissionShare.GreaterThan(decimal.NewFromInt(100)) {
			return InvalidInput("commission share must be between 0 and 100")
		}
	}
	return nil
}

// NameParts возвращает непустые части ФИО для нечеткого поиска.
func (r Realtor) NameParts() []string {
	return nameParts(r.FirstName, r.LastName, r.Patronymic)
}

// FullName собирает ФИО для отображения.
func (r Realtor) FullName() string {
	return strings.TrimSpace(strings.Join(nameParts(r.LastName, r.FirstName, r.Patronymic), " "))
}

func nameParts(parts ...string) []string {
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			res = append(res, p)
		}
	}
	return res
}
