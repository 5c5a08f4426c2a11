// Package fuzzy реализует нечеткое сопоставление текстовых запросов
// с полями записей на основе расстояния Левенштейна.
package fuzzy

import (
	"strings"

	"brokerage-service/pkg/levenshtein"
)

// Tokenize приводит строку к нижнему регистру и разбивает по пробелам.
func Tokenize(s string) []string {
	return strings.Fields(strings.ToLower(s))
}

// MatchesAny возвращает true, если хотя бы одна пара
// (токен запроса, токен кандидата) укладывается в порог.
func MatchesAny(queryTokens, candidateTokens []string, threshold int) bool {
	for _, q := range queryTokens {
		for _, c := range candidateTokens {
			if levenshtein.WithinThreshold(q, c, threshold) {
				return true
			}
		}
	}
	return false
}

// Field описывает одно поле кандидата в декларативной таблице сопоставления.
// Поля проверяются в порядке объявления; первое сработавшее останавливает
// проверку записи. Пустые значения полей никогда не совпадают.
type Field struct {
	Name      string
	Threshold int
}

// Matcher — таблица полей с порогами, применяемая к записям.
// Одна и та же реализация используется и для поиска по ФИО,
// и для поиска по компонентам адреса.
type Matcher struct {
	fields []Field
}

// NewMatcher создает матчер с фиксированным порядком полей.
func NewMatcher(fields ...Field) *Matcher {
	return &Matcher{fields: fields}
}

// Match проверяет значения полей кандидата (в том же порядке, что и поля
// матчера) против токенов запроса. Возвращает имя первого совпавшего поля.
func (m *Matcher) Match(queryTokens []string, values []string) (string, bool) {
	for i, f := range m.fields {
		if i >= len(values) {
			break
		}
		v := strings.TrimSpace(values[i])
		if v == "" {
			continue
		}
		if MatchesAny(queryTokens, Tokenize(v), f.Threshold) {
			return f.Name, true
		}
	}
	return "", false
}
