package postgres

import (
	"fmt"
	"strings"

	"brokerage-service/internal/core/port"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId:      1,
		conditions: make([]string, 0),
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// build создает финальную часть WHERE и аргументы запроса
func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyPropertyFilters разбирает фильтры списка объектов и строит запрос
func applyPropertyFilters(filters port.PropertyFilters) (string, []interface{}) {
	qb := newQueryBuilder()

	// Фильтр по городу (точное совпадение без учета регистра)
	if filters.City != "" {
		qb.addCondition("LOWER(%s) = LOWER($%d)", "p.city", filters.City)
	}

	// Фильтр по улице (поиск подстроки)
	if filters.Street != "" {
		qb.addCondition("%s ILIKE $%d", "p.street", "%"+filters.Street+"%")
	}

	// Фильтр по категории
	if filters.PropertyType != "" {
		qb.addCondition("%s = $%d", "p.type", string(filters.PropertyType))
	}

	return qb.build()
}
