package postgres_adapter

import (
	"fmt"
	"strings"

	"github.com/ank17jaat/SpaceMate/internal/core/domain"
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

// build создает финальную WHERE часть запроса
func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyFilters - главный метод, который разбирает фильтры и строит запрос
func applyFilters(filters domain.SearchFilters) (string, []interface{}) {
	qb := newQueryBuilder()

	// Фильтр по типу (точное совпадение, "all" отключает фильтр)
	if filters.Type != "" && filters.Type != "all" {
		qb.addCondition("%s = $%d", "type", filters.Type)
	}

	// Фильтр по городу (поиск подстроки в city или в полном адресе)
	if filters.City != "" {
		condition := fmt.Sprintf("(city ILIKE $%d OR location ILIKE $%d)", qb.argId, qb.argId)
		qb.conditions = append(qb.conditions, condition)
		qb.args = append(qb.args, "%"+filters.City+"%")
		qb.argId++
	}

	// Границы цены (включительно)
	if filters.MinPrice != nil {
		qb.addCondition("%s >= $%d", "price_per_night", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		qb.addCondition("%s <= $%d", "price_per_night", *filters.MaxPrice)
	}

	// Минимальный рейтинг
	if filters.Rating != nil {
		qb.addCondition("%s >= $%d", "rating", *filters.Rating)
	}

	// Удобства: объект должен содержать ВСЕ запрошенные (оператор containment)
	if len(filters.Amenities) > 0 {
		qb.addCondition("%s @> $%d", "amenities", filters.Amenities)
	}

	// Поиск подстроки в названии
	if filters.Search != "" {
		qb.addCondition("%s ILIKE $%d", "name", "%"+filters.Search+"%")
	}

	// Фильтр по владельцу (точное совпадение)
	if filters.OwnerID != "" {
		qb.addCondition("%s = $%d", "owner_id", filters.OwnerID)
	}

	return qb.build()
}
