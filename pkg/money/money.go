// Package money нормализация денежных значений.
//
// Стоимость услуги приходит от клиентов в разнородном виде: числом,
// строкой с десятичной точкой или запятой, либо отсутствует вовсе.
// NormalizeAmount приводит всё это к каноничному float64 ровно один раз
// на пути записи; дальше по коду значение уже не перепарсивается.
package money

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NormalizeAmount приводит денежное значение произвольного типа к float64.
// Отсутствующее, пустое или нераспознаваемое значение превращается в 0 —
// это осознанная мягкость, а не ошибка: запись без суммы допустима.
func NormalizeAmount(v any) float64 {
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0
		}
		return parsed
	case string:
		// Десятичная запятая допустима ("12,50" == "12.50")
		normalized := strings.ReplaceAll(val, ",", ".")
		parsed, err := strconv.ParseFloat(normalized, 64)
		if err != nil {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
