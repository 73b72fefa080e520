package get_statistics

// PeriodStats агрегированные показатели за один период.
// Count считается по всем записям периода; Revenue, TopService и
// TopClient — только по завершенным (status = completed).
type PeriodStats struct {
	Count      int     `json:"count"`
	Revenue    float64 `json:"revenue"`
	TopService string  `json:"topService"`
	TopClient  string  `json:"topClient"`
}

// Overview сводная статистика по всем периодам плюс распределение
// записей по дням недели (0 = воскресенье)
type Overview struct {
	Today            PeriodStats `json:"today"`
	Week             PeriodStats `json:"week"`
	Month            PeriodStats `json:"month"`
	All              PeriodStats `json:"all"`
	WeekdayHistogram [7]int      `json:"weekdayHistogram"`
}
