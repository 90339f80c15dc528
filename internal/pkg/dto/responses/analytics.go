package responses

type StatusBreakdown struct {
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
	Completed int `json:"completed"`
}

type AddonStats struct {
	TotalRequests         int             `json:"total_requests"`
	WardStats             map[string]int  `json:"ward_stats"`
	TestStats             map[string]int  `json:"test_stats"`
	ReasonStats           map[string]int  `json:"reason_stats"`
	ShiftStats            map[string]int  `json:"shift_stats"`
	UserStats             map[string]int  `json:"user_stats"`
	PreventableCount      int             `json:"preventable_count"`
	PreventablePercentage float64         `json:"preventable_percentage"`
	StatusBreakdown       StatusBreakdown `json:"status_breakdown"`
}

type AddonTrends struct {
	DailyStats map[string]int `json:"daily_stats"`
	PeriodDays int            `json:"period_days"`
}
