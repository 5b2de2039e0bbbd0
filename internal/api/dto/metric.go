package dto

// PortfolioMetricDTO 单日指标点
type PortfolioMetricDTO struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// PortfolioTrendDTO 作品集趋势数据
type PortfolioTrendDTO struct {
	PortfolioID uint64                `json:"portfolio_id"`
	Days        int                   `json:"days"`
	Views       []*PortfolioMetricDTO `json:"views"`
	Ratings     []*PortfolioMetricDTO `json:"ratings"`
	Average     []*PortfolioMetricDTO `json:"average"`
}
