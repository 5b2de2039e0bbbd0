package consts

const (
	PortfolioMetrics7DaysKey  = "portfolio:metrics:7days:"
	PortfolioMetrics30DaysKey = "portfolio:metrics:30days:"
)
