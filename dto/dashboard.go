package dto

// DashboardStatsResponse là DTO cho số liệu tổng hợp trên dashboard
type DashboardStatsResponse struct {
	PPMTasks          PPMTaskStats     `json:"ppmTasks"`
	OpenHighPriority  int64            `json:"openHighPriorityWorkOrders"`
	Certificates      CertificateStats `json:"certificates"`
	ResponseTimeHours float64          `json:"responseTimeHours"`
	MonthlySpend      float64          `json:"monthlySpend"`
	UptimePercent     float64          `json:"uptimePercent"`
}

// PPMTaskStats đếm nhiệm vụ bảo trì theo trạng thái
type PPMTaskStats struct {
	Scheduled int64 `json:"scheduled"`
	Completed int64 `json:"completed"`
	Overdue   int64 `json:"overdue"`
}

// CertificateStats đếm chứng chỉ theo trạng thái dẫn xuất
type CertificateStats struct {
	Valid    int `json:"valid"`
	Expiring int `json:"expiring"`
	Expired  int `json:"expired"`
}
