package api

type AnalyticsService struct {
	client *Client
}

func NewAnalyticsService(client *Client) *AnalyticsService {
	return &AnalyticsService{client: client}
}

type AgentStats struct {
	TotalPackages               int     `json:"totalPackages"`
	TotalBookings               int     `json:"totalBookings"`
	PendingBookings             int     `json:"pendingBookings"`
	ConfirmedBookings           int     `json:"confirmedBookings"`
	CompletedBookings           int     `json:"completedBookings"`
	CancelledBookings           int     `json:"cancelledBookings"`
	TotalRevenue                float64 `json:"totalRevenue"`
	AverageRating               float64 `json:"averageRating"`
	PendingPaymentVerifications int     `json:"pendingPaymentVerifications"`
}

type PackagePerformance struct {
	PackageID     string  `json:"packageId"`
	PackageName   string  `json:"packageName"`
	TotalBookings int     `json:"totalBookings"`
	TotalRevenue  float64 `json:"totalRevenue"`
	AverageRating float64 `json:"averageRating"`
	ReviewsCount  int     `json:"reviewsCount"`
}

type TouristStats struct {
	TotalBookings     int     `json:"totalBookings"`
	ConfirmedBookings int     `json:"confirmedBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	CompletedBookings int     `json:"completedBookings"`
	CancelledBookings int     `json:"cancelledBookings"`
	TotalSpent        float64 `json:"totalSpent"`
	ReviewsGiven      int     `json:"reviewsGiven"`
	WishlistCount     int     `json:"wishlistCount"`
}

func (s *AnalyticsService) AgentStats() (*AgentStats, error) {
	var stats AgentStats
	if err := s.client.doJSON("GET", "/api/analytics/agent/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *AnalyticsService) PackagePerformance() ([]PackagePerformance, error) {
	var rows []PackagePerformance
	if err := s.client.doJSON("GET", "/api/analytics/agent/package-performance", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *AnalyticsService) TouristStats() (*TouristStats, error) {
	var stats TouristStats
	if err := s.client.doJSON("GET", "/api/analytics/tourist/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
