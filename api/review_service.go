package api

import "github.com/wiradarma21/travel_booking/models"

type ReviewService struct {
	client *Client
}

func NewReviewService(client *Client) *ReviewService {
	return &ReviewService{client: client}
}

type CreateReviewRequest struct {
	PackageID string `json:"packageId"`
	BookingID string `json:"bookingId,omitempty"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (s *ReviewService) GetByPackage(packageID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.client.doJSON("GET", "/api/reviews/package/"+packageID, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewService) GetByTourist(touristID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.client.doJSON("GET", "/api/reviews/tourist/"+touristID, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewService) Create(req CreateReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := s.client.doJSON("POST", "/api/reviews", req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
