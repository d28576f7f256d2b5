package api

import (
	"fmt"
	"mime/multipart"
	"net/url"

	"github.com/wiradarma21/travel_booking/models"
)

type DestinationService struct {
	client *Client
}

func NewDestinationService(client *Client) *DestinationService {
	return &DestinationService{client: client}
}

type DestinationFilters struct {
	// Search matches destination name/country, sent as the q parameter.
	Search string
}

type CreateDestinationRequest struct {
	Name        string
	Country     string
	Description string
	Photo       Upload
}

func (s *DestinationService) GetAll(filters DestinationFilters) ([]models.Destination, error) {
	params := url.Values{}
	if filters.Search != "" {
		params.Set("q", filters.Search)
	}

	var destinations []models.Destination
	if err := s.client.doJSON("GET", "/api/destinations"+encodeQuery(params), nil, &destinations); err != nil {
		return nil, err
	}
	return destinations, nil
}

func (s *DestinationService) GetByID(id string) (*models.Destination, error) {
	var destination models.Destination
	if err := s.client.doJSON("GET", "/api/destinations/"+id, nil, &destination); err != nil {
		return nil, err
	}
	return &destination, nil
}

// Create uploads a new destination; the photo travels in multipart field
// "photo", which the backend expects verbatim.
func (s *DestinationService) Create(req CreateDestinationRequest) (*models.Destination, error) {
	var destination models.Destination
	err := s.client.doMultipart("POST", "/api/destinations", func(w *multipart.Writer) error {
		if err := w.WriteField("name", req.Name); err != nil {
			return err
		}
		if err := w.WriteField("country", req.Country); err != nil {
			return err
		}
		if err := w.WriteField("description", req.Description); err != nil {
			return err
		}
		return writeFilePart(w, "photo", req.Photo)
	}, &destination)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination: %v", err)
	}
	return &destination, nil
}
