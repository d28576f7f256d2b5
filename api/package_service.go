package api

import (
	"mime/multipart"
	"net/url"
	"strconv"

	"github.com/wiradarma21/travel_booking/models"
)

type PackageService struct {
	client *Client
}

func NewPackageService(client *Client) *PackageService {
	return &PackageService{client: client}
}

// PackageFilters names every supported query parameter of the package
// listing. Zero values are omitted from the request.
type PackageFilters struct {
	// DestinationID narrows the listing to one destination.
	DestinationID string
	// Search matches package names, sent as the q parameter.
	Search string
	// MinPrice / MaxPrice bound the per-person price; nil means unbounded.
	MinPrice *float64
	MaxPrice *float64
	// SortBy is one of price, duration, created_at.
	SortBy string
	// Order is asc or desc.
	Order string
}

func (f PackageFilters) query() url.Values {
	params := url.Values{}
	if f.DestinationID != "" && f.DestinationID != "all" {
		params.Set("destination", f.DestinationID)
	}
	if f.Search != "" {
		params.Set("q", f.Search)
	}
	if f.MinPrice != nil {
		params.Set("minPrice", strconv.FormatFloat(*f.MinPrice, 'f', -1, 64))
	}
	if f.MaxPrice != nil {
		params.Set("maxPrice", strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64))
	}
	if f.SortBy != "" {
		params.Set("sortBy", f.SortBy)
	}
	if f.Order != "" {
		params.Set("order", f.Order)
	}
	return params
}

type CreatePackageRequest struct {
	DestinationID string
	Name          string
	Duration      int
	Price         float64
	Itinerary     string
	MaxTravelers  int
	ContactPhone  string
	Images        []Upload
}

// UpdatePackageRequest is a JSON patch; nil fields are left untouched.
type UpdatePackageRequest struct {
	Name         *string  `json:"name,omitempty"`
	Duration     *int     `json:"duration,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Itinerary    *string  `json:"itinerary,omitempty"`
	MaxTravelers *int     `json:"maxTravelers,omitempty"`
	ContactPhone *string  `json:"contactPhone,omitempty"`
	Images       []string `json:"images,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (s *PackageService) GetAll(filters PackageFilters) ([]models.Package, error) {
	var packages []models.Package
	if err := s.client.doJSON("GET", "/api/packages"+encodeQuery(filters.query()), nil, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

func (s *PackageService) GetByID(id string) (*models.Package, error) {
	var pkg models.Package
	if err := s.client.doJSON("GET", "/api/packages/"+id, nil, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (s *PackageService) GetByAgent(agentID string) ([]models.Package, error) {
	var packages []models.Package
	if err := s.client.doJSON("GET", "/api/packages/agent/"+agentID, nil, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

// Create uploads a package as multipart form data. Every image goes into a
// repeated "images" field, which the backend expects verbatim.
func (s *PackageService) Create(req CreatePackageRequest) (*models.Package, error) {
	var pkg models.Package
	err := s.client.doMultipart("POST", "/api/packages", func(w *multipart.Writer) error {
		fields := map[string]string{
			"destinationId": req.DestinationID,
			"name":          req.Name,
			"duration":      strconv.Itoa(req.Duration),
			"price":         strconv.FormatFloat(req.Price, 'f', -1, 64),
			"itinerary":     req.Itinerary,
			"maxTravelers":  strconv.Itoa(req.MaxTravelers),
			"contactPhone":  req.ContactPhone,
		}
		for field, value := range fields {
			if err := w.WriteField(field, value); err != nil {
				return err
			}
		}
		for _, image := range req.Images {
			if err := writeFilePart(w, "images", image); err != nil {
				return err
			}
		}
		return nil
	}, &pkg)
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (s *PackageService) Update(id string, req UpdatePackageRequest) (*models.Package, error) {
	var pkg models.Package
	if err := s.client.doJSON("PUT", "/api/packages/"+id, req, &pkg); err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (s *PackageService) Delete(id string) error {
	var resp MessageResponse
	return s.client.doJSON("DELETE", "/api/packages/"+id, nil, &resp)
}
