package handlers

import (
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"

	"github.com/wiradarma21/travel_booking/api"
	"github.com/wiradarma21/travel_booking/forms"
	"github.com/wiradarma21/travel_booking/notifications"
	"github.com/wiradarma21/travel_booking/store"
)

type CatalogHandler struct {
	catalog *store.CatalogStore
	reviews *store.ReviewStore
	toasts  *notifications.Feed
	tmpDir  string
}

func NewCatalogHandler(catalog *store.CatalogStore, reviews *store.ReviewStore, toasts *notifications.Feed, tmpDir string) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, reviews: reviews, toasts: toasts, tmpDir: tmpDir}
}

func (h *CatalogHandler) ListDestinations(c *fiber.Ctx) error {
	filters := api.DestinationFilters{Search: c.Query("q")}
	if err := h.catalog.FetchDestinations(filters); err != nil {
		h.toasts.Error("Could not refresh destinations")
	}
	return c.JSON(h.catalog.Destinations())
}

func (h *CatalogHandler) GetDestination(c *fiber.Ctx) error {
	destination, ok := h.catalog.DestinationByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Destination not found"})
	}
	return c.JSON(destination)
}

func (h *CatalogHandler) CreateDestination(c *fiber.Ctx) error {
	form := forms.DestinationForm{
		Name:        c.FormValue("name"),
		Country:     c.FormValue("country"),
		Description: c.FormValue("description"),
	}
	if err := forms.Validate(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "form": form})
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Destination photo is required", "form": form})
	}
	photo, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot read photo file", "form": form})
	}
	defer photo.Close()

	mtype, err := mimetype.DetectReader(photo)
	if err != nil || !strings.HasPrefix(mtype.String(), "image/") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Destination photo must be an image", "form": form})
	}
	if _, err := photo.Seek(0, 0); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Cannot rewind photo file"})
	}

	destination, err := h.catalog.CreateDestination(api.CreateDestinationRequest{
		Name:        form.Name,
		Country:     form.Country,
		Description: form.Description,
		Photo:       api.Upload{Filename: fileHeader.Filename, Reader: photo},
	})
	if err != nil {
		h.toasts.Error("Destination creation failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error(), "form": form})
	}
	return c.Status(fiber.StatusCreated).JSON(destination)
}

func (h *CatalogHandler) ListPackages(c *fiber.Ctx) error {
	filters := api.PackageFilters{
		DestinationID: c.Query("destination"),
		Search:        c.Query("q"),
		SortBy:        c.Query("sortBy"),
		Order:         c.Query("order"),
	}
	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MaxPrice = &v
		}
	}

	if err := h.catalog.FetchPackages(filters); err != nil {
		h.toasts.Error("Could not refresh packages")
	}
	return c.JSON(h.catalog.Packages())
}

func (h *CatalogHandler) GetPackage(c *fiber.Ctx) error {
	pkg, ok := h.catalog.PackageByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Package not found"})
	}
	rating := h.reviews.PackageRating(pkg.ID)
	return c.JSON(fiber.Map{"package": pkg, "rating": rating})
}

func (h *CatalogHandler) ListPackagesByAgent(c *fiber.Ctx) error {
	if err := h.catalog.FetchPackagesByAgent(c.Params("agentId")); err != nil {
		h.toasts.Error("Could not refresh packages")
	}
	return c.JSON(h.catalog.Packages())
}

// CreatePackage stages 1-10 images through the picker (content-sniffed, non
// images rejected) and submits the multipart create.
func (h *CatalogHandler) CreatePackage(c *fiber.Ctx) error {
	form := forms.PackageForm{
		Name:          c.FormValue("name"),
		DestinationID: c.FormValue("destinationId"),
		Itinerary:     c.FormValue("itinerary"),
		ContactPhone:  c.FormValue("contactPhone"),
	}
	form.Duration, _ = strconv.Atoi(c.FormValue("duration"))
	form.MaxTravelers, _ = strconv.Atoi(c.FormValue("maxTravelers"))
	form.Price, _ = strconv.ParseFloat(c.FormValue("price"), 64)

	if err := forms.Validate(form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "form": form})
	}

	multipartForm, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse multipart form", "form": form})
	}
	headers := multipartForm.File["images"]
	if len(headers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "At least one package image is required", "form": form})
	}

	picker := forms.NewImagePicker(h.tmpDir)
	defer picker.Close()

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot read image " + header.Filename, "form": form})
		}
		err = picker.Add(header.Filename, file)
		file.Close()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error(), "form": form})
		}
	}

	uploads, err := picker.Uploads()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	pkg, err := h.catalog.CreatePackage(api.CreatePackageRequest{
		DestinationID: form.DestinationID,
		Name:          form.Name,
		Duration:      form.Duration,
		Price:         form.Price,
		Itinerary:     form.Itinerary,
		MaxTravelers:  form.MaxTravelers,
		ContactPhone:  form.ContactPhone,
		Images:        uploads,
	})
	if err != nil {
		h.toasts.Error("Package creation failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error(), "form": form})
	}
	return c.Status(fiber.StatusCreated).JSON(pkg)
}

func (h *CatalogHandler) UpdatePackage(c *fiber.Ctx) error {
	id := c.Params("id")

	var req api.UpdatePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.catalog.UpdatePackage(id, req); err != nil {
		h.toasts.Error("Package update failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	pkg, _ := h.catalog.PackageByID(id)
	return c.JSON(pkg)
}

func (h *CatalogHandler) DeletePackage(c *fiber.Ctx) error {
	if err := h.catalog.DeletePackage(c.Params("id")); err != nil {
		h.toasts.Error("Package deletion failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Package deleted"})
}
