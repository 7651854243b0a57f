package http

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/geocode"
	"github.com/cmlabs-hris/attendance-backend-go/internal/handler/http/response"
)

type GeocodeHandler interface {
	Reverse(w http.ResponseWriter, r *http.Request)
}

type geocodeHandlerImpl struct {
	geocodeService geocode.GeocodeService
}

func NewGeocodeHandler(geocodeService geocode.GeocodeService) GeocodeHandler {
	return &geocodeHandlerImpl{
		geocodeService: geocodeService,
	}
}

type geocodeFallback struct {
	PlaceName string `json:"placeName"`
	Location  string `json:"location"`
}

// Reverse handles GET /geocode?lat=&lon=
func (h *geocodeHandlerImpl) Reverse(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req, err := geocode.ParseReverseGeocodeRequest(query.Get("lat"), query.Get("lon"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	res, err := h.geocodeService.ReverseGeocode(r.Context(), req)
	if err != nil {
		if errors.Is(err, geocode.ErrUnavailable) || errors.Is(err, geocode.ErrNotConfigured) {
			name := geocode.CoordinatePlaceName(req.Latitude, req.Longitude)
			response.InternalServerErrorWithFallback(w, "Geocoding service unavailable", geocodeFallback{
				PlaceName: name,
				Location:  name,
			})
			return
		}
		response.HandleError(w, err)
		return
	}

	response.JSON(w, geocode.ToResponse(res))
}
