package service

import (
	"context"

	geojson "github.com/paulmach/go.geojson"

	"github.com/mariomediam/maps-backend/internal/domain"
)

// MapFeed returns the public incidents as GeoJSON points. show_on_map is
// always forced to true whatever the caller asked for.
func (s *incidentService) MapFeed(ctx context.Context, f domain.IncidentFilter) (*geojson.FeatureCollection, error) {
	public := true
	f.ShowOnMap = &public

	incidents, err := s.List(ctx, f)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, inc := range incidents {
		fc.AddFeature(incidentFeature(inc))
	}
	return fc, nil
}

func incidentFeature(inc *domain.AnnotatedIncident) *geojson.Feature {
	lat, _ := inc.Latitude.Float64()
	lng, _ := inc.Longitude.Float64()

	// GeoJSON positions are [longitude, latitude].
	feature := geojson.NewPointFeature([]float64{lng, lat})
	feature.ID = inc.ID
	feature.SetProperty("id_incident", inc.ID)
	feature.SetProperty("category", inc.CategoryID)
	feature.SetProperty("category_name", inc.CategoryName)
	feature.SetProperty("summary", inc.Summary)
	feature.SetProperty("registration_date", inc.RegistrationDate)
	feature.SetProperty("id_state", inc.IDState)
	feature.SetProperty("description_state", inc.DescriptionState)
	feature.SetProperty("color_state", inc.ColorState)
	feature.SetProperty("photographs", len(inc.Photographs))
	return feature
}
