package geocode

import (
	"context"
	"fmt"
	"os"
	"sync"

	"googlemaps.github.io/maps"
)

// mapsClient is a singleton maps client instance.
var (
	mapsClient *maps.Client
	clientOnce sync.Once
	clientErr  error
)

// InitMapsClient initializes and returns a singleton Google Maps client.
// A missing credential is an error for the caller to surface, not a crash.
func InitMapsClient() (*maps.Client, error) {
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			clientErr = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, clientErr = maps.NewClient(maps.WithAPIKey(apiKey))
	})
	return mapsClient, clientErr
}

// ReverseGeocode resolves a lat/lon point to place descriptions, used to
// label zone centers for operators.
func ReverseGeocode(ctx context.Context, lat, lon float64) ([]maps.GeocodingResult, error) {
	client, err := InitMapsClient()
	if err != nil {
		return nil, err
	}

	req := &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lon},
	}

	results, err := client.ReverseGeocode(ctx, req)
	if err != nil {
		return nil, err
	}

	return results, nil
}
