package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/SANTHOSHG-WEB/disaster/internal/domain"
)

// ShelterService manages the emergency shelter directory and
// proximity lookups.
type ShelterService struct {
	shelters domain.ShelterRepository
}

// NewShelterService creates a new ShelterService.
func NewShelterService(shelters domain.ShelterRepository) *ShelterService {
	return &ShelterService{shelters: shelters}
}

// List returns every shelter in the directory.
func (s *ShelterService) List(ctx context.Context) ([]domain.Shelter, error) {
	return s.shelters.List(ctx)
}

// Get returns a single shelter by ID.
func (s *ShelterService) Get(ctx context.Context, id int64) (*domain.Shelter, error) {
	return s.shelters.GetByID(ctx, id)
}

// ShelterDistance pairs a shelter with its distance from a query
// point in kilometers.
type ShelterDistance struct {
	Shelter    domain.Shelter
	DistanceKm float64
}

// Nearest returns up to limit shelters ordered by distance from the
// given coordinates.
func (s *ShelterService) Nearest(ctx context.Context, lat, lng float64, limit int) ([]ShelterDistance, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("%w: coordinates out of range", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = 5
	}

	all, err := s.shelters.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shelters: %w", err)
	}

	out := make([]ShelterDistance, 0, len(all))
	for _, sh := range all {
		out = append(out, ShelterDistance{
			Shelter:    sh,
			DistanceKm: haversineKm(lat, lng, sh.Lat, sh.Lng),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// SeedPredefined inserts the built-in shelter directory if the table
// is empty. Safe to call on every startup.
func (s *ShelterService) SeedPredefined(ctx context.Context) error {
	count, err := s.shelters.Count(ctx)
	if err != nil {
		return fmt.Errorf("count shelters: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, sh := range predefinedShelters {
		sh := sh
		if err := s.shelters.Create(ctx, &sh); err != nil {
			return fmt.Errorf("seed shelter %q: %w", sh.Name, err)
		}
	}
	return nil
}

// haversineKm returns the great-circle distance between two points
// in kilometers.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0

	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

var predefinedShelters = []domain.Shelter{
	{Name: "Chennai Corporation Community Hall", Address: "Anna Salai, Teynampet", District: "Chennai", Lat: 13.0418, Lng: 80.2341, Capacity: 500, Phone: "044-25384520"},
	{Name: "Government Higher Secondary School Saidapet", Address: "Saidapet West", District: "Chennai", Lat: 13.0213, Lng: 80.2231, Capacity: 350, Phone: "044-24420981"},
	{Name: "Cuddalore Cyclone Shelter", Address: "Silver Beach Road", District: "Cuddalore", Lat: 11.7447, Lng: 79.7680, Capacity: 800, Phone: "04142-230155"},
	{Name: "Nagapattinam Multi-Purpose Shelter", Address: "Velankanni Main Road", District: "Nagapattinam", Lat: 10.7657, Lng: 79.8424, Capacity: 600, Phone: "04365-242355"},
	{Name: "Coimbatore District Sports Complex", Address: "Nehru Stadium, Trichy Road", District: "Coimbatore", Lat: 11.0055, Lng: 76.9674, Capacity: 900, Phone: "0422-2301976"},
	{Name: "Madurai Corporation Shelter", Address: "Tallakulam", District: "Madurai", Lat: 9.9397, Lng: 78.1308, Capacity: 450, Phone: "0452-2530858"},
	{Name: "Kanyakumari Coastal Relief Centre", Address: "Beach Road, Nagercoil", District: "Kanyakumari", Lat: 8.1780, Lng: 77.4280, Capacity: 400, Phone: "04652-279433"},
	{Name: "Thanjavur Community Shelter", Address: "Medical College Road", District: "Thanjavur", Lat: 10.7640, Lng: 79.1390, Capacity: 300, Phone: "04362-240358"},
}
