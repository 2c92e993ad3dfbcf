package dashboard

import (
	"context"
	"sort"

	"github.com/ukydev/car-sales-analytics/internal/models"
)

// CarDetail is the fully joined view of one car for the history panels.
// Histories are ordered newest first.
type CarDetail struct {
	Car        models.Car             `json:"car"`
	DealerName string                 `json:"dealer_name"`
	Services   []models.ServiceEvent  `json:"services"`
	Accidents  []models.AccidentEvent `json:"accidents"`
}

// CarDetail fetches one car and assembles its detail panels. An id that no
// longer matches any document (filtered out, deleted, malformed) satisfies
// IsNotFound; the page shows an inline message and leaves other panels alone.
func (s *Service) CarDetail(ctx context.Context, id string) (*CarDetail, error) {
	car, err := s.cars.FindCarByID(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return nil, err
		}
		return nil, &QueryError{Op: "car detail", Err: err}
	}

	// A missing dealer document is display-level only, never an error.
	dealerName := "Unknown"
	if dealer, err := s.dealers.FindDealerByID(ctx, car.DealerID); err == nil {
		dealerName = dealer.Name
	}

	services := append([]models.ServiceEvent(nil), car.Services...)
	sort.Slice(services, func(i, j int) bool { return services[i].Date.After(services[j].Date) })

	accidents := append([]models.AccidentEvent(nil), car.Accidents...)
	sort.Slice(accidents, func(i, j int) bool { return accidents[i].Date.After(accidents[j].Date) })

	return &CarDetail{
		Car:        *car,
		DealerName: dealerName,
		Services:   services,
		Accidents:  accidents,
	}, nil
}
