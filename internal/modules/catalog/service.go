package catalog

import (
	"context"
	"strings"

	"jamtrips/internal/domain"
	"jamtrips/internal/modules/realtime"
	"jamtrips/internal/pkg/validator"
)

type Service struct {
	tours  TourRepository
	notifs ChangeNotifier
}

func NewService(tours TourRepository, notifs ChangeNotifier) *Service {
	return &Service{
		tours:  tours,
		notifs: notifs,
	}
}

/* ---------- PUBLIC READS ---------- */

func (s *Service) ListPublished(ctx context.Context) ([]TourCard, error) {
	tours, err := s.tours.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	cards := make([]TourCard, 0, len(tours))
	for _, t := range tours {
		cards = append(cards, toTourCard(t))
	}
	return cards, nil
}

// GetPublished returns nil when the tour does not exist or is not
// published. Callers render that as not-found, never as an error.
func (s *Service) GetPublished(ctx context.Context, id string) (*domain.Tour, error) {
	return s.tours.GetPublishedByID(ctx, id)
}

/* ---------- ADMIN ---------- */

func (s *Service) ListAll(ctx context.Context) ([]domain.Tour, error) {
	return s.tours.ListAll(ctx)
}

func (s *Service) Create(ctx context.Context, req TourPayload) (*domain.Tour, error) {
	tour := &domain.Tour{}
	if err := applyPayload(tour, req); err != nil {
		return nil, err
	}

	if err := s.tours.Create(ctx, tour); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.Broadcast(realtime.TourEvent(realtime.ActionCreated, tour.ID))
	}

	return tour, nil
}

// Update overwrites every field from the payload, image arrays included.
// The edit form recomputes the whole record on each save, so partial
// patch semantics are deliberately absent.
func (s *Service) Update(ctx context.Context, id string, req TourPayload) (*domain.Tour, error) {
	tour, err := s.tours.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := applyPayload(tour, req); err != nil {
		return nil, err
	}

	if err := s.tours.Update(ctx, tour); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.Broadcast(realtime.TourEvent(realtime.ActionUpdated, tour.ID))
	}

	return tour, nil
}

func (s *Service) SetPublished(ctx context.Context, id string, value bool) error {
	if err := s.tours.SetPublished(ctx, id, value); err != nil {
		return err
	}

	if s.notifs != nil {
		s.notifs.Broadcast(realtime.TourEvent(realtime.ActionUpdated, id))
	}
	return nil
}

// Delete removes the tour permanently. Intent confirmation is the
// caller's responsibility.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.tours.Delete(ctx, id); err != nil {
		return err
	}

	if s.notifs != nil {
		s.notifs.Broadcast(realtime.TourEvent(realtime.ActionDeleted, id))
	}
	return nil
}

/* ---------- NORMALIZATION ---------- */

// applyPayload maps the form payload onto the entity. Empty optional
// text fields become NULL, not empty strings, so language fallback at
// the presentation side stays clean. Empty item lists become NULL too;
// the gallery stays a (possibly empty) array, as the form always sends
// the reconstructed set of URLs.
func applyPayload(tour *domain.Tour, req TourPayload) error {
	currency := domain.CurrencyUSD
	if req.Currency != "" {
		c, err := domain.ParseCurrency(req.Currency)
		if err != nil {
			return err
		}
		currency = c
	}

	tourType := domain.TourIndividual
	if req.TourType != "" {
		tt, err := domain.ParseTourType(req.TourType)
		if err != nil {
			return err
		}
		tourType = tt
	}

	tour.TitleRU = strings.TrimSpace(req.TitleRU)
	tour.TitleEN = optional(req.TitleEN)
	tour.ShortDescriptionRU = optional(req.ShortDescriptionRU)
	tour.ShortDescriptionEN = optional(req.ShortDescriptionEN)
	tour.FullDescriptionRU = optional(req.FullDescriptionRU)
	tour.FullDescriptionEN = optional(req.FullDescriptionEN)
	tour.Price = req.Price
	tour.Currency = currency
	tour.Duration = optional(req.Duration)
	tour.Location = optional(req.Location)
	tour.TourType = tourType
	tour.IncludedRU = optionalList(req.IncludedRU)
	tour.IncludedEN = optionalList(req.IncludedEN)
	tour.ExcludedRU = optionalList(req.ExcludedRU)
	tour.ExcludedEN = optionalList(req.ExcludedEN)
	tour.CoverImage = optional(req.CoverImage)
	tour.GalleryImages = galleryList(req.GalleryImages)
	tour.IsPublished = req.IsPublished
	tour.SortOrder = req.SortOrder

	if errs := validator.Validate(tour); errs != nil {
		return ErrValidation
	}

	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optionalList(items []string) domain.StringList {
	out := make(domain.StringList, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func galleryList(urls []string) domain.StringList {
	out := make(domain.StringList, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}
