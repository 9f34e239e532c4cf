package catalog

import "jamtrips/internal/domain"

// TourPayload is the full-record body of both create and update. The
// admin form resends every field on save, image arrays included, so the
// same shape serves both operations.
type TourPayload struct {
	TitleRU string `json:"title_ru" binding:"required"`
	TitleEN string `json:"title_en"`

	ShortDescriptionRU string `json:"short_description_ru"`
	ShortDescriptionEN string `json:"short_description_en"`
	FullDescriptionRU  string `json:"full_description_ru"`
	FullDescriptionEN  string `json:"full_description_en"`

	Price    float64 `json:"price" binding:"gte=0"`
	Currency string  `json:"currency"`
	Duration string  `json:"duration"`
	Location string  `json:"location"`
	TourType string  `json:"tour_type"`

	IncludedRU []string `json:"included_ru"`
	IncludedEN []string `json:"included_en"`
	ExcludedRU []string `json:"excluded_ru"`
	ExcludedEN []string `json:"excluded_en"`

	CoverImage    string   `json:"cover_image"`
	GalleryImages []string `json:"gallery_images"`

	IsPublished bool `json:"is_published"`
	SortOrder   int  `json:"sort_order"`
}

type SetPublishedRequest struct {
	IsPublished *bool `json:"is_published" binding:"required"`
}

// TourCard is the public listing projection: the fields the tour card
// renders, nothing more.
type TourCard struct {
	ID                 string          `json:"id"`
	TitleRU            string          `json:"title_ru"`
	TitleEN            *string         `json:"title_en"`
	ShortDescriptionRU *string         `json:"short_description_ru"`
	ShortDescriptionEN *string         `json:"short_description_en"`
	Price              float64         `json:"price"`
	Currency           domain.Currency `json:"currency"`
	Duration           *string         `json:"duration"`
	Location           *string         `json:"location"`
	TourType           domain.TourType `json:"tour_type"`
	CoverImage         *string         `json:"cover_image"`
}

func toTourCard(t domain.Tour) TourCard {
	return TourCard{
		ID:                 t.ID,
		TitleRU:            t.TitleRU,
		TitleEN:            t.TitleEN,
		ShortDescriptionRU: t.ShortDescriptionRU,
		ShortDescriptionEN: t.ShortDescriptionEN,
		Price:              t.Price,
		Currency:           t.Currency,
		Duration:           t.Duration,
		Location:           t.Location,
		TourType:           t.TourType,
		CoverImage:         t.CoverImage,
	}
}
