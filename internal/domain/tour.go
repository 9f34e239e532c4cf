package domain

import "time"

type TourType string

const (
	TourIndividual TourType = "individual"
	TourGroup      TourType = "group"
)

func ParseTourType(s string) (TourType, error) {
	switch TourType(s) {
	case TourIndividual, TourGroup:
		return TourType(s), nil
	}
	return "", ErrInvalidTourType
}

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyUZS Currency = "UZS"
)

func ValidCurrencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyEUR, CurrencyUZS}
}

func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case CurrencyUSD, CurrencyEUR, CurrencyUZS:
		return Currency(s), nil
	}
	return "", ErrInvalidCurrency
}

// StringList is stored as a JSON column. A nil list stays NULL in the
// database, which is how "field was left empty" is told apart from an
// empty list at read time.
type StringList []string

type Tour struct {
	ID string `json:"id" gorm:"primaryKey;size:36"`

	TitleRU string  `json:"title_ru" validate:"required"`
	TitleEN *string `json:"title_en"`

	ShortDescriptionRU *string `json:"short_description_ru" gorm:"type:text"`
	ShortDescriptionEN *string `json:"short_description_en" gorm:"type:text"`
	FullDescriptionRU  *string `json:"full_description_ru" gorm:"type:text"`
	FullDescriptionEN  *string `json:"full_description_en" gorm:"type:text"`

	Price    float64  `json:"price" validate:"gte=0"`
	Currency Currency `json:"currency"`
	Duration *string  `json:"duration"`
	Location *string  `json:"location"`
	TourType TourType `json:"tour_type"`

	IncludedRU StringList `json:"included_ru" gorm:"serializer:json"`
	IncludedEN StringList `json:"included_en" gorm:"serializer:json"`
	ExcludedRU StringList `json:"excluded_ru" gorm:"serializer:json"`
	ExcludedEN StringList `json:"excluded_en" gorm:"serializer:json"`

	CoverImage    *string    `json:"cover_image"`
	GalleryImages StringList `json:"gallery_images" gorm:"serializer:json"`

	IsPublished bool `json:"is_published"`
	SortOrder   int  `json:"sort_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Title resolves the display title for a language, falling back to the
// other language when the requested one is empty.
func (t *Tour) Title(lang string) string {
	if lang == "en" && t.TitleEN != nil && *t.TitleEN != "" {
		return *t.TitleEN
	}
	return t.TitleRU
}
