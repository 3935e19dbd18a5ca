package usecasees

import (
	"fuelprice/internal/repository"
	"fuelprice/models"
)

type View string

const (
	ViewAllStates View = "all_states"
	ViewCity      View = "city"
	ViewState     View = "state"
)

func (v View) ToString() string {
	return string(v)
}

func (v View) Collection() repository.Collection {
	switch v {
	case ViewCity:
		return repository.ByCities
	case ViewState:
		return repository.ByState
	default:
		return repository.AllStates
	}
}

// PageLayout describes where the city and state blocks sit in the table of
// a per-city or per-state page. Offsets count parsed data rows.
type PageLayout struct {
	CityStart  int
	CityRows   int
	StateStart int
	StateRows  int
}

// DefaultPageLayout: rows 0-9 are the city block, rows 10-19 the state block.
var DefaultPageLayout = PageLayout{
	CityStart:  0,
	CityRows:   10,
	StateStart: 10,
	StateRows:  10,
}

// Slice picks the records a view returns. City and state views take a fixed
// window and replace every label with the requested name. A short page gives
// a short (possibly empty) window.
func (l PageLayout) Slice(view View, label string, records []models.PriceRecord) []models.PriceRecord {
	switch view {
	case ViewCity:
		return relabel(window(records, l.CityStart, l.CityRows), label)
	case ViewState:
		return relabel(window(records, l.StateStart, l.StateRows), label)
	default:
		out := make([]models.PriceRecord, len(records))
		copy(out, records)
		return out
	}
}

func window(records []models.PriceRecord, start, n int) []models.PriceRecord {
	if start >= len(records) || n <= 0 {
		return nil
	}

	end := start + n
	if end > len(records) {
		end = len(records)
	}

	return records[start:end]
}

func relabel(records []models.PriceRecord, label string) []models.PriceRecord {
	out := make([]models.PriceRecord, 0, len(records))
	for _, r := range records {
		out = append(out, r.WithLabel(label))
	}

	return out
}
