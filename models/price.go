package models

import "strings"

type Trend string

const (
	TrendIncrease Trend = "Increase"
	TrendDecrease Trend = "Decrease"
	TrendNoChange Trend = "No Change"
)

func (t Trend) ToString() string {
	return string(t)
}

// TrendOf classifies a raw change cell. The minus sign is checked first,
// so a value carrying both signs is a decrease.
func TrendOf(change string) Trend {
	switch true {
	case strings.Contains(change, "-"):
		return TrendDecrease
	case strings.Contains(change, "+"):
		return TrendIncrease
	default:
		return TrendNoChange
	}
}

// PriceRecord is one row of a fuel price table. Label holds a state or a
// city name depending on the view that produced the record.
type PriceRecord struct {
	BatchID    string `json:"batchId" db:"batch_id"`
	Label      string `json:"state" db:"state"`
	Price      string `json:"price" db:"price"`
	Change     string `json:"change" db:"change"`
	Trend      Trend  `json:"changeStatus" db:"change_status"`
	CapturedOn string `json:"date" db:"captured_on"`
}

func NewPriceRecord(label, price, change string) PriceRecord {
	return PriceRecord{
		Label:  label,
		Price:  price,
		Change: change,
		Trend:  TrendOf(change),
	}
}

func (r PriceRecord) WithLabel(label string) PriceRecord {
	r.Label = label
	return r
}

func (r PriceRecord) Stamped(batchID, capturedOn string) PriceRecord {
	r.BatchID = batchID
	r.CapturedOn = capturedOn
	return r
}
