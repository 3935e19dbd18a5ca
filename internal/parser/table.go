package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const cellsPerRow = 3

// Row is one data row of the price table, cells in page order.
type Row struct {
	Name   string
	Price  string
	Change string
}

// ParseTable returns every data row of the document in order. The first
// tr of the document is the header. Rows that do not have exactly three
// td cells are dropped.
func ParseTable(content string) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0)

	doc.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if i == 0 {
			return
		}

		cells := tr.ChildrenFiltered("td")
		if cells.Length() != cellsPerRow {
			return
		}

		rows = append(rows, Row{
			Name:   cellText(cells, 0),
			Price:  cellText(cells, 1),
			Change: cellText(cells, 2),
		})
	})

	return rows, nil
}

// cellText is the trimmed text of a cell with HTML entities decoded.
func cellText(cells *goquery.Selection, i int) string {
	return strings.TrimSpace(cells.Eq(i).Text())
}
