package parser_test

import (
	"fmt"
	"fuelprice/internal/parser"
	"fuelprice/models"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable(t *testing.T) {
	page := `<html><body>
<table>
  <tr><th>State</th><th>Price</th><th>Change</th></tr>
  <tr><td> Andhra Pradesh </td><td>₹ 97.60</td><td> -0.05 </td></tr>
  <tr><td>Assam</td><td>₹ 89.38</td></tr>
  <tr><td>Bihar</td><td>₹ 94.04</td><td>+0.42</td></tr>
  <tr><td>Chandigarh</td><td>₹ 82.45</td><td>0.00</td><td>extra</td></tr>
  <tr><th>Delhi</th><td>₹ 87.62</td><td>0.00</td></tr>
  <tr>
    <td>
      Goa
    </td>
    <td>₹ 87.91</td>
    <td>0.00</td>
  </tr>
</table>
</body></html>`

	rows, err := parser.ParseTable(page)
	require.NoError(t, err)

	want := []parser.Row{
		{Name: "Andhra Pradesh", Price: "₹ 97.60", Change: "-0.05"},
		{Name: "Bihar", Price: "₹ 94.04", Change: "+0.42"},
		{Name: "Goa", Price: "₹ 87.91", Change: "0.00"},
	}

	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("ParseTable() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTable_HeaderAndMalformedCounts(t *testing.T) {
	const good, bad = 7, 4

	var b strings.Builder
	b.WriteString("<table><tr><th>Name</th><th>Price</th><th>Change</th></tr>")
	for i := 0; i < good; i++ {
		fmt.Fprintf(&b, "<tr><td>row-%d</td><td>%d.00</td><td>+0.1</td></tr>", i, i)
		if i < bad {
			fmt.Fprintf(&b, "<tr><td>broken-%d</td><td>%d.00</td></tr>", i, i)
		}
	}
	b.WriteString("</table>")

	rows, err := parser.ParseTable(b.String())
	require.NoError(t, err)
	require.Len(t, rows, good)

	for i, row := range rows {
		assert.Equal(t, fmt.Sprintf("row-%d", i), row.Name)
	}
}

func TestParseTable_OnlyFirstRowOfDocumentIsHeader(t *testing.T) {
	page := `<table>
<tr><td>header</td><td>x</td><td>y</td></tr>
<tr><td>Pune</td><td>90.10</td><td>+0.2</td></tr>
</table>
<table>
<tr><td>Mumbai</td><td>92.15</td><td>-0.1</td></tr>
</table>`

	rows, err := parser.ParseTable(page)
	require.NoError(t, err)

	assert.Equal(t, []parser.Row{
		{Name: "Pune", Price: "90.10", Change: "+0.2"},
		{Name: "Mumbai", Price: "92.15", Change: "-0.1"},
	}, rows)
}

func TestParseTable_NoRows(t *testing.T) {
	for _, page := range []string{
		"",
		"<html><body><p>Page not found</p></body></html>",
		"<table><tr><th>State</th><th>Price</th><th>Change</th></tr></table>",
	} {
		rows, err := parser.ParseTable(page)
		assert.NoError(t, err)
		assert.Empty(t, rows)
		assert.NotNil(t, rows)
	}
}

func TestParseTable_EntitiesAreDecoded(t *testing.T) {
	page := `<table>
<tr><th>State</th><th>Price</th><th>Change</th></tr>
<tr><td>Jammu &amp; Kashmir</td><td>&#8377; 84.25</td><td>&#43;0.30</td></tr>
<tr><td>Kerala</td><td>&#8377; 95.66</td><td>&#45;0.12</td></tr>
<tr><td>Ladakh</td><td>&#8377; 89.70</td><td>&minus;0.08</td></tr>
</table>`

	rows, err := parser.ParseTable(page)
	require.NoError(t, err)

	want := []parser.Row{
		{Name: "Jammu & Kashmir", Price: "₹ 84.25", Change: "+0.30"},
		{Name: "Kerala", Price: "₹ 95.66", Change: "-0.12"},
		{Name: "Ladakh", Price: "₹ 89.70", Change: "\u22120.08"},
	}

	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("ParseTable() mismatch (-want +got):\n%s", diff)
	}

	// only the ASCII signs drive the trend
	assert.Equal(t, models.TrendIncrease, models.TrendOf(rows[0].Change))
	assert.Equal(t, models.TrendDecrease, models.TrendOf(rows[1].Change))
	assert.Equal(t, models.TrendNoChange, models.TrendOf(rows[2].Change))
}
