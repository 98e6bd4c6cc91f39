package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"TotalPrice", "totalprice"},
		{"Total_Price", "totalprice"},
		{"total price", "totalprice"},
		{" Store  Location ", "storelocation"},
		{"UNIT_PRICE", "unitprice"},
		{"", ""},
		{"___", ""},
		{"  \t ", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeKey(c.in), "NormalizeKey(%q)", c.in)
	}
}

func TestNormalizeKeyIdempotent(t *testing.T) {
	for _, s := range []string{"Total_Price", "store location", "Qty", "A B_C d"} {
		once := NormalizeKey(s)
		assert.Equal(t, once, NormalizeKey(once), "normalizing %q twice", s)
	}
}

func TestResolveExactMatch(t *testing.T) {
	cols := Resolve([]string{"Region", "total_price", "Qty"}, []string{"Region", "TotalPrice", "Quantity"})

	actual, ok := cols.Get("Region")
	require.True(t, ok)
	assert.Equal(t, "Region", actual)

	actual, ok = cols.Get("TotalPrice")
	require.True(t, ok)
	assert.Equal(t, "total_price", actual)

	// "Qty" neither contains nor is contained by "quantity".
	_, ok = cols.Get("Quantity")
	assert.False(t, ok)
}

func TestResolveExactBeatsSubstring(t *testing.T) {
	cols := Resolve([]string{"TotalPriceUSD", "Total Price"}, []string{"TotalPrice"})
	actual, ok := cols.Get("TotalPrice")
	require.True(t, ok)
	assert.Equal(t, "Total Price", actual)
}

func TestResolveSubstringScoring(t *testing.T) {
	// No exact "total" header. "totalprice" shares the full desired prefix,
	// "subtotal" shares none.
	cols := Resolve([]string{"SubTotal", "TotalPrice"}, []string{"Total"})
	actual, ok := cols.Get("Total")
	require.True(t, ok)
	assert.Equal(t, "TotalPrice", actual)
}

func TestResolveSubstringTieShorterKey(t *testing.T) {
	// Both candidates contain "price" with a zero-length shared prefix;
	// the shorter normalized key wins.
	cols := Resolve([]string{"Total Price", "UnitPrice"}, []string{"Price"})
	actual, ok := cols.Get("Price")
	require.True(t, ok)
	assert.Equal(t, "UnitPrice", actual)
}

func TestResolveOrderIndependent(t *testing.T) {
	headers := []string{"SubTotal", "UnitPrice", "Total Price", "Region"}
	want := []string{"Price", "Total", "Region"}
	base := Resolve(headers, want)

	perms := [][]string{
		{"Region", "Total Price", "UnitPrice", "SubTotal"},
		{"UnitPrice", "Region", "SubTotal", "Total Price"},
	}
	for _, p := range perms {
		assert.Equal(t, base, Resolve(p, want), "headers %v", p)
	}
}

func TestResolveDuplicateNormalizedLaterWins(t *testing.T) {
	cols := Resolve([]string{"Total Price", "total_price"}, []string{"TotalPrice"})
	actual, ok := cols.Get("TotalPrice")
	require.True(t, ok)
	assert.Equal(t, "total_price", actual)
}

func TestResolveEmptyInputs(t *testing.T) {
	assert.Empty(t, Resolve(nil, []string{"Region"}))
	assert.Empty(t, Resolve([]string{"Region"}, nil))
	assert.Empty(t, Resolve([]string{"  ", "___"}, []string{"Region"}))
}
