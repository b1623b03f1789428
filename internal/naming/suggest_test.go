package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	candidates := []string{"OrderType", "OrderLine", "Invoice", "OrderTypes", "OrderType"}

	got := Suggest("OrdrType", candidates, 2)
	assert.Equal(t, []string{"OrderType", "OrderTypes"}, got)
}

func TestSuggestNoCloseMatch(t *testing.T) {
	assert.Empty(t, Suggest("Zebra", []string{"OrderType", "Invoice"}, 0))
}

func TestSuggestSkipsExactName(t *testing.T) {
	assert.Empty(t, Suggest("Invoice", []string{"Invoice"}, 3))
}
