package monitor

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarpekin/wbwatch/internal/model"
)

func price(v string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(v), Valid: true}
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestDropPercent(t *testing.T) {
	tests := []struct {
		name string
		old  decimal.NullDecimal
		new  decimal.NullDecimal
		want int
	}{
		{"truncates fraction", price("2000"), price("1750"), 12},
		{"exact percent", price("1000"), price("900"), 10},
		{"price went up", price("1000"), price("1100"), 0},
		{"price unchanged", price("1000"), price("1000"), 0},
		{"old unknown", decimal.NullDecimal{}, price("900"), 0},
		{"new unknown", price("1000"), decimal.NullDecimal{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DropPercent(tt.old, tt.new))
		})
	}
}

func TestDetect_PriceTarget(t *testing.T) {
	track := &model.Track{
		Title:       "Кроссовки",
		URL:         "https://www.wildberries.ru/catalog/123456/detail.aspx",
		TargetPrice: price("1800"),
		LastPrice:   price("2000"),
	}

	events := Detect(track, &model.Snapshot{Price: price("1750")})
	require.Len(t, events, 1)
	assert.Equal(t, model.EventPriceTarget, events[0].Kind)
	assert.Contains(t, events[0].Text, "1750 ₽")
	assert.Contains(t, events[0].Text, track.URL)

	// Equal to the target still counts as reached.
	events = Detect(track, &model.Snapshot{Price: price("1800")})
	require.Len(t, events, 1)
	assert.Equal(t, model.EventPriceTarget, events[0].Kind)

	assert.Empty(t, Detect(track, &model.Snapshot{Price: price("1801")}))
}

func TestDetect_PriceDrop(t *testing.T) {
	track := &model.Track{
		TargetDropPercent: 10,
		LastPrice:         price("2000"),
	}

	events := Detect(track, &model.Snapshot{Price: price("1750")})
	require.Len(t, events, 1)
	assert.Equal(t, model.EventPriceDrop, events[0].Kind)
	assert.Contains(t, events[0].Text, "12%")

	// 5% drop is below the 10% threshold.
	assert.Empty(t, Detect(track, &model.Snapshot{Price: price("1900")}))

	// Disabled threshold never fires.
	track.TargetDropPercent = 0
	assert.Empty(t, Detect(track, &model.Snapshot{Price: price("1000")}))
}

func TestDetect_InStock(t *testing.T) {
	track := &model.Track{WatchStock: true, LastInStock: boolPtr(false)}

	events := Detect(track, &model.Snapshot{InStock: true})
	require.Len(t, events, 1)
	assert.Equal(t, model.EventInStock, events[0].Kind)

	// Unknown previous state stays silent.
	track.LastInStock = nil
	assert.Empty(t, Detect(track, &model.Snapshot{InStock: true}))

	track.LastInStock = boolPtr(true)
	assert.Empty(t, Detect(track, &model.Snapshot{InStock: true}))
}

func TestDetect_QtyChanged(t *testing.T) {
	track := &model.Track{
		UserPlan: model.PlanPro,
		WatchQty: true,
		LastQty:  intPtr(12),
	}

	events := Detect(track, &model.Snapshot{TotalQty: intPtr(7)})
	require.Len(t, events, 1)
	assert.Equal(t, model.EventQtyChanged, events[0].Kind)
	assert.Contains(t, events[0].Text, "⬇️")
	assert.Contains(t, events[0].Text, "12 → 7")

	events = Detect(track, &model.Snapshot{TotalQty: intPtr(30)})
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Text, "⬆️")

	// Quantity watching is pro-only.
	track.UserPlan = model.PlanFree
	assert.Empty(t, Detect(track, &model.Snapshot{TotalQty: intPtr(7)}))
}

func TestDetect_Sizes(t *testing.T) {
	track := &model.Track{
		WatchSizes: []string{"M", "L"},
		LastSizes:  []string{"M"},
	}

	// XL appears too but is not watched.
	events := Detect(track, &model.Snapshot{Sizes: []string{"M", "L", "XL"}})
	require.Len(t, events, 1)
	assert.Equal(t, model.EventSizesAppear, events[0].Kind)
	assert.Contains(t, events[0].Text, "L")
	assert.NotContains(t, events[0].Text, "XL")

	track.LastSizes = []string{"M", "L"}
	events = Detect(track, &model.Snapshot{Sizes: []string{"S"}})
	require.Len(t, events, 1)
	assert.Equal(t, model.EventSizesGone, events[0].Kind)
	assert.Contains(t, events[0].Text, "M, L")
}

func TestDetect_MultipleEvents(t *testing.T) {
	track := &model.Track{
		TargetPrice:       price("1800"),
		TargetDropPercent: 10,
		WatchStock:        true,
		LastPrice:         price("2000"),
		LastInStock:       boolPtr(false),
	}

	events := Detect(track, &model.Snapshot{Price: price("1750"), InStock: true})
	require.Len(t, events, 3)
	assert.Equal(t, model.EventPriceTarget, events[0].Kind)
	assert.Equal(t, model.EventPriceDrop, events[1].Kind)
	assert.Equal(t, model.EventInStock, events[2].Kind)
}
