// Package monitor holds the pure pieces of the tracking loop: due-track
// selection, change detection against the previous state and alert hashing.
// Everything here is side-effect free so it can be tested without wiring.
package monitor

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mkarpekin/wbwatch/internal/model"
)

var oneHundred = decimal.NewFromInt(100)

// DropPercent is the truncated percentage drop from old to new. Zero when
// either price is unknown or the price did not go down.
func DropPercent(old, new decimal.NullDecimal) int {
	if !old.Valid || !new.Valid {
		return 0
	}
	if old.Decimal.Sign() <= 0 || !new.Decimal.LessThan(old.Decimal) {
		return 0
	}
	return int(old.Decimal.Sub(new.Decimal).Div(old.Decimal).Mul(oneHundred).IntPart())
}

func formatPrice(d decimal.Decimal) string {
	return d.String() + " ₽"
}

// PausedMessage is the one-time alert sent when a track is deactivated after
// too many consecutive failed checks.
func PausedMessage(track *model.Track, failures int) string {
	return fmt.Sprintf(
		"⏸ Отслеживание приостановлено: %d ошибок подряд при проверке товара.\n%s\n%s",
		failures, track.Title, track.URL,
	)
}

// Detect compares a fresh snapshot against the track's last known state and
// returns the user-visible events, rendered and ready for dedup. The order
// is fixed: price target, price drop, stock, quantity, sizes.
func Detect(track *model.Track, snap *model.Snapshot) []model.Event {
	var events []model.Event

	if track.TargetPrice.Valid && snap.Price.Valid &&
		snap.Price.Decimal.LessThanOrEqual(track.TargetPrice.Decimal) {
		events = append(events, model.Event{
			Kind: model.EventPriceTarget,
			Text: fmt.Sprintf(
				"🎯 Цена достигла цели!\n%s\nТекущая цена: %s (цель: %s)\n%s",
				track.Title, formatPrice(snap.Price.Decimal), formatPrice(track.TargetPrice.Decimal), track.URL,
			),
		})
	}

	if track.TargetDropPercent > 0 {
		if drop := DropPercent(track.LastPrice, snap.Price); drop >= track.TargetDropPercent {
			events = append(events, model.Event{
				Kind: model.EventPriceDrop,
				Text: fmt.Sprintf(
					"📉 Цена упала на %d%%!\n%s\nБыло: %s, стало: %s\n%s",
					drop, track.Title, formatPrice(track.LastPrice.Decimal), formatPrice(snap.Price.Decimal), track.URL,
				),
			})
		}
	}

	// Restock fires only on a known false-to-true transition. An unknown
	// previous state (first check) stays silent.
	if track.WatchStock && track.LastInStock != nil && !*track.LastInStock && snap.InStock {
		events = append(events, model.Event{
			Kind: model.EventInStock,
			Text: fmt.Sprintf("✅ Товар снова в наличии!\n%s\n%s", track.Title, track.URL),
		})
	}

	if track.UserPlan == model.PlanPro && track.WatchQty &&
		track.LastQty != nil && snap.TotalQty != nil && *snap.TotalQty != *track.LastQty {
		arrow := "⬇️"
		if *snap.TotalQty > *track.LastQty {
			arrow = "⬆️"
		}
		events = append(events, model.Event{
			Kind: model.EventQtyChanged,
			Text: fmt.Sprintf(
				"%s Остаток изменился: %d → %d шт.\n%s\n%s",
				arrow, *track.LastQty, *snap.TotalQty, track.Title, track.URL,
			),
		})
	}

	if len(track.WatchSizes) > 0 {
		appeared, gone := sizeChanges(track.WatchSizes, track.LastSizes, snap.Sizes)
		if len(appeared) > 0 {
			events = append(events, model.Event{
				Kind: model.EventSizesAppear,
				Text: fmt.Sprintf(
					"📏 Появились размеры: %s\n%s\n%s",
					strings.Join(appeared, ", "), track.Title, track.URL,
				),
			})
		}
		if len(gone) > 0 {
			events = append(events, model.Event{
				Kind: model.EventSizesGone,
				Text: fmt.Sprintf(
					"📏 Закончились размеры: %s\n%s\n%s",
					strings.Join(gone, ", "), track.Title, track.URL,
				),
			})
		}
	}

	return events
}

// sizeChanges intersects the watched sizes with the symmetric difference of
// the previous and current size lists. Order follows the watch list.
func sizeChanges(watched, prev, current []string) (appeared, gone []string) {
	prevSet := make(map[string]struct{}, len(prev))
	for _, s := range prev {
		prevSet[s] = struct{}{}
	}
	currentSet := make(map[string]struct{}, len(current))
	for _, s := range current {
		currentSet[s] = struct{}{}
	}

	for _, s := range watched {
		_, wasThere := prevSet[s]
		_, isThere := currentSet[s]
		switch {
		case isThere && !wasThere:
			appeared = append(appeared, s)
		case wasThere && !isThere:
			gone = append(gone, s)
		}
	}
	return appeared, gone
}
