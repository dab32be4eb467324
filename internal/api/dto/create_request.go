package dto

type CreateTrackRequest struct {
	TgUserID          int64    `json:"tg_user_id" validate:"required"`
	Username          string   `json:"username"`
	URL               string   `json:"url" validate:"required"`
	TargetPrice       string   `json:"target_price"`
	TargetDropPercent int      `json:"target_drop_percent" validate:"gte=0,lte=99"`
	WatchStock        bool     `json:"watch_stock"`
	WatchQty          bool     `json:"watch_qty"`
	WatchSizes        []string `json:"watch_sizes" validate:"max=20,dive,min=1"`
	Channel           string   `json:"channel" validate:"omitempty,oneof=telegram email"`
	Email             string   `json:"email" validate:"omitempty,email"`
}
