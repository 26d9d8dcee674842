package models

// WSMessage 推送给店面页面的统一信封
type WSMessage struct {
	Type string      `json:"type"` // TIMER_TICK / TIMER_EXPIRED
	Data interface{} `json:"data"`
}

// TimerTickData 每秒一条；Expired 置位后这条就是终态
type TimerTickData struct {
	SessionID string `json:"session_id"`
	Display   string `json:"display"` // "MM:SS" 或 "Expired"
	Expired   bool   `json:"expired"`

	// 终态那一拍附带整块替换文案，页面直接覆盖催促框内容
	ReplaceHTML string `json:"replace_html,omitempty"`
}
