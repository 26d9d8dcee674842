package logic

import "fmt"

// ExpiredDisplay 终态文案
const ExpiredDisplay = "Expired"

// Countdown 倒计时状态机：counting -> expired，单向且终态。
// 只管状态推进，真正的每秒节拍在 services 里
type Countdown struct {
	remaining int // 还能展示的剩余秒数
	expired   bool
}

// NewCountdown 按分钟建倒计时；非正数回落到默认 15 分钟
func NewCountdown(minutes int) *Countdown {
	if minutes <= 0 {
		minutes = 15
	}
	return &Countdown{remaining: minutes * 60}
}

// Tick 推进一拍并返回本拍展示文案。
// 先展示当前剩余，再减一；减到负数的那一拍直接盖成 Expired，
// 之后每拍都是 Expired，不会复位也不会倒流
func (c *Countdown) Tick() string {
	if c.expired {
		return ExpiredDisplay
	}
	display := FormatClock(c.remaining)
	c.remaining--
	if c.remaining < 0 {
		c.expired = true
		return ExpiredDisplay
	}
	return display
}

// Expired 是否已到终态
func (c *Countdown) Expired() bool {
	return c.expired
}

// FormatClock 秒数转 "MM:SS"，分秒都补零到两位
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
