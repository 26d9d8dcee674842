package logic

import "testing"

func TestCountdownOneMinute(t *testing.T) {
	c := NewCountdown(1)

	displays := make([]string, 0, 62)
	for i := 0; i < 62; i++ {
		displays = append(displays, c.Tick())
	}

	if displays[0] != "01:00" {
		t.Fatalf("tick 0 = %q, want 01:00", displays[0])
	}
	if displays[59] != "00:01" {
		t.Fatalf("tick 59 = %q, want 00:01", displays[59])
	}
	// 第 61 拍（下标 60）剩余秒数转负，直接进入终态
	if displays[60] != ExpiredDisplay {
		t.Fatalf("tick 60 = %q, want %q", displays[60], ExpiredDisplay)
	}
	if !c.Expired() {
		t.Fatal("countdown should be expired after 61 ticks")
	}
}

// 终态单向：过期之后怎么 Tick 都只会是 Expired
func TestCountdownExpiredIsTerminal(t *testing.T) {
	c := NewCountdown(1)
	for i := 0; i < 61; i++ {
		c.Tick()
	}
	for i := 0; i < 5; i++ {
		if got := c.Tick(); got != ExpiredDisplay {
			t.Fatalf("tick after expiry = %q, want %q", got, ExpiredDisplay)
		}
	}
}

func TestCountdownDefaultDuration(t *testing.T) {
	for _, minutes := range []int{0, -3} {
		c := NewCountdown(minutes)
		if got := c.Tick(); got != "15:00" {
			t.Fatalf("NewCountdown(%d) first tick = %q, want 15:00", minutes, got)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		0:    "00:00",
		1:    "00:01",
		60:   "01:00",
		61:   "01:01",
		900:  "15:00",
		3599: "59:59",
		-5:   "00:00",
	}
	for sec, want := range cases {
		if got := FormatClock(sec); got != want {
			t.Fatalf("FormatClock(%d) = %q, want %q", sec, got, want)
		}
	}
}
