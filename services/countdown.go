package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Salman534-web/WooCommerce-Enhancements/logic"
	"github.com/Salman534-web/WooCommerce-Enhancements/models"

	"github.com/google/uuid"
)

// TimerSession 一个页面实例对应一个会话，过期即终态
type TimerSession struct {
	ID        string
	Countdown *logic.Countdown
	StartedAt time.Time
}

// CountdownService 倒计时调度器：每个会话一个协程，
// 每秒推进一拍并通过 Hub 推给订阅页面
type CountdownService struct {
	Hub *Hub

	sessions map[string]*TimerSession
	mu       sync.RWMutex

	ctx context.Context

	// 节拍间隔，线上固定 1 秒；留出来是为了让测试不用干等
	tickInterval time.Duration
}

func NewCountdownService(ctx context.Context, hub *Hub) *CountdownService {
	return &CountdownService{
		Hub:          hub,
		sessions:     make(map[string]*TimerSession),
		ctx:          ctx,
		tickInterval: time.Second,
	}
}

// StartSession 新建会话并拉起节拍协程，返回会话 ID 和首拍展示
func (s *CountdownService) StartSession(minutes int) (string, string) {
	countdown := logic.NewCountdown(minutes)
	session := &TimerSession{
		ID:        uuid.New().String(),
		Countdown: countdown,
		StartedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	firstDisplay := countdown.Tick()
	log.Printf("⏱️ 倒计时会话启动 [%s] 首拍 %s", session.ID, firstDisplay)

	go s.runSession(session)
	return session.ID, firstDisplay
}

// runSession 单个会话的节拍循环。页面关掉也没有取消入口，
// 协程一路跑到过期为止，和原实现的页面计时器行为一致
func (s *CountdownService) runSession(session *TimerSession) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ 倒计时会话崩溃 [%s]: %v", session.ID, r)
			s.dropSession(session.ID)
		}
	}()

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			log.Printf("🔔 收到退出信号，会话 [%s] 停止", session.ID)
			s.dropSession(session.ID)
			return
		case <-ticker.C:
			display := session.Countdown.Tick()
			expired := session.Countdown.Expired()

			msgType := "TIMER_TICK"
			replaceHTML := ""
			if expired {
				msgType = "TIMER_EXPIRED"
				display = logic.ExpiredDisplay
				replaceHTML = logic.UrgencyExpiredHTML()
			}

			s.Hub.BroadcastToSession(session.ID, models.WSMessage{
				Type: msgType,
				Data: models.TimerTickData{
					SessionID:   session.ID,
					Display:     display,
					Expired:     expired,
					ReplaceHTML: replaceHTML,
				},
			})

			if expired {
				// 终态只播一次，之后会话就地收尾，不会复位
				log.Printf("⏰ 会话 [%s] 已过期", session.ID)
				s.dropSession(session.ID)
				return
			}
		}
	}
}

func (s *CountdownService) dropSession(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// ActiveSessions 当前在跑的会话数，运维接口用
func (s *CountdownService) ActiveSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
