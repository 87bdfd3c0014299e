package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
	SendToHotel(hotelID uint, message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// SendToHotel chỉ gửi đến các session đã đăng ký theo khách sạn
func (s *MelodyService) SendToHotel(hotelID uint, message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	room := fmt.Sprintf("%d", hotelID)
	return s.m.BroadcastFilter([]byte(message), func(sess *melody.Session) bool {
		v, ok := sess.Get("hotelId")
		if !ok {
			return false
		}
		id, ok := v.(string)
		return ok && id == room
	})
}

// WorkOrderMessageBuilder dựng nội dung thông báo cho lệnh công việc
type WorkOrderMessageBuilder struct {
	workOrderID uint
	title       string
	event       string
}

func NewWorkOrderMessageBuilder(workOrderID uint, title, event string) *WorkOrderMessageBuilder {
	return &WorkOrderMessageBuilder{
		workOrderID: workOrderID,
		title:       title,
		event:       event,
	}
}

func (b *WorkOrderMessageBuilder) Build() string {
	switch b.event {
	case "created":
		return fmt.Sprintf("🔔 Lệnh công việc #%d (%s) vừa được tạo.", b.workOrderID, b.title)
	case "updated":
		return fmt.Sprintf("🔔 Lệnh công việc #%d (%s) vừa được cập nhật.", b.workOrderID, b.title)
	default:
		return fmt.Sprintf("🔔 Lệnh công việc #%d (%s): %s.", b.workOrderID, b.title, b.event)
	}
}
