package notify

import "fmt"

type EventType string

const (
	EventWorkoutLogged    EventType = "WORKOUT_LOGGED"
	EventCheckinSuccess   EventType = "CHECKIN_SUCCESS"
	EventDuplicateWorkout EventType = "DUPLICATE_WORKOUT"
	EventRestStreak       EventType = "REST_STREAK_WARNING"
	EventStreakMilestone  EventType = "STREAK_MILESTONE"
	EventDailyReminder    EventType = "DAILY_REMINDER"
	EventServerCrash      EventType = "SERVER_CRASH"
)

type Event struct {
	Type        EventType
	SessionName string
	Date        string
	Days        int
	Exercises   int
	Reason      string
	// free text, overrides the template for reminders
	Text string
}

func (e Event) Message() (string, error) {
	switch e.Type {
	case EventWorkoutLogged:
		return fmt.Sprintf("✅ *Tuyệt vời!*\n\nBuổi tập *%s* đã được lưu thành công!\n\nTiếp tục phát huy nhé! 💪", e.SessionName), nil
	case EventCheckinSuccess:
		return fmt.Sprintf("✅ *Check-in thành công!*\n\n📅 Ngày: %s\n🏋️ Buổi: *%s*\n\nGood job! 🎉", e.Date, e.SessionName), nil
	case EventDuplicateWorkout:
		return fmt.Sprintf("⚠️ *Cảnh báo*\n\nBạn đã tập rồi hôm nay (%s)!\nBuổi: %s\n\nMỗi ngày chỉ được tập 1 buổi nhé.", e.Date, e.SessionName), nil
	case EventRestStreak:
		return fmt.Sprintf("🚨 *Cảnh báo nghỉ quá lâu!*\n\nBạn đã nghỉ *%d ngày* liên tiếp!\n\nHãy quay lại tập luyện ngay hôm nay! 💪", e.Days), nil
	case EventStreakMilestone:
		medal := "🥉"
		switch {
		case e.Days >= 30:
			medal = "🏆"
		case e.Days >= 14:
			medal = "🥈"
		}
		return fmt.Sprintf("%s *Thành tích mới!*\n\nBạn đã tập *%d ngày* liên tiếp!\n\nTuyệt vời! Tiếp tục duy trì nhé! 💪🔥", medal, e.Days), nil
	case EventDailyReminder:
		if e.Text != "" {
			return e.Text, nil
		}
		return fmt.Sprintf("🔔 *Nhắc nhở tập luyện*\n\n⏰ Đã đến giờ tập!\n\n🏋️ Hôm nay: *%s*\n📋 Số bài tập: %d\n\nBắt đầu thôi! 💪", e.SessionName, e.Exercises), nil
	case EventServerCrash:
		return fmt.Sprintf("🔥 *Server crash*\n\n%s", e.Reason), nil
	default:
		return "", fmt.Errorf("unknown event type: %s", e.Type)
	}
}
