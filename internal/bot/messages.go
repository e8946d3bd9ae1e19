package bot

import (
	"fmt"
	"strings"

	"github.com/2beens/gymcycle/internal/notify"
	"github.com/2beens/gymcycle/internal/workout"
)

const (
	ButtonToday   = "🏋️ Hôm nay tập gì?"
	ButtonCheckin = "✅ Check-in"
	ButtonStats   = "📊 Thống kê"
	ButtonWeigh   = "⚖️ Cân nặng"

	maxPlanExercises = 8
)

const (
	startText = "👋 *Chào bạn!*\n\n" +
		"Mình là bot tập luyện của bạn. Chọn chức năng bên dưới hoặc gõ lệnh:\n\n" +
		"🏋️ /today - Xem bài tập hôm nay\n" +
		"✅ /checkin - Điểm danh sau khi tập\n" +
		"📊 /stats - Thống kê tháng này\n" +
		"⚖️ /weigh 70.5 - Lưu cân nặng\n" +
		"❓ /help - Hướng dẫn"
	helpText = "📖 *Danh sách lệnh*\n\n" +
		"/today - Bài tập hôm nay\n" +
		"/checkin - Điểm danh xong buổi tập\n" +
		"/stats - Xem thống kê tháng\n" +
		"/weigh <kg> - Cập nhật cân nặng (VD: /weigh 70.5)\n" +
		"/help hoặc /menu - Hướng dẫn\n\n" +
		"Có thể gõ lệnh không cần dấu /"
	weighHintText = "⚖️ Để lưu cân nặng, hãy gõ:\n`/weigh 70.5` (thay số kg của bạn)"
	unknownText   = "❓ Lệnh không hợp lệ. Gõ *help* hoặc *menu* để xem danh sách lệnh."
)

var mainKeyboard = notify.ReplyKeyboardMarkup{
	Keyboard: [][]notify.KeyboardButton{
		{{Text: ButtonToday}, {Text: ButtonCheckin}},
		{{Text: ButtonStats}, {Text: ButtonWeigh}},
	},
	ResizeKeyboard: true,
	IsPersistent:   true,
}

var botCommands = []notify.BotCommand{
	{Command: "start", Description: "Bắt đầu sử dụng bot"},
	{Command: "today", Description: "Xem bài tập hôm nay"},
	{Command: "checkin", Description: "Điểm danh sau khi tập xong"},
	{Command: "stats", Description: "Xem thống kê tháng này"},
	{Command: "weigh", Description: "Lưu cân nặng, VD: /weigh 70.5"},
	{Command: "help", Description: "Hướng dẫn sử dụng"},
	{Command: "menu", Description: "Hiện menu chức năng"},
}

// TodayPlanText renders the plan the same way for the /today reply and the daily reminder.
func TodayPlanText(plan *workout.TodayPlan) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏋️ *Hôm nay tập:* *%s*\n", plan.Session.SessionName))
	sb.WriteString(fmt.Sprintf("🎯 Nhóm cơ: %s\n", strings.Join(plan.Session.MuscleGroups, ", ")))
	sb.WriteString(fmt.Sprintf("📌 Bài tập (%d):\n\n", len(plan.Exercises)))

	for i, e := range plan.Exercises {
		if i == maxPlanExercises {
			sb.WriteString(fmt.Sprintf("... và %d bài nữa\n", len(plan.Exercises)-maxPlanExercises))
			break
		}
		sb.WriteString(fmt.Sprintf("%d. *%s* — %dx%s (nghỉ %ds)\n", i+1, e.Name, e.Sets, e.Reps.Raw, e.RestSec))
		if url := strings.TrimSpace(e.VideoURL); url != "" {
			sb.WriteString(fmt.Sprintf("   ▶️ %s\n", url))
		}
	}

	sb.WriteString("\n")
	for _, tip := range plan.Tips {
		sb.WriteString(fmt.Sprintf("✅ %s\n", tip))
	}
	sb.WriteString("💪 Giữ form trước, tạ sau!")
	return sb.String()
}

func checkinText(reply *CheckinReply) string {
	if !reply.OK {
		msg := reply.Error
		if msg == "" {
			msg = "Không thể check-in"
		}
		if reply.ExistingSession != "" {
			return fmt.Sprintf("⚠️ %s\n\n📅 Ngày: %s\n🏋️ Buổi đã tập: *%s*", msg, reply.Date, reply.ExistingSession)
		}
		return "⚠️ " + msg
	}

	var sb strings.Builder
	sb.WriteString("✅ *Check-in thành công!*\n\n")
	sb.WriteString(fmt.Sprintf("📅 Ngày: %s\n", reply.Date))
	if reply.Session != nil {
		sb.WriteString(fmt.Sprintf("🏋️ Buổi: *%s*\n", reply.Session.SessionName))
		sb.WriteString(fmt.Sprintf("🎯 Cơ: %s\n", strings.Join(reply.Session.MuscleGroups, ", ")))
	}
	sb.WriteString("\nTuyệt vời! 💪")
	return sb.String()
}

func statsText(summary *workout.Summary, daysInMonth int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 *Thống kê tháng %s*\n\n", summary.Month))
	sb.WriteString(fmt.Sprintf("🏋️ Đã tập: *%d buổi*\n", summary.CompletedCount))
	sb.WriteString(fmt.Sprintf("🔥 Streak: *%d ngày*\n", summary.Streak))
	if summary.RestStreak != nil {
		sb.WriteString(fmt.Sprintf("😴 Nghỉ: *%d ngày*\n", *summary.RestStreak))
	}

	warnings := workout.Warnings(*summary, daysInMonth)
	for _, w := range warnings {
		icon := "⚠️"
		if w.Type == "error" {
			icon = "🚨"
		}
		sb.WriteString(fmt.Sprintf("\n%s %s", icon, w.Message))
	}
	if len(warnings) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(encouragement(summary.CompletedCount))
	return sb.String()
}

func encouragement(completed int) string {
	switch {
	case completed >= 16:
		return "🎉 Xuất sắc!"
	case completed >= 12:
		return "💪 Tốt lắm!"
	default:
		return "⚡ Cố lên!"
	}
}
