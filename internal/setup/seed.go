package setup

import "github.com/2beens/gymcycle/internal/love"

var sessionRows = [][]string{
	{"S1", "Buổi 1 - Ngực & Tay sau", "chest,triceps", "1"},
	{"S2", "Buổi 2 - Lưng & Tay trước", "back,biceps", "2"},
	{"S3", "Buổi 3 - Vai & Bụng", "shoulders,abs", "3"},
	{"S4", "Buổi 4 - Chân", "legs", "4"},
	{"S5", "Buổi 5 - Full Body", "chest,shoulders,triceps,back,biceps", "5"},
}

var exerciseRows = [][]string{
	{"S1", "1", "E101", "Bench Press", "4", "8-10", "120", "https://www.youtube.com/watch?v=rT7DgCr-3pg"},
	{"S1", "2", "E102", "Incline Dumbbell Press", "3", "10-12", "90", "https://www.youtube.com/watch?v=8iPEnn-ltC8"},
	{"S1", "3", "E103", "Cable Flyes", "3", "12-15", "60", "https://www.youtube.com/watch?v=Iwe6AmxVf7o"},
	{"S1", "4", "E104", "Tricep Dips", "3", "10-12", "90", "https://www.youtube.com/watch?v=6kALZikXxLc"},
	{"S1", "5", "E105", "Overhead Tricep Extension", "3", "12-15", "60", "https://www.youtube.com/watch?v=YbX7Wd8jQ-Q"},

	{"S2", "1", "E201", "Pull-ups", "4", "8-10", "120", "https://www.youtube.com/watch?v=eGo4IYlbE5g"},
	{"S2", "2", "E202", "Barbell Rows", "4", "8-10", "120", "https://www.youtube.com/watch?v=FWJR5Ve8bnQ"},
	{"S2", "3", "E203", "Lat Pulldown", "3", "10-12", "90", "https://www.youtube.com/watch?v=CAwf7n6Luuc"},
	{"S2", "4", "E204", "Barbell Curls", "3", "10-12", "90", "https://www.youtube.com/watch?v=kwG2ipFRgfo"},
	{"S2", "5", "E205", "Hammer Curls", "3", "12-15", "60", "https://www.youtube.com/watch?v=zC3nLlEvin4"},

	{"S3", "1", "E301", "Overhead Press", "4", "8-10", "120", "https://www.youtube.com/watch?v=2yjwXTZQDDI"},
	{"S3", "2", "E302", "Lateral Raises", "3", "12-15", "60", "https://www.youtube.com/watch?v=3VcKaXpzqRo"},
	{"S3", "3", "E303", "Front Raises", "3", "12-15", "60", "https://www.youtube.com/watch?v=YbX7Wd8jQ-Q"},
	{"S3", "4", "E304", "Planks", "3", "60s", "60", "https://www.youtube.com/watch?v=ASdvN_XEl_c"},
	{"S3", "5", "E305", "Hanging Leg Raises", "3", "12-15", "60", "https://www.youtube.com/watch?v=Pr1ieGZ5atk"},

	{"S4", "1", "E401", "Squats", "4", "8-10", "180", "https://www.youtube.com/watch?v=ultWZbUMPL8"},
	{"S4", "2", "E402", "Romanian Deadlifts", "4", "8-10", "120", "https://www.youtube.com/watch?v=SHsUIZiNdeY"},
	{"S4", "3", "E403", "Leg Press", "3", "10-12", "90", "https://www.youtube.com/watch?v=IZxyjW7MPJQ"},
	{"S4", "4", "E404", "Leg Curls", "3", "12-15", "60", "https://www.youtube.com/watch?v=ELOCsoDSmrg"},
	{"S4", "5", "E405", "Calf Raises", "4", "15-20", "60", "https://www.youtube.com/watch?v=gwLzBJYoWlI"},

	{"S5", "1", "E501", "Bench Press", "3", "10-12", "90", "https://www.youtube.com/watch?v=rT7DgCr-3pg"},
	{"S5", "2", "E502", "Pull-ups", "3", "8-10", "90", "https://www.youtube.com/watch?v=eGo4IYlbE5g"},
	{"S5", "3", "E503", "Overhead Press", "3", "10-12", "90", "https://www.youtube.com/watch?v=2yjwXTZQDDI"},
	{"S5", "4", "E504", "Barbell Curls", "3", "10-12", "60", "https://www.youtube.com/watch?v=kwG2ipFRgfo"},
	{"S5", "5", "E505", "Tricep Pushdowns", "3", "12-15", "60", "https://www.youtube.com/watch?v=2-LAMcpzODU"},
}

var defaultQuote = []string{
	"Love is not about how many days, months, or years you have been together. Love is about how much you love each other every single day.",
	"Unknown",
}

var sampleTimeline = []love.TimelineEvent{
	{
		Date:        "2024-02-14",
		Title:       "Lần đầu gặp gỡ",
		Description: "Ngày định mệnh chúng ta va vào nhau tại quán cà phê góc phố. Em mặc váy trắng, còn anh thì ngại ngùng không dám bắt chuyện.",
		ImageURL:    "https://images.unsplash.com/photo-1511632765486-a01980e01a18?q=80&w=1000&auto=format&fit=crop",
	},
	{
		Date:        "2024-03-08",
		Title:       "Buổi hẹn đầu tiên",
		Description: "Chúng mình cùng đi xem phim và ăn tối. Anh nhớ mãi nụ cười của em lúc nhận bó hoa hồng.",
		ImageURL:    "https://images.unsplash.com/photo-1517867065872-c70f903d2b2c?q=80&w=1000&auto=format&fit=crop",
	},
	{
		Date:        "2024-06-20",
		Title:       "Chuyến đi Đà Lạt",
		Description: "Chuyến du lịch xa đầu tiên cùng nhau. Săn mây lúc 4h sáng, lạnh nhưng ấm áp lạ thường vì có em bên cạnh.",
		ImageURL:    "https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?q=80&w=1000&auto=format&fit=crop",
	},
	{
		Date:        "2024-12-25",
		Title:       "Giáng sinh ấm áp",
		Description: "Cùng nhau trang trí cây thông và tặng nhau những món quà ý nghĩa. Mùa đông không lạnh nữa.",
		ImageURL:    "https://images.unsplash.com/photo-1543589077-47d81606c1bf?q=80&w=1000&auto=format&fit=crop",
	},
}

var sampleDreams = []love.Dream{
	{Task: "Cùng nhau ngắm hoàng hôn ở Phú Quốc", ImageURL: "https://images.unsplash.com/photo-1516216628259-2224075b95ba?q=80&w=1000"},
	{Task: "Nuôi một chú mèo tên Bơ"},
	{Task: "Học làm bánh kem tặng nhau dịp sinh nhật"},
	{Task: "Du lịch Châu Âu năm 30 tuổi"},
}

var sampleMails = []love.Mail{
	{
		Sender:  "Romeo",
		Title:   "Gửi em người yêu bé nhỏ",
		Content: "Chào buổi sáng công chúa của anh. Chúc em một ngày làm việc thật vui vẻ và tràn đầy năng lượng nhé. Yêu em nhiều!",
	},
	{
		Sender:  "Juliet",
		Title:   "Nhớ anh quá đi",
		Content: "Anh ơi bao giờ anh về? Em làm món sườn xào chua ngọt anh thích rồi nè. Về sớm nha!",
	},
}
