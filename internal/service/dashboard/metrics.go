package dashboard

// MetricPoint is one dated sample of an activity metric.
type MetricPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Appointment is an upcoming appointment shown on the dashboard.
type Appointment struct {
	ID        string `json:"id"`
	Doctor    string `json:"doctor"`
	Specialty string `json:"specialty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	Notes     string `json:"notes"`
}

// Article is a featured health article teaser.
type Article struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

// Sample series shown until real device integrations exist.
var activitySeries = map[string][]MetricPoint{
	"steps": {
		{Date: "2023-04-15", Value: 8234},
		{Date: "2023-04-16", Value: 7500},
		{Date: "2023-04-17", Value: 9120},
		{Date: "2023-04-18", Value: 10430},
		{Date: "2023-04-19", Value: 8976},
		{Date: "2023-04-20", Value: 7654},
		{Date: "2023-04-21", Value: 12340},
	},
	"sleep": {
		{Date: "2023-04-15", Value: 7.5},
		{Date: "2023-04-16", Value: 6.8},
		{Date: "2023-04-17", Value: 8.2},
		{Date: "2023-04-18", Value: 7.0},
		{Date: "2023-04-19", Value: 7.8},
		{Date: "2023-04-20", Value: 6.5},
		{Date: "2023-04-21", Value: 8.0},
	},
	"calories": {
		{Date: "2023-04-15", Value: 2150},
		{Date: "2023-04-16", Value: 1850},
		{Date: "2023-04-17", Value: 2300},
		{Date: "2023-04-18", Value: 2100},
		{Date: "2023-04-19", Value: 1950},
		{Date: "2023-04-20", Value: 2250},
		{Date: "2023-04-21", Value: 2400},
	},
	"heartRate": {
		{Date: "2023-04-15", Value: 68},
		{Date: "2023-04-16", Value: 72},
		{Date: "2023-04-17", Value: 70},
		{Date: "2023-04-18", Value: 75},
		{Date: "2023-04-19", Value: 73},
		{Date: "2023-04-20", Value: 71},
		{Date: "2023-04-21", Value: 69},
	},
}

var appointments = []Appointment{
	{
		ID:        "apt1",
		Doctor:    "Dr. Jane Smith",
		Specialty: "General Practitioner",
		Date:      "2023-05-10",
		Time:      "10:00 AM",
		Location:  "Health Center Building A",
		Notes:     "Annual checkup",
	},
	{
		ID:        "apt2",
		Doctor:    "Dr. Robert Johnson",
		Specialty: "Cardiologist",
		Date:      "2023-05-17",
		Time:      "2:30 PM",
		Location:  "Medical Plaza, Suite 302",
		Notes:     "Follow-up on test results",
	},
	{
		ID:        "apt3",
		Doctor:    "Dr. Lisa Williams",
		Specialty: "Nutritionist",
		Date:      "2023-05-25",
		Time:      "11:15 AM",
		Location:  "Wellness Center",
		Notes:     "Diet consultation",
	},
}

var articles = []Article{
	{
		ID:       "art1",
		Title:    "The Benefits of Regular Exercise",
		Excerpt:  "Discover how just 30 minutes of activity each day can transform your health...",
		Category: "Fitness",
		Date:     "2023-04-10",
	},
	{
		ID:       "art2",
		Title:    "Nutrition Essentials for a Balanced Diet",
		Excerpt:  "Learn about the key nutrients your body needs and how to ensure you get them...",
		Category: "Nutrition",
		Date:     "2023-04-12",
	},
	{
		ID:       "art3",
		Title:    "Quality Sleep: The Forgotten Pillar of Health",
		Excerpt:  "Why sleep might be the most important health factor you're neglecting...",
		Category: "Wellness",
		Date:     "2023-04-15",
	},
	{
		ID:       "art4",
		Title:    "Understanding Your Heart Health Metrics",
		Excerpt:  "A guide to the numbers that matter when it comes to your cardiovascular health...",
		Category: "Medical",
		Date:     "2023-04-18",
	},
}
