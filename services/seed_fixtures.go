package services

import (
	"time"

	"smartkumbh-http-service/models"
)

// CrowdBaseline is one monitored location with its nominal crowd size.
// The same table drives both the seeder and the simulation's crowd
// refresh, so every seeded location keeps receiving synthetic updates.
type CrowdBaseline struct {
	LocationName string
	Latitude     float64
	Longitude    float64
	BaseCount    int
}

// Capacity is derived from the baseline, not stored in the table.
func (b CrowdBaseline) Capacity() int { return int(float64(b.BaseCount) * 1.2) }

// crowdBaselines lists the ten monitored locations around the mela
// grounds.
var crowdBaselines = []CrowdBaseline{
	{"Ram Ghat", 23.1826, 75.7682, 15000},
	{"Mahakaleshwar Temple", 23.1828, 75.7686, 20000},
	{"Kal Bhairav Temple", 23.2099, 75.7570, 6000},
	{"Harsiddhi Temple", 23.1810, 75.7664, 5000},
	{"Triveni Ghat", 23.1534, 75.7723, 12000},
	{"Siddhavat Ghat", 23.2120, 75.7838, 8000},
	{"Mangalnath Temple", 23.2215, 75.7772, 7000},
	{"Sandipani Ashram", 23.2045, 75.7561, 4000},
	{"Chintaman Ganesh Temple", 23.1590, 75.7230, 5500},
	{"Gadh Kalika Temple", 23.1950, 75.7590, 3500},
}

func seedUsers() []*models.User {
	return []*models.User{
		{Name: "Ramesh Sharma", Email: "ramesh.sharma@example.com", Phone: "+91-9826011001", Role: models.RolePilgrim, IsVerified: true},
		{Name: "Sita Devi", Phone: "+91-9826011002", Role: models.RolePilgrim, IsVerified: true},
		{Name: "Arjun Patel", Email: "arjun.patel@example.com", Phone: "+91-9826011003", Role: models.RolePilgrim},
		{Name: "Meera Joshi", Phone: "+91-9826011004", Role: models.RolePilgrim, IsVerified: true},
		{Name: "Control Room", Email: "control@smartkumbh.example", Phone: "+91-7342550000", Role: models.RoleAdmin, IsVerified: true},
	}
}

func seedEvents(now time.Time) []*models.SpiritualEvent {
	day := now.Truncate(24 * time.Hour)
	return []*models.SpiritualEvent{
		{
			Name: "Bhasma Aarti", Description: "Pre-dawn sacred ash ritual at the Mahakaleshwar jyotirlinga.",
			Location: "Mahakaleshwar Temple", DateTime: day.Add(28 * time.Hour), DurationMinutes: 90,
			Capacity: 1500, CurrentAttendees: 0, IsLive: false,
		},
		{
			Name: "Shipra Maha Aarti", Description: "Evening lamp offering on the banks of the Shipra.",
			Location: "Ram Ghat", DateTime: day.Add(43 * time.Hour), DurationMinutes: 60,
			Capacity: 20000, CurrentAttendees: 0, IsLive: false,
		},
		{
			Name: "Sant Pravachan", Description: "Discourse by visiting saints of the akharas.",
			Location: "Sandipani Ashram", DateTime: day.Add(34 * time.Hour), DurationMinutes: 120,
			Capacity: 3000, CurrentAttendees: 0, IsLive: false,
		},
		{
			Name: "Shahi Snan Procession", Description: "Royal bath procession of the akharas to Ram Ghat.",
			Location: "Ram Ghat", DateTime: day.Add(52 * time.Hour), DurationMinutes: 240,
			Capacity: 50000, CurrentAttendees: 0, IsLive: false,
		},
		{
			Name: "Bhajan Sandhya", Description: "Devotional music evening with local artists.",
			Location: "Triveni Ghat", DateTime: day.Add(44 * time.Hour), DurationMinutes: 90,
			Capacity: 8000, CurrentAttendees: 0, IsLive: false,
		},
	}
}

func seedAlerts() []*models.SafetyAlert {
	return []*models.SafetyAlert{
		{
			Title: "High crowd at Mahakaleshwar", Message: "Darshan queue exceeds 90 minutes. Consider visiting after 2 PM.",
			Type: "crowd", Priority: models.PriorityHigh, Location: "Mahakaleshwar Temple",
			AffectedAreas: []string{"Mahakaleshwar Temple"}, IsActive: true,
		},
		{
			Title: "Heat advisory", Message: "Temperatures above 40°C expected between noon and 4 PM. Carry drinking water.",
			Type: "weather", Priority: models.PriorityMedium, Location: "All sectors",
			AffectedAreas: []string{"All sectors"}, IsActive: true,
		},
		{
			Title: "Medical camp relocated", Message: "The sector 4 medical camp has moved 200 m north, next to the police outpost.",
			Type: "medical", Priority: models.PriorityLow, Location: "Sector 4",
			AffectedAreas: []string{"Sector 4"}, IsActive: true,
		},
		{
			Title: "Ghat steps slippery", Message: "Overnight rain has left the lower steps at Ram Ghat slippery. Use the railings.",
			Type: "weather", Priority: models.PriorityHigh, Location: "Ram Ghat",
			AffectedAreas: []string{"Ram Ghat"}, IsActive: true,
		},
		{
			Title: "Parking full at gate 2", Message: "Vehicle parking at gate 2 is full. Incoming vehicles are diverted to gate 5.",
			Type: "announcement", Priority: models.PriorityLow, Location: "Gate 2",
			AffectedAreas: []string{"Gate 2", "Gate 5"}, IsActive: true,
		},
	}
}

func seedLostFound(now time.Time) []*models.LostAndFoundCase {
	seen := now.Add(-3 * time.Hour)
	return []*models.LostAndFoundCase{
		{
			CaseType: models.CaseMissingPerson, Description: "Elderly man, 72, white kurta, speaks Hindi only. Last seen near the aarti crowd.",
			ReporterName: "Suresh Kumar", ContactInfo: "+91-9826022001",
			LastSeenLocation: "Ram Ghat", LastSeenTime: &seen, Status: models.CaseStatusActive, IsApproved: true,
		},
		{
			CaseType: models.CaseMissingItem, Description: "Black shoulder bag with medicines and a rail ticket.",
			ReporterName: "Kavita Singh", ContactInfo: "+91-9826022002",
			LastSeenLocation: "Mahakaleshwar Temple", Status: models.CaseStatusActive, IsApproved: true,
		},
		{
			CaseType: models.CaseFoundItem, Description: "Mobile phone found on the steps, dark blue cover.",
			ReporterName: "Volunteer booth 3", ContactInfo: "+91-7342550003",
			LastSeenLocation: "Triveni Ghat", Status: models.CaseStatusActive, IsApproved: true,
		},
		{
			CaseType: models.CaseFoundPerson, Description: "Boy around 8 years, says his name is Monu, waiting at the help booth.",
			ReporterName: "Volunteer booth 1", ContactInfo: "+91-7342550001",
			LastSeenLocation: "Siddhavat Ghat", Status: models.CaseStatusActive, IsApproved: true,
		},
		{
			CaseType: models.CaseMissingItem, Description: "Spectacles in a brown case, left at a water station.",
			ReporterName: "Prakash Verma", ContactInfo: "+91-9826022005",
			LastSeenLocation: "Mangalnath Temple", Status: models.CaseStatusActive, IsApproved: false,
		},
	}
}

func seedCleanlinessReports() []*models.CleanlinessReport {
	return []*models.CleanlinessReport{
		{Location: "Ram Ghat toilet block A", FacilityType: "toilet", Rating: 2, Feedback: "Needs water refill and cleaning.", AssignedStaff: "Team 12"},
		{Location: "Sector 3 water station", FacilityType: "water_station", Rating: 4, Feedback: "Clean, one tap leaking."},
		{Location: "Triveni Ghat approach road", FacilityType: "road", Rating: 3, Feedback: "Litter near the food stalls."},
		{Location: "Gate 5 dustbin cluster", FacilityType: "dustbin", Rating: 1, Feedback: "Bins overflowing since morning.", AssignedStaff: "Team 7"},
		{Location: "Mahakaleshwar queue shelter", FacilityType: "ghat", Rating: 5, Feedback: "Very well maintained."},
	}
}

func seedHelpBooths() []*models.HelpBooth {
	return []*models.HelpBooth{
		{
			Name: "Help Booth 1 - Ram Ghat", Location: "Ram Ghat entrance", Latitude: 23.1825, Longitude: 75.7679,
			Staff: []string{"Anil Tiwari", "Pooja Rathore"}, Services: []string{"lost_and_found", "first_aid", "information"},
			ContactNumber: "+91-7342550001", IsActive: true,
		},
		{
			Name: "Help Booth 2 - Temple East", Location: "Mahakaleshwar east gate", Latitude: 23.1830, Longitude: 75.7691,
			Staff: []string{"Rajesh Mina"}, Services: []string{"information", "wheelchair"},
			ContactNumber: "+91-7342550002", IsActive: true,
		},
		{
			Name: "Help Booth 3 - Triveni", Location: "Triveni Ghat parking", Latitude: 23.1537, Longitude: 75.7719,
			Staff: []string{"Nisha Chouhan", "Mohan Lal"}, Services: []string{"lost_and_found", "information"},
			ContactNumber: "+91-7342550003", IsActive: true,
		},
		{
			Name: "Help Booth 4 - Mangalnath", Location: "Mangalnath approach", Latitude: 23.2211, Longitude: 75.7768,
			Staff: []string{"Deepak Solanki"}, Services: []string{"first_aid", "information"},
			ContactNumber: "+91-7342550004", IsActive: true,
		},
		{
			Name: "Help Booth 5 - Central Sector", Location: "Sector office crossing", Latitude: 23.1902, Longitude: 75.7621,
			Staff: []string{"Control room shift"}, Services: []string{"lost_and_found", "first_aid", "information", "police_liaison"},
			ContactNumber: "+91-7342550005", IsActive: true,
		},
	}
}
