package catalog

// Service is an immutable catalog entry. The catalog is hardcoded and not
// persisted; price is display only, DurationMinutes drives slot length.
type Service struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Price           string `json:"price"`
	DurationMinutes int    `json:"duration_minutes"`
}

var services = []Service{
	{
		ID:              "anatomical-gel",
		Title:           "מבנה אנטומי - ג'ל בנייה",
		Price:           "150 ₪",
		DurationMinutes: 90,
	},
	{
		ID:              "anatomical-gel-extended",
		Title:           "מבנה אנטומי - ג'ל בנייה (מורחב)",
		Price:           "250 ₪",
		DurationMinutes: 150,
	},
	{
		ID:              "gel-pedicure",
		Title:           "לק ג'ל רגליים",
		Price:           "100 ₪",
		DurationMinutes: 40,
	},
	{
		ID:              "eyebrows-mustache",
		Title:           "גבות / שפם",
		Price:           "60 ₪",
		DurationMinutes: 20,
	},
}

func All() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

func ByID(id string) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}
