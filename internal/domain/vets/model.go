package vets

// Clinic es una entrada del directorio estático.
type Clinic struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Rating      float64  `json:"rating"`
	Distance    string   `json:"distance"`
	Hours       string   `json:"hours"`
	Specialties []string `json:"specialties"`
	Emergency   bool     `json:"emergency"`
}

var directory = []Clinic{
	{
		ID:          "1",
		Name:        "Paws & Claws Veterinary Clinic",
		Address:     "123 Main Street, Downtown",
		Phone:       "(555) 123-4567",
		Rating:      4.8,
		Distance:    "0.8 miles",
		Hours:       "Mon-Fri: 8AM-6PM, Sat: 9AM-4PM",
		Specialties: []string{"General Care", "Surgery", "Dental"},
		Emergency:   false,
	},
	{
		ID:          "2",
		Name:        "Happy Tails Animal Hospital",
		Address:     "456 Oak Avenue, Midtown",
		Phone:       "(555) 987-6543",
		Rating:      4.9,
		Distance:    "1.2 miles",
		Hours:       "Mon-Sun: 7AM-8PM",
		Specialties: []string{"Emergency Care", "Cardiology", "Oncology"},
		Emergency:   true,
	},
	{
		ID:          "3",
		Name:        "Furry Friends Veterinary Center",
		Address:     "789 Pine Road, Westside",
		Phone:       "(555) 456-7890",
		Rating:      4.7,
		Distance:    "2.1 miles",
		Hours:       "Mon-Fri: 9AM-7PM, Weekends: 10AM-5PM",
		Specialties: []string{"Exotic Pets", "Dermatology", "Behavioral"},
		Emergency:   false,
	},
}

var choosingTips = []string{
	"Choose a vet within 5 miles for easy emergency access and regular checkups.",
	"Look for clinics with emergency services if your pet has ongoing health conditions.",
	"Consider vets who specialize in your pet's breed for the best care possible.",
	"Read reviews and ask for recommendations from other pet owners in your area.",
	"Schedule a meet-and-greet visit before your pet needs medical attention.",
	"Ensure your chosen vet offers both routine care and emergency services.",
	"Look for clinics with modern equipment and clean, welcoming facilities.",
	"Consider the clinic's hours - some offer extended or weekend availability.",
	"Ask about payment plans or pet insurance acceptance for expensive treatments.",
	"Choose a vet who communicates clearly and makes you feel comfortable asking questions.",
}
