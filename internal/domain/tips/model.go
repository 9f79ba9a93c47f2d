package tips

// Category agrupa los consejos de cuidado.
type Category string

const (
	CategoryDiet     Category = "diet"
	CategoryExercise Category = "exercise"
	CategoryGrooming Category = "grooming"
	CategoryHealth   Category = "health"
	CategoryGeneral  Category = "general"
)

// Categories en orden estable (para selección aleatoria reproducible).
var Categories = []Category{
	CategoryDiet,
	CategoryExercise,
	CategoryGrooming,
	CategoryHealth,
	CategoryGeneral,
}

func (c Category) Valid() bool {
	_, ok := catalog[c]
	return ok
}

type Tip struct {
	Category Category `json:"category"`
	Text     string   `json:"text"`
}

// {breed} se reemplaza por la raza del perfil (o "pet").
var catalog = map[Category][]string{
	CategoryDiet: {
		"Feed your {breed} 2-3 cups of high-quality kibble daily, divided into two meals",
		"Fresh water should always be available - change it daily for optimal health",
		"Avoid feeding your {breed} chocolate, grapes, onions, and garlic as they're toxic",
		"Consider adding omega-3 supplements to support your pet's coat and joint health",
		"Measure food portions to prevent overfeeding - obesity is common in {breed}s",
		"Treats should make up no more than 10% of your pet's daily caloric intake",
	},
	CategoryExercise: {
		"{breed}s need at least 30-60 minutes of exercise daily to stay healthy and happy",
		"Mental stimulation is just as important as physical exercise for your {breed}",
		"Take your {breed} on different walking routes to keep them mentally engaged",
		"Interactive toys and puzzle feeders can help burn mental energy indoors",
		"Swimming is excellent low-impact exercise, especially for older {breed}s",
		"Play fetch or tug-of-war to strengthen your bond while exercising together",
	},
	CategoryGrooming: {
		"Brush your {breed} 2-3 times per week to reduce shedding and prevent matting",
		"Trim your pet's nails every 2-3 weeks to prevent overgrowth and discomfort",
		"Clean your {breed}'s ears weekly with a vet-approved ear cleaner",
		"Brush your pet's teeth daily or use dental chews to maintain oral health",
		"Bathe your {breed} monthly or when they get dirty - over-bathing can dry their skin",
		"Check and clean your pet's paws regularly, especially after outdoor walks",
	},
	CategoryHealth: {
		"Schedule annual vet checkups for your {breed} to catch health issues early",
		"Keep your pet's vaccinations up to date according to your vet's schedule",
		"Watch for changes in appetite, behavior, or bathroom habits in your {breed}",
		"Maintain a healthy weight - you should be able to feel your pet's ribs easily",
		"Provide a comfortable, warm sleeping area for your {breed} to rest",
		"Consider pet insurance to help manage unexpected veterinary costs",
	},
	CategoryGeneral: {
		"Create a consistent daily routine - {breed}s thrive on predictability",
		"Socialize your {breed} regularly with other pets and people when safe",
		"Provide plenty of safe toys to prevent destructive chewing behaviors",
		"Keep your home pet-proofed by securing toxic plants and small objects",
		"Show love and affection daily - your {breed} needs emotional connection too",
		"Train using positive reinforcement - {breed}s respond well to praise and treats",
	},
}
