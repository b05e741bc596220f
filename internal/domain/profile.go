package domain

// Profile es el resultado determinista de los cuatro datos de nacimiento.
// Se construye una vez y se trata como solo lectura.
type Profile struct {
	Name      string     `json:"name"`
	Sign      ZodiacSign `json:"sign"`
	Element   Element    `json:"element"`
	Strengths []string   `json:"strengths"`
	Growth    []string   `json:"growth"`
	Vibe      string     `json:"vibe"`
}

// Category es una de las claves fijas del Outlook.
type Category string

const (
	CategoryCareer  Category = "career"
	CategoryLove    Category = "love"
	CategoryHealth  Category = "health"
	CategoryFinance Category = "finance"
	CategoryLuck    Category = "luck"
)

// OutlookCategories respeta el orden en que se consumen los sorteos.
var OutlookCategories = []Category{
	CategoryCareer,
	CategoryLove,
	CategoryHealth,
	CategoryFinance,
	CategoryLuck,
}

// Outlook asigna un mensaje a cada categoria.
type Outlook map[Category]string

// Topic es el bucket resultante de clasificar una pregunta.
type Topic string

const (
	TopicCareer  Topic = "career"
	TopicMoney   Topic = "money"
	TopicLove    Topic = "love"
	TopicHealth  Topic = "health"
	TopicTravel  Topic = "travel"
	TopicGeneral Topic = "general"
)
