package domain

// ZodiacSign identifica uno de los 12 signos solares.
type ZodiacSign string

const (
	SignAries       ZodiacSign = "Aries"
	SignTaurus      ZodiacSign = "Taurus"
	SignGemini      ZodiacSign = "Gemini"
	SignCancer      ZodiacSign = "Cancer"
	SignLeo         ZodiacSign = "Leo"
	SignVirgo       ZodiacSign = "Virgo"
	SignLibra       ZodiacSign = "Libra"
	SignScorpio     ZodiacSign = "Scorpio"
	SignSagittarius ZodiacSign = "Sagittarius"
	SignCapricorn   ZodiacSign = "Capricorn"
	SignAquarius    ZodiacSign = "Aquarius"
	SignPisces      ZodiacSign = "Pisces"
)

// Element es el elemento clasico asociado a cada signo.
type Element string

const (
	ElementFire  Element = "Fire"
	ElementEarth Element = "Earth"
	ElementAir   Element = "Air"
	ElementWater Element = "Water"
)

// Traits agrupa los rasgos fijos de un signo.
type Traits struct {
	Element   Element  `json:"element"`
	Strengths []string `json:"strengths"` // exactamente 3
	Growth    []string `json:"growth"`    // exactamente 2
}
