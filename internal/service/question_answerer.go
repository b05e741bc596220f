package service

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"astro-reading/internal/domain"
)

type topicBucket struct {
	topic    domain.Topic
	label    string
	keywords []string
}

// El orden importa: gana el primer bucket con coincidencia.
var topicBuckets = []topicBucket{
	{domain.TopicCareer, "Career note", []string{"job", "career", "work", "promotion", "study", "college", "internship"}},
	{domain.TopicMoney, "Finance note", []string{"money", "finance", "investment", "loan", "buy", "sell"}},
	{domain.TopicLove, "Love note", []string{"love", "relationship", "marriage", "partner", "crush"}},
	{domain.TopicHealth, "Health note", []string{"health", "fitness", "diet", "stress", "sleep"}},
	{domain.TopicTravel, "Travel note", []string{"travel", "trip", "move", "relocate", "abroad", "visa"}},
}

const generalLabel = "Guidance"

var topicTips = map[domain.Topic][]string{
	domain.TopicCareer: {
		"Prioritize a single high-impact task before noon.",
		"Have a crisp 2–3 line update ready for your manager or mentor.",
		"Say yes to collaborations that align with your long-term plan.",
	},
	domain.TopicMoney: {
		"Do a 10-minute budget review and cancel one low-value expense.",
		"Favor steady growth over high-risk moves today.",
		"If negotiating, anchor with data and be ready to walk away.",
	},
	domain.TopicLove: {
		"State your needs kindly and ask one curious question in return.",
		"Shared activities build closeness—suggest something simple.",
		"Let actions match words; small consistency wins hearts.",
	},
	domain.TopicHealth: {
		"Micro-habit: 5 deep breaths whenever you unlock your phone.",
		"Add protein+fiber to your next meal for steady energy.",
		"A 15-minute walk outdoors clears mental fog.",
	},
	domain.TopicTravel: {
		"Recheck documents and build a simple plan B.",
		"Choose comfort plus safety over speed today.",
		"Reach out to a local friend/contact for one insider tip.",
	},
	domain.TopicGeneral: {
		"Reflect for 3 minutes, then take the smallest useful step.",
		"Clarity comes after action—start tiny.",
		"Protect your time blocks; say no gracefully.",
	},
}

// TipPicker devuelve un indice en [0, n).
type TipPicker func(n int) int

// QuestionAnswerer responde preguntas libres sobre un perfil.
// A diferencia del perfil y el outlook, el consejo NO es reproducible:
// se sortea en cada llamada con una fuente sin semilla.
type QuestionAnswerer struct {
	pickTip TipPicker
}

// NewQuestionAnswerer crea un QuestionAnswerer. Con picker nil usa math/rand/v2.
func NewQuestionAnswerer(picker TipPicker) QuestionAnswerer {
	if picker == nil {
		picker = rand.IntN
	}
	return QuestionAnswerer{pickTip: picker}
}

// DefaultQuestionAnswerer permite uso directo sin instanciar.
var DefaultQuestionAnswerer = NewQuestionAnswerer(nil)

// Classify asigna la pregunta al primer bucket cuyo keyword aparezca como substring.
func (QuestionAnswerer) Classify(question string) domain.Topic {
	q := strings.ToLower(question)
	for _, b := range topicBuckets {
		for _, kw := range b.keywords {
			if strings.Contains(q, kw) {
				return b.topic
			}
		}
	}
	return domain.TopicGeneral
}

// Answer clasifica la pregunta y compone la respuesta para el perfil.
func (a QuestionAnswerer) Answer(question string, profile domain.Profile) (domain.Topic, string) {
	topic := a.Classify(question)
	tips := topicTips[topic]
	picker := a.pickTip
	if picker == nil {
		picker = rand.IntN
	}
	tip := tips[picker(len(tips))]
	base := fmt.Sprintf("As a %s (%s element), today’s theme is **%s**.", profile.Sign, profile.Element, profile.Vibe)
	return topic, fmt.Sprintf("%s %s: %s", base, topicLabel(topic), tip)
}

// TopicTips devuelve una copia del pool de consejos del topic.
func TopicTips(topic domain.Topic) []string {
	return append([]string(nil), topicTips[topic]...)
}

func topicLabel(topic domain.Topic) string {
	for _, b := range topicBuckets {
		if b.topic == topic {
			return b.label
		}
	}
	return generalLabel
}

// AnswerQuestion responde con el QuestionAnswerer por defecto.
func AnswerQuestion(question string, profile domain.Profile) string {
	_, text := DefaultQuestionAnswerer.Answer(question, profile)
	return text
}
