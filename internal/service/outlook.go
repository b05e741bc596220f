package service

import "astro-reading/internal/domain"

var outlookPools = map[domain.Category][]string{
	domain.CategoryCareer: {
		"Tackle the task you’ve been postponing—the momentum will snowball.",
		"A short conversation unlocks a big opportunity—speak up.",
		"Focus beats multitasking today; one deep work block will shine.",
		"Document your wins; they’ll be handy for reviews or pitching ideas.",
	},
	domain.CategoryLove: {
		"Lead with honesty and a tiny act of kindness—warmth returns.",
		"Keep plans flexible; a spontaneous invite could delight you.",
		"Listening more than you speak improves harmony dramatically.",
		"Share a small personal story to deepen connection.",
	},
	domain.CategoryHealth: {
		"Hydration plus a 20-minute walk resets your energy.",
		"Stretch your neck/shoulders; screens have been sneaking tension in.",
		"Choose whole foods over packaged today; your focus will thank you.",
		"Early bedtime amplifies tomorrow’s productivity.",
	},
	domain.CategoryFinance: {
		"Review one recurring expense—you may trim a small leak.",
		"Avoid impulsive purchases; sleep on non-essentials.",
		"Automate a tiny transfer to savings; consistency compounds.",
		"Compare prices before you commit; a bargain appears.",
	},
	domain.CategoryLuck: {
		"Lucky color: something that makes you feel confident.",
		"A message from an old contact could be timely—check politely.",
		"Numbers that repeat today are your nudge to act.",
		"A detour reveals a pleasant surprise.",
	},
}

// OutlookMessages devuelve una copia del pool de mensajes de la categoria.
func OutlookMessages(category domain.Category) []string {
	return append([]string(nil), outlookPools[category]...)
}

// GenerateOutlook elige un mensaje por categoria con una semilla derivada de
// (nombre, signo, vibe). Un solo generador recorre las categorias en orden,
// asi que cada sorteo depende de los anteriores.
func GenerateOutlook(profile domain.Profile) domain.Outlook {
	rnd := newSeededRand(DeriveSeed(profile.Name, string(profile.Sign), profile.Vibe))
	outlook := make(domain.Outlook, len(domain.OutlookCategories))
	for _, category := range domain.OutlookCategories {
		outlook[category] = pick(rnd, outlookPools[category])
	}
	return outlook
}
