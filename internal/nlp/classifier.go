package nlp

import (
	"strings"
	"unicode"
)

// Vocabulários fixos das heurísticas. As listas são dados de configuração:
// a ordem importa e define a precedência das respostas.
var (
	greetings      = []string{"hi", "hello", "hey"}
	gratitudeWords = []string{"thanks", "thank", "thank you"}

	valueKeywords = []string{"safety", "customer obsession", "integrity", "accountability"}

	valueScenarios = map[string]string{
		"safety":             "Safety is the foundation of everything we do.",
		"customer obsession": "We commit to creating positive memorable experiences for our customers.",
		"integrity":          "We shall be ethical and trustworthy in all our engagements and we shall treat each person with respect.",
		"accountability":     "We take initiative and responsibility for our actions, decisions and results.",
	}
)

const (
	greetingResponse  = "Hello there! How can I assist you today?"
	gratitudeResponse = "You're welcome!"
	missionResponse   = "To propel Africa's prosperity by connecting its people, cultures and markets."
	visionResponse    = "To be Africa's preferred and sustainable Aviation group."
	defaultScenario   = "I don't have an answer for that, sorry."
)

// Classifier tenta derivar uma resposta de um texto livre usando heurísticas
// de palavras-chave: saudação/agradecimento, missão/visão e valores da
// organização, nessa ordem de prioridade.
type Classifier struct{}

// NewClassifier cria um novo classificador de intenções.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify avalia as três heurísticas em ordem fixa e retorna a primeira
// resposta encontrada. O booleano indica se alguma heurística reconheceu o texto.
func (c *Classifier) Classify(text string) (string, bool) {
	if resp := c.analyzeGreeting(text); resp != "" {
		return resp, true
	}
	if resp := c.analyzeMissionVision(text); resp != "" {
		return resp, true
	}
	if resp := c.analyzeValues(text); resp != "" {
		return resp, true
	}
	return "", false
}

// analyzeGreeting procura saudações e agradecimentos. A checagem de saudação
// é feita token a token antes da checagem de agradecimento no documento
// inteiro, então "hi, thanks" responde com a saudação.
func (c *Classifier) analyzeGreeting(text string) string {
	tokens := tokenize(text)

	hasGratitude := false
	for _, t := range tokens {
		for _, g := range gratitudeWords {
			if t == g {
				hasGratitude = true
			}
		}
	}

	for _, t := range tokens {
		for _, g := range greetings {
			if t == g {
				return greetingResponse
			}
		}
		if hasGratitude {
			return gratitudeResponse
		}
	}
	return ""
}

// analyzeMissionVision procura as palavras-chave "mission" e "vision".
// Missão tem precedência quando as duas aparecem.
func (c *Classifier) analyzeMissionVision(text string) string {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "mission") {
		return missionResponse
	}
	if strings.Contains(lower, "vision") {
		return visionResponse
	}
	return ""
}

// analyzeValues procura referências aos valores da organização. A palavra
// "values" enumera todos; caso contrário o primeiro valor citado é explicado.
func (c *Classifier) analyzeValues(text string) string {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "values") {
		names := make([]string, len(valueKeywords))
		for i, k := range valueKeywords {
			names[i] = capitalize(k)
		}
		return strings.Join(names, ", ")
	}

	for _, k := range valueKeywords {
		if strings.Contains(lower, k) {
			return capitalize(k) + ": " + scenarioForValue(k)
		}
	}
	return ""
}

// scenarioForValue retorna a frase explicativa de um valor, ou a resposta
// padrão se o valor não for reconhecido.
func scenarioForValue(value string) string {
	if s, ok := valueScenarios[strings.ToLower(value)]; ok {
		return s
	}
	return defaultScenario
}

// tokenize separa o texto em palavras minúsculas, descartando pontuação.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// capitalize coloca em maiúscula apenas a primeira letra da frase.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
