package health

import (
	"math"
	"strconv"
	"strings"
)

// Kind clasifica qué regla produjo el consejo.
type Kind string

const (
	KindUrgent       Kind = "urgent"
	KindCommon       Kind = "common"
	KindWeightGain   Kind = "weight_gain"
	KindWeightLoss   Kind = "weight_loss"
	KindWeightStable Kind = "weight_stable"
	KindGeneric      Kind = "generic"
)

type Advice struct {
	Kind    Kind   `json:"kind"`
	Keyword string `json:"keyword,omitempty"`
	Message string `json:"message"`
}

// Observation es la entrada de las reglas: lo que se está por registrar y el historial previo.
type Observation struct {
	Symptom string
	Weight  string
	Prior   []Entry
}

// Rule es un par (predicado, consejo). Las reglas se evalúan en orden y gana la primera.
type Rule struct {
	Name   string
	Match  func(o Observation) bool
	Advice Advice
}

// weightThreshold en kg: por encima gana o pierde peso, si no es estable.
const weightThreshold = 2.0

var urgentKeywords = []string{
	"bleeding",
	"seizure",
	"unconscious",
	"difficulty breathing",
	"choking",
	"poisoning",
	"bloated",
	"collapse",
}

const urgentMessage = "This symptom requires IMMEDIATE veterinary attention. Contact your emergency vet or animal hospital right away!"

// El orden importa: "loss of appetite" se evalúa después de "lethargy", etc.
var commonAdvice = []struct {
	keyword string
	message string
}{
	{"limping", "Limping could indicate injury, arthritis, or paw problems. Rest your pet and schedule a vet visit if it persists beyond 24 hours."},
	{"vomiting", "Monitor for dehydration. Withhold food for 12 hours, then offer small amounts. See a vet if vomiting continues or if blood is present."},
	{"diarrhea", "Ensure your pet stays hydrated. Bland diet (rice and chicken) may help. Consult your vet if it lasts more than 24 hours."},
	{"coughing", "Could be kennel cough, allergies, or heart issues. Monitor frequency and see a vet if persistent or worsening."},
	{"scratching", "May indicate allergies, fleas, or skin conditions. Check for parasites and consider an antihistamine after vet consultation."},
	{"lethargy", "Could signal various health issues. Monitor eating and drinking habits. Schedule a vet visit if it continues."},
	{"loss of appetite", "Monitor for 24 hours. Ensure fresh water is available. Contact your vet if appetite doesn't return."},
	{"excessive drinking", "Could indicate diabetes, kidney issues, or other conditions. Track water intake and consult your vet."},
	{"panting", "Normal after exercise, but excessive panting may indicate pain, anxiety, or overheating. Monitor and consult vet if concerned."},
	{"shaking", "Could be cold, anxiety, pain, or neurological issues. Provide warmth and comfort, see vet if persistent."},
}

const (
	weightGainMessage   = "Weight gain detected. Consider adjusting diet portions and increasing exercise. Consult your vet for a weight management plan."
	weightLossMessage   = "Weight loss noted. Monitor eating habits closely and schedule a vet checkup to rule out underlying health issues."
	weightStableMessage = "Weight appears stable. Continue current diet and exercise routine to maintain optimal health."
	genericMessage      = "Keep monitoring your pet's condition. Document any changes and consult your veterinarian if symptoms persist or worsen."
)

var rules = buildRules()

func buildRules() []Rule {
	out := []Rule{{
		Name:   "urgent",
		Match:  func(o Observation) bool { return containsAny(o.Symptom, urgentKeywords) },
		Advice: Advice{Kind: KindUrgent, Message: urgentMessage},
	}}

	for _, c := range commonAdvice {
		kw := c.keyword
		out = append(out, Rule{
			Name:   "common:" + kw,
			Match:  func(o Observation) bool { return strings.Contains(strings.ToLower(o.Symptom), kw) },
			Advice: Advice{Kind: KindCommon, Keyword: kw, Message: c.message},
		})
	}

	out = append(out,
		Rule{
			Name: "weight:gain",
			Match: func(o Observation) bool {
				d, ok := weightDelta(o)
				return ok && d > weightThreshold
			},
			Advice: Advice{Kind: KindWeightGain, Message: weightGainMessage},
		},
		Rule{
			Name: "weight:loss",
			Match: func(o Observation) bool {
				d, ok := weightDelta(o)
				return ok && d < -weightThreshold
			},
			Advice: Advice{Kind: KindWeightLoss, Message: weightLossMessage},
		},
		Rule{
			Name: "weight:stable",
			Match: func(o Observation) bool {
				_, ok := weightDelta(o)
				return ok
			},
			Advice: Advice{Kind: KindWeightStable, Message: weightStableMessage},
		},
		Rule{
			Name:   "generic",
			Match:  func(Observation) bool { return true },
			Advice: Advice{Kind: KindGeneric, Message: genericMessage},
		},
	)
	return out
}

// Rules devuelve una copia de la tabla en orden de evaluación.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Suggest es puro: evalúa la tabla de arriba hacia abajo.
func Suggest(symptom, weight string, prior []Entry) Advice {
	o := Observation{Symptom: symptom, Weight: weight, Prior: prior}
	for _, r := range rules {
		if r.Match(o) {
			return r.Advice
		}
	}
	// la última regla siempre matchea
	return Advice{Kind: KindGeneric, Message: genericMessage}
}

func containsAny(s string, keywords []string) bool {
	s = strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// weightDelta = peso actual - último peso previo registrado.
// ok=false si falta alguno de los dos.
func weightDelta(o Observation) (float64, bool) {
	cur, ok := parseWeight(o.Weight)
	if !ok {
		return 0, false
	}
	for _, e := range o.Prior {
		if prev, ok := parseWeight(e.Weight); ok {
			return cur - prev, true
		}
	}
	return 0, false
}

func parseWeight(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == NotRecorded {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	return f, true
}
