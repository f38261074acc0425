package prescription

// drugInteractions maps a normalized drug name to the drugs it is known to
// interact with. Lookup is case-insensitive and checked in both directions by
// the conflict checker. The map is never mutated after init, so concurrent
// reads are safe without locking.
var drugInteractions = map[string][]string{
	"aspirin":       {"warfarin", "ibuprofen", "naproxen"},
	"warfarin":      {"aspirin", "ibuprofen", "vitamin k"},
	"metformin":     {"alcohol", "iodinated contrast"},
	"lisinopril":    {"potassium supplements", "nsaids"},
	"atorvastatin":  {"grapefruit juice", "cyclosporine"},
	"omeprazole":    {"clopidogrel", "methotrexate"},
	"levothyroxine": {"calcium", "iron supplements"},
	"amlodipine":    {"grapefruit juice", "simvastatin"},
	"metoprolol":    {"verapamil", "diltiazem"},
	"losartan":      {"potassium supplements", "nsaids"},
}

func knownInteraction(drug, candidate string) bool {
	interactants, ok := drugInteractions[drug]
	if !ok {
		return false
	}
	for _, other := range interactants {
		if other == candidate {
			return true
		}
	}
	return false
}
