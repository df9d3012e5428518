package pattern

import "time"

const second = time.Second

// DefaultID is the pattern used when none is configured.
const DefaultID = "box"

var builtin = []Pattern{
	{
		ID:          "box",
		Name:        "Box Breathing",
		Description: "Equal counts for every phase to calm the nervous system and sharpen focus",
		Category:    "focus",
		Difficulty:  Beginner,
		Benefits: []string{
			"Reduces stress",
			"Improves concentration",
		},
		Instructions: "Breathe in for 4, hold for 4, breathe out for 4, hold for 4",
		Inhale:       4 * second,
		Hold1:        4 * second,
		Exhale:       4 * second,
		Hold2:        4 * second,
	},
	{
		ID:          "478",
		Name:        "4-7-8 Breathing",
		Description: "A long hold and slow exhale that helps you fall asleep",
		Category:    "sleep",
		Difficulty:  Intermediate,
		Benefits: []string{
			"Helps with sleep",
			"Reduces anxiety",
		},
		Instructions: "Breathe in through the nose for 4, hold for 7, exhale through the mouth for 8",
		Inhale:       4 * second,
		Hold1:        7 * second,
		Exhale:       8 * second,
	},
	{
		ID:          "coherent",
		Name:        "Coherent Breathing",
		Description: "Slow, even breaths at roughly five and a half breaths per minute",
		Category:    "balance",
		Difficulty:  Beginner,
		Benefits: []string{
			"Balances heart rate variability",
			"Promotes calm alertness",
		},
		Instructions: "Breathe in and out smoothly without pausing",
		Inhale:       5500 * time.Millisecond,
		Exhale:       5500 * time.Millisecond,
	},
	{
		ID:          "relaxing",
		Name:        "Relaxing Breath",
		Description: "An exhale longer than the inhale to switch on the relaxation response",
		Category:    "relaxation",
		Difficulty:  Beginner,
		Benefits: []string{
			"Lowers heart rate",
			"Eases tension",
		},
		Instructions: "Breathe in for 4 and out for 6",
		Inhale:       4 * second,
		Exhale:       6 * second,
	},
	{
		ID:          "triangle",
		Name:        "Triangle Breathing",
		Description: "Box breathing without the final hold",
		Category:    "focus",
		Difficulty:  Beginner,
		Inhale:      4 * second,
		Hold1:       4 * second,
		Exhale:      4 * second,
	},
	{
		ID:          "wim-hof",
		Name:        "Power Breathing",
		Description: "Fast, deep breaths inspired by the Wim Hof method to raise energy",
		Category:    "energy",
		Difficulty:  Advanced,
		Benefits: []string{
			"Boosts energy",
			"Increases alertness",
		},
		Instructions: "Breathe in deeply and let go without forcing the exhale. Stop if you feel dizzy",
		Inhale:       2 * second,
		Exhale:       2 * second,
	},
}

// Builtin returns a copy of the built-in pattern catalog.
func Builtin() []Pattern {
	patterns := make([]Pattern, len(builtin))
	copy(patterns, builtin)

	return patterns
}
