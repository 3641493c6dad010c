package sorting

import "github.com/abhisek/owlery/internal/house"

func w(g, h, r, s int) map[house.House]int {
	return map[house.House]int{
		house.Gryffindor: g,
		house.Hufflepuff: h,
		house.Ravenclaw:  r,
		house.Slytherin:  s,
	}
}

// Questions returns the seven ceremony questions. The weights are fixed
// content, not tunables.
func Questions() []Question {
	return []Question{
		{
			ID:   "1",
			Text: "What would you most despise being called?",
			Options: [4]Option{
				{Text: "Ordinary", Weights: w(0, 0, 0, 5)},
				{Text: "Ignorant", Weights: w(0, 0, 5, 0)},
				{Text: "Cowardly", Weights: w(5, 0, 0, 0)},
				{Text: "Selfish", Weights: w(0, 5, 0, 0)},
			},
		},
		{
			ID:   "2",
			Text: "Which magical creature fascinates you most?",
			Options: [4]Option{
				{Text: "Noble centaurs and their ancient wisdom", Weights: w(3, 2, 4, 1)},
				{Text: "Cunning goblins and their intricate societies", Weights: w(1, 2, 3, 4)},
				{Text: "Mysterious ghosts and their unfinished stories", Weights: w(2, 4, 3, 1)},
				{Text: "Powerful trolls and their raw strength", Weights: w(4, 1, 2, 3)},
			},
		},
		{
			ID:   "3",
			Text: "You discover an enchanted garden. What captures your attention first?",
			Options: [4]Option{
				{Text: "Silver-leafed tree bearing gleaming golden fruit", Weights: w(4, 2, 3, 1)},
				{Text: "Plump red toadstools whispering secrets to each other", Weights: w(1, 4, 2, 3)},
				{Text: "Shimmering pool with luminous mysteries swirling beneath", Weights: w(2, 3, 4, 1)},
				{Text: "Ancient wizard statue with eyes that seem to follow you", Weights: w(3, 1, 2, 4)},
			},
		},
		{
			ID:   "4",
			Text: "Four enchanted boxes await. Which calls to you?",
			Options: [4]Option{
				{Text: "Delicate tortoiseshell box with gold inlay, from which tiny squeaks emerge", Weights: w(2, 4, 1, 3)},
				{Text: "Obsidian box bearing Merlin's silver rune and an ancient lock", Weights: w(3, 1, 4, 2)},
				{Text: "Golden casket on clawed feet warning of forbidden knowledge within", Weights: w(4, 2, 3, 1)},
				{Text: "Humble pewter box marked \"I open only for the worthy\"", Weights: w(1, 3, 2, 4)},
			},
		},
		{
			ID:   "5",
			Text: "Which magical instrument stirs your soul?",
			Options: [4]Option{
				{Text: "Enchanted piano with keys that glow as they play", Weights: w(1, 3, 4, 2)},
				{Text: "Thunderous war drums that echo with ancient power", Weights: w(4, 2, 1, 3)},
				{Text: "Ethereal violin that weaves melodies from moonbeams", Weights: w(2, 4, 3, 1)},
				{Text: "Commanding trumpet that calls heroes to destiny", Weights: w(3, 1, 2, 4)},
			},
		},
		{
			ID:   "6",
			Text: "What would test your endurance most severely?",
			Options: [4]Option{
				{Text: "Gnawing hunger that weakens your resolve", Weights: w(2, 4, 1, 3)},
				{Text: "Bitter cold that chills you to the bone", Weights: w(3, 2, 4, 1)},
				{Text: "Crushing loneliness that isolates your spirit", Weights: w(1, 3, 2, 4)},
				{Text: "Mind-numbing tedium that stifles your ambition", Weights: w(4, 1, 3, 2)},
			},
		},
		{
			ID:   "7",
			Text: "The legendary Flutterby bush blooms once per century, its flowers mimicking the scent that most enchants each person. What would it smell like to lure you?",
			Options: [4]Option{
				{Text: "Roaring fireplace on a winter's night", Weights: w(4, 2, 1, 3)},
				{Text: "Wild ocean spray and endless horizons", Weights: w(2, 3, 4, 1)},
				{Text: "Fresh ink and crisp parchment ready for writing", Weights: w(1, 2, 4, 3)},
				{Text: "The warmth and comfort of home", Weights: w(3, 4, 2, 1)},
			},
		},
	}
}
