package questionbank

// chapterTitles maps book number to chapter display titles. Book 1 keeps the
// long 17-chapter data variant; the other books list their first eight
// chapters, matching the 8-chapter unlock ladder.
var chapterTitles = map[int][]string{
	1: {
		"The Boy Who Lived",
		"The Vanishing Glass",
		"The Letters from No One",
		"The Keeper of the Keys",
		"Diagon Alley",
		"The Journey from Platform Nine and Three-Quarters",
		"The Sorting Hat",
		"The Potions Master",
		"The Midnight Duel",
		"Halloween",
		"Quidditch",
		"The Mirror of Erised",
		"Nicolas Flamel",
		"Norbert the Norwegian Ridgeback",
		"The Forbidden Forest",
		"Through the Trapdoor",
		"The Man with Two Faces",
	},
	2: {
		"The Worst Birthday",
		"Dobby's Warning",
		"The Burrow",
		"At Flourish and Blotts",
		"The Whomping Willow",
		"Gilderoy Lockhart",
		"Mudbloods and Murmurs",
		"The Deathday Party",
	},
	3: {
		"Owl Post",
		"Aunt Marge's Big Mistake",
		"The Knight Bus",
		"The Leaky Cauldron",
		"The Dementor",
		"Talons and Tea Leaves",
		"The Boggart in the Wardrobe",
		"Flight of the Fat Lady",
	},
	4: {
		"The Riddle House",
		"The Scar",
		"The Invitation",
		"Back to the Burrow",
		"Weasleys' Wizard Wheezes",
		"The Portkey",
		"Bagman and Crouch",
		"The Quidditch World Cup",
	},
	5: {
		"Dudley Demented",
		"A Peck of Owls",
		"The Advance Guard",
		"Number Twelve, Grimmauld Place",
		"The Order of the Phoenix",
		"The Noble and Most Ancient House of Black",
		"The Ministry of Magic",
		"The Hearing",
	},
	6: {
		"The Other Minister",
		"Spinner's End",
		"Will and Won't",
		"Horace Slughorn",
		"An Excess of Phlegm",
		"Draco's Detour",
		"The Slug Club",
		"Snape Victorious",
	},
	7: {
		"The Dark Lord Ascending",
		"In Memoriam",
		"The Dursleys Departing",
		"The Seven Potters",
		"Fallen Warrior",
		"The Ghoul in Pajamas",
		"The Will of Albus Dumbledore",
		"The Wedding",
	},
}

// ChapterTitles returns the numbered chapter titles for one book, or nil for
// an unknown book.
func ChapterTitles(book int) []ChapterTitle {
	titles, ok := chapterTitles[book]
	if !ok {
		return nil
	}
	out := make([]ChapterTitle, len(titles))
	for i, t := range titles {
		out[i] = ChapterTitle{Chapter: i + 1, Title: t}
	}
	return out
}

// ChapterCount returns how many chapters a book's data covers. This is the
// data-side truth: book 1 runs to 17 even though progression rolls over at 8.
func ChapterCount(book int) int {
	return len(chapterTitles[book])
}

// BookTitle returns the display title of a book.
func BookTitle(book int) string {
	switch book {
	case 1:
		return "The Philosopher's Stone"
	case 2:
		return "The Chamber of Secrets"
	case 3:
		return "The Prisoner of Azkaban"
	case 4:
		return "The Goblet of Fire"
	case 5:
		return "The Order of the Phoenix"
	case 6:
		return "The Half-Blood Prince"
	case 7:
		return "The Deathly Hallows"
	default:
		return ""
	}
}
