package cli

import (
	"daily-trivia-service/internal/domain"
)

// seedCatalog provides a starter question set so the service runs with zero
// external infrastructure; production deployments point the loader at a
// catalog file or Postgres instead.
func seedCatalog() domain.Catalog {
	return domain.Catalog{
		{
			ID:           1,
			Text:         "What is the capital of Australia?",
			Options:      []string{"Sydney", "Melbourne", "Canberra", "Perth"},
			CorrectIndex: 2,
			Category:     "Geography",
			FunFact:      "Canberra was purpose-built as the capital in 1913 to settle the rivalry between Sydney and Melbourne.",
		},
		{
			ID:           2,
			Text:         "Which planet has the most moons?",
			Options:      []string{"Jupiter", "Saturn", "Uranus", "Neptune"},
			CorrectIndex: 1,
			Category:     "Science",
			FunFact:      "Saturn overtook Jupiter in 2023 when 62 newly confirmed moons pushed its count past 140.",
		},
		{
			ID:           3,
			Text:         "Who painted 'The Starry Night'?",
			Options:      []string{"Claude Monet", "Vincent van Gogh", "Pablo Picasso", "Salvador Dalí"},
			CorrectIndex: 1,
			Category:     "Art",
			FunFact:      "Van Gogh painted it from the window of his asylum room in Saint-Rémy-de-Provence.",
		},
		{
			ID:           4,
			Text:         "What is the largest ocean on Earth?",
			Options:      []string{"Atlantic", "Indian", "Arctic", "Pacific"},
			CorrectIndex: 3,
			Category:     "Geography",
			FunFact:      "The Pacific covers more area than all of Earth's land combined.",
		},
		{
			ID:           5,
			Text:         "In which year did the Berlin Wall fall?",
			Options:      []string{"1987", "1989", "1991", "1993"},
			CorrectIndex: 1,
			Category:     "History",
			FunFact:      "The opening was partly triggered by a botched press conference answer about new travel rules.",
		},
		{
			ID:           6,
			Text:         "What is the chemical symbol for gold?",
			Options:      []string{"Go", "Gd", "Au", "Ag"},
			CorrectIndex: 2,
			Category:     "Science",
			FunFact:      "Au comes from 'aurum', Latin for 'shining dawn'.",
		},
		{
			ID:           7,
			Text:         "Which country invented tea bags?",
			Options:      []string{"China", "United Kingdom", "United States", "India"},
			CorrectIndex: 2,
			Category:     "Food",
			FunFact:      "A New York merchant shipped samples in silk pouches around 1908; customers brewed them bag and all.",
		},
		{
			ID:           8,
			Text:         "How many hearts does an octopus have?",
			Options:      []string{"One", "Two", "Three", "Four"},
			CorrectIndex: 2,
			Category:     "Nature",
			FunFact:      "Two pump blood to the gills and one to the body; the body heart stops when the octopus swims.",
		},
		{
			ID:           9,
			Text:         "Who wrote 'One Hundred Years of Solitude'?",
			Options:      []string{"Jorge Luis Borges", "Gabriel García Márquez", "Mario Vargas Llosa", "Pablo Neruda"},
			CorrectIndex: 1,
			Category:     "Literature",
			FunFact:      "García Márquez sold his car to fund the eighteen months he spent writing it.",
		},
		{
			ID:           10,
			Text:         "What is the smallest country in the world?",
			Options:      []string{"Monaco", "Vatican City", "San Marino", "Liechtenstein"},
			CorrectIndex: 1,
			Category:     "Geography",
			FunFact:      "Vatican City covers about 49 hectares, smaller than many golf courses.",
		},
		{
			ID:           11,
			Text:         "Which instrument has 47 strings and 7 pedals?",
			Options:      []string{"Piano", "Harp", "Harpsichord", "Zither"},
			CorrectIndex: 1,
			Category:     "Music",
			FunFact:      "The pedals let a concert harp reach all the notes of the chromatic scale.",
		},
		{
			ID:           12,
			Text:         "What year did the first iPhone launch?",
			Options:      []string{"2005", "2006", "2007", "2008"},
			CorrectIndex: 2,
			Category:     "Technology",
			FunFact:      "Steve Jobs introduced it as three devices in one: an iPod, a phone, and an internet communicator.",
		},
		{
			ID:           13,
			Text:         "Which gas makes up about 78% of Earth's atmosphere?",
			Options:      []string{"Oxygen", "Carbon Dioxide", "Nitrogen", "Argon"},
			CorrectIndex: 2,
			Category:     "Science",
			FunFact:      "Despite breathing it constantly, our bodies cannot use nitrogen directly from the air.",
		},
		{
			ID:           14,
			Text:         "What is the longest river in the world?",
			Options:      []string{"Amazon", "Nile", "Yangtze", "Mississippi"},
			CorrectIndex: 1,
			Category:     "Geography",
			FunFact:      "The Nile's exact length is still debated; some surveys put the Amazon ahead.",
		},
	}
}
