package seed

import (
	"context"
	"log"

	"fitflow/internal/models"
	"fitflow/internal/repository"
)

// triviaBank is the built-in nutrition question set. Options keep their
// on-screen order via Position; the correct answer is matched by text.
func triviaBank() []models.TriviaQuestion {
	return []models.TriviaQuestion{
		question("Which vitamin is known as the 'sunshine vitamin'?",
			[]string{"Vitamin A", "Vitamin B12", "Vitamin C", "Vitamin D"},
			"Vitamin D", models.TriviaVitamins, models.TriviaEasy,
			"Vitamin D is called the sunshine vitamin because your body produces it when exposed to sunlight."),
		question("What is the primary function of protein in the body?",
			[]string{"Energy production", "Building and repairing tissues", "Vitamin storage", "Blood clotting"},
			"Building and repairing tissues", models.TriviaMacronutrients, models.TriviaEasy,
			"Protein is essential for building and repairing tissues, making enzymes and hormones."),
		question("How many calories are in one gram of fat?",
			[]string{"4 calories", "7 calories", "9 calories", "12 calories"},
			"9 calories", models.TriviaMacronutrients, models.TriviaMedium,
			"Fat contains 9 calories per gram, while carbohydrates and protein contain 4 calories per gram."),
		question("Which mineral is most important for bone health?",
			[]string{"Iron", "Calcium", "Zinc", "Magnesium"},
			"Calcium", models.TriviaMinerals, models.TriviaEasy,
			"Calcium is crucial for building and maintaining strong bones and teeth."),
		question("What percentage of the human body is water?",
			[]string{"50%", "60%", "70%", "80%"},
			"60%", models.TriviaHydration, models.TriviaMedium,
			"The human body is approximately 60% water, varying by age and body composition."),
		question("Which vitamin helps blood clot?",
			[]string{"Vitamin A", "Vitamin K", "Vitamin E", "Vitamin C"},
			"Vitamin K", models.TriviaVitamins, models.TriviaMedium,
			"Vitamin K plays a key role in blood clotting and bone health."),
		question("What is the recommended daily water intake for adults?",
			[]string{"1-2 liters", "2-3 liters", "4-5 liters", "6-7 liters"},
			"2-3 liters", models.TriviaHydration, models.TriviaEasy,
			"Most adults need about 2-3 liters of water per day, depending on activity level and climate."),
		question("Which macronutrient is the body's primary energy source?",
			[]string{"Protein", "Fat", "Carbohydrates", "Vitamins"},
			"Carbohydrates", models.TriviaMacronutrients, models.TriviaEasy,
			"Carbohydrates are the body's main and most efficient source of energy."),
		question("Which vitamin is essential for vision?",
			[]string{"Vitamin A", "Vitamin B", "Vitamin C", "Vitamin D"},
			"Vitamin A", models.TriviaVitamins, models.TriviaEasy,
			"Vitamin A is crucial for maintaining healthy vision, especially in low light."),
		question("What mineral helps transport oxygen in the blood?",
			[]string{"Calcium", "Iron", "Potassium", "Sodium"},
			"Iron", models.TriviaMinerals, models.TriviaMedium,
			"Iron is a key component of hemoglobin, which carries oxygen in red blood cells."),
		question("How many essential amino acids does the body need?",
			[]string{"5", "7", "9", "12"},
			"9", models.TriviaMacronutrients, models.TriviaHard,
			"There are 9 essential amino acids that the body cannot produce and must obtain from food."),
		question("Which vitamin helps the body absorb calcium?",
			[]string{"Vitamin C", "Vitamin D", "Vitamin E", "Vitamin K"},
			"Vitamin D", models.TriviaVitamins, models.TriviaMedium,
			"Vitamin D is essential for calcium absorption and bone health."),
		question("What is the main source of omega-3 fatty acids?",
			[]string{"Red meat", "Dairy products", "Fish", "Grains"},
			"Fish", models.TriviaMacronutrients, models.TriviaEasy,
			"Fatty fish like salmon, mackerel, and sardines are excellent sources of omega-3 fatty acids."),
		question("Which vitamin is also known as ascorbic acid?",
			[]string{"Vitamin A", "Vitamin B12", "Vitamin C", "Vitamin E"},
			"Vitamin C", models.TriviaVitamins, models.TriviaMedium,
			"Vitamin C (ascorbic acid) is important for immune function and collagen production."),
		question("What is the recommended daily fiber intake for adults?",
			[]string{"10-15 grams", "25-30 grams", "40-45 grams", "50-55 grams"},
			"25-30 grams", models.TriviaGeneral, models.TriviaMedium,
			"Most adults should aim for 25-30 grams of fiber daily for optimal digestive health."),
		question("Which mineral helps regulate fluid balance?",
			[]string{"Iron", "Calcium", "Potassium", "Zinc"},
			"Potassium", models.TriviaMinerals, models.TriviaMedium,
			"Potassium helps maintain proper fluid balance and supports heart and muscle function."),
		question("What percentage of daily calories should come from carbohydrates?",
			[]string{"20-30%", "30-40%", "45-65%", "70-80%"},
			"45-65%", models.TriviaMacronutrients, models.TriviaHard,
			"Health guidelines recommend 45-65% of daily calories come from carbohydrates."),
		question("Which vitamin is fat-soluble?",
			[]string{"Vitamin B", "Vitamin C", "Vitamin E", "All vitamins"},
			"Vitamin E", models.TriviaVitamins, models.TriviaMedium,
			"Vitamins A, D, E, and K are fat-soluble, while B vitamins and C are water-soluble."),
		question("What is the main function of antioxidants?",
			[]string{"Build muscle", "Protect cells from damage", "Produce energy", "Store fat"},
			"Protect cells from damage", models.TriviaGeneral, models.TriviaEasy,
			"Antioxidants help protect cells from damage caused by free radicals."),
		question("Which nutrient is most important for muscle recovery?",
			[]string{"Carbohydrates", "Protein", "Fat", "Fiber"},
			"Protein", models.TriviaMacronutrients, models.TriviaEasy,
			"Protein is essential for repairing and building muscle tissue after exercise."),
	}
}

func question(text string, options []string, correct string,
	category models.TriviaCategory, difficulty models.TriviaDifficulty, explanation string) models.TriviaQuestion {

	opts := make([]models.TriviaOption, 0, len(options))
	for i, o := range options {
		opts = append(opts, models.TriviaOption{Position: i + 1, Text: o})
	}
	return models.TriviaQuestion{
		Question:      text,
		Options:       opts,
		CorrectAnswer: correct,
		Category:      category,
		Difficulty:    difficulty,
		Explanation:   explanation,
	}
}

// EnsureTrivia inserts the built-in question bank when the table is
// empty. Safe to call on every startup.
func EnsureTrivia(ctx context.Context, triviaRepo repository.TriviaRepository) error {
	count, err := triviaRepo.CountQuestions(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	bank := triviaBank()
	if err := triviaRepo.InsertQuestions(ctx, bank); err != nil {
		return err
	}
	log.Printf("Seeded %d trivia questions", len(bank))
	return nil
}
