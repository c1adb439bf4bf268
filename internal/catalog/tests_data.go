package catalog

import "github.com/panacureo/panacureo-backend/internal/domain"

// healthTests is the built-in health test catalog.
var healthTests = []domain.HealthTest{
	{
		ID:              "bmi-calculator",
		Title:           "BMI Calculator",
		Description:     "Calculate your Body Mass Index to assess your weight category.",
		LongDescription: "Body Mass Index (BMI) is a measurement of body fat based on height and weight. It can help determine if you are underweight, normal weight, overweight, or obese.",
		Image:           "/assets/images/tests/bmi-calculator.jpg",
		Category:        "Physical Health",
		Difficulty:      domain.DifficultyEasy,
		EstimatedTime:   2,
		Featured:        true,
	},
	{
		ID:              "heart-rate-variability",
		Title:           "Heart Rate Variability",
		Description:     "Measure the variation in time between heartbeats to assess stress levels.",
		LongDescription: "Heart Rate Variability (HRV) measures the variation in time between successive heartbeats. It serves as an indicator of your autonomic nervous system function and can reflect stress, recovery status, and overall health.",
		Image:           "/assets/images/tests/hrv.jpg",
		Category:        "Physical Health",
		Difficulty:      domain.DifficultyMedium,
		EstimatedTime:   5,
		Featured:        true,
	},
	{
		ID:              "stress-assessment",
		Title:           "Stress Assessment",
		Description:     "Answer a series of questions to determine your current stress level.",
		LongDescription: "This assessment uses clinically validated questions to help you understand your current stress levels and how they might be affecting your health and wellbeing.",
		Image:           "/assets/images/tests/stress.jpg",
		Category:        "Mental Health",
		Difficulty:      domain.DifficultyEasy,
		EstimatedTime:   8,
		Featured:        true,
	},
	{
		ID:              "sleep-quality",
		Title:           "Sleep Quality Analysis",
		Description:     "Analyze your sleep patterns to improve your sleep quality.",
		LongDescription: "This assessment evaluates your sleep habits and patterns to identify potential issues affecting your sleep quality and provides personalized recommendations.",
		Image:           "/assets/images/tests/sleep.jpg",
		Category:        "Wellbeing",
		Difficulty:      domain.DifficultyEasy,
		EstimatedTime:   5,
	},
	{
		ID:              "flexibility-test",
		Title:           "Flexibility Assessment",
		Description:     "Simple physical tests to measure your body flexibility.",
		LongDescription: "This assessment includes a series of simple stretches and positions to evaluate your flexibility in different muscle groups and joint ranges of motion.",
		Image:           "/assets/images/tests/flexibility.jpg",
		Category:        "Physical Health",
		Difficulty:      domain.DifficultyMedium,
		EstimatedTime:   10,
	},
	{
		ID:              "nutrition-assessment",
		Title:           "Nutritional Balance",
		Description:     "Evaluate your diet and nutritional balance.",
		LongDescription: "This assessment analyzes your typical food intake to identify potential nutritional imbalances and provides personalized recommendations for a healthier diet.",
		Image:           "/assets/images/tests/nutrition.jpg",
		Category:        "Nutrition",
		Difficulty:      domain.DifficultyMedium,
		EstimatedTime:   12,
	},
	{
		ID:              "hydration-calculator",
		Title:           "Hydration Calculator",
		Description:     "Calculate your daily water needs based on your activity level.",
		LongDescription: "This tool helps you determine your optimal daily water intake based on your weight, activity level, and environmental factors to maintain proper hydration.",
		Image:           "/assets/images/tests/hydration.jpg",
		Category:        "Nutrition",
		Difficulty:      domain.DifficultyEasy,
		EstimatedTime:   3,
	},
	{
		ID:              "posture-assessment",
		Title:           "Posture Assessment",
		Description:     "Analyze your posture to prevent pain and injuries.",
		LongDescription: "This assessment guides you through a series of positions and checks to evaluate your posture and provides guidance on correcting potential issues.",
		Image:           "/assets/images/tests/posture.jpg",
		Category:        "Physical Health",
		Difficulty:      domain.DifficultyHard,
		EstimatedTime:   15,
	},
	{
		ID:              "anxiety-screening",
		Title:           "Anxiety Screening",
		Description:     "Screen for signs of anxiety using clinical questionnaires.",
		LongDescription: "This screening tool uses clinically validated questions to help identify potential anxiety symptoms and their severity.",
		Image:           "/assets/images/tests/anxiety.jpg",
		Category:        "Mental Health",
		Difficulty:      domain.DifficultyEasy,
		EstimatedTime:   7,
	},
	{
		ID:              "fitness-level",
		Title:           "Fitness Level Test",
		Description:     "Assess your current fitness level with simple exercises.",
		LongDescription: "This fitness assessment uses a series of simple exercises to evaluate different aspects of your physical fitness, including strength, endurance, and cardiovascular health.",
		Image:           "/assets/images/tests/fitness.jpg",
		Category:        "Physical Health",
		Difficulty:      domain.DifficultyHard,
		EstimatedTime:   20,
	},
}
