package service

import (
	"slices"
	"strings"

	"github.com/fitgenius/backend/internal/models"
)

// Tip categories with a static fallback set.
const (
	TipsNutrition = "nutrition"
	TipsExercise  = "exercise"
	TipsSleep     = "sleep"
	TipsStress    = "stress"
	TipsHydration = "hydration"
	TipsGeneral   = "general"
	TipsBMI       = "bmi"
)

// Diet goals with a static fallback plan.
const (
	GoalWeightLoss  = "weight_loss"
	GoalWeightGain  = "weight_gain"
	GoalMuscleGain  = "muscle_gain"
	GoalMaintenance = "maintenance"
)

var fallbackTips = map[string][]string{
	TipsNutrition: {
		"Focus on eating whole, unprocessed foods like fruits, vegetables, lean proteins, and whole grains",
		"Practice portion control by using smaller plates and measuring your food portions",
		"Stay hydrated by drinking water before meals and throughout the day",
	},
	TipsExercise: {
		"Start with 10-15 minutes of daily movement and gradually increase duration and intensity",
		"Include both cardiovascular exercise and strength training in your weekly routine",
		"Focus on proper form over intensity to prevent injuries and maximize effectiveness",
	},
	TipsSleep: {
		"Maintain a consistent sleep schedule by going to bed and waking up at the same time daily",
		"Create a relaxing bedtime routine without screens for at least 30 minutes before sleep",
		"Keep your bedroom cool, dark, and quiet for optimal sleep quality",
	},
	TipsStress: {
		"Practice deep breathing exercises for 5-10 minutes when feeling overwhelmed",
		"Incorporate regular physical activity as it naturally reduces stress hormones",
		"Set realistic daily goals and celebrate small achievements to build positive momentum",
	},
	TipsHydration: {
		"Drink a glass of water first thing in the morning to kickstart your metabolism",
		"Carry a reusable water bottle and set hourly reminders to take sips throughout the day",
		"Monitor your urine color - pale yellow indicates good hydration levels",
	},
	TipsGeneral: {
		"Take short 5-minute movement breaks every hour during work or sedentary activities",
		"Practice gratitude by writing down three positive things from your day each evening",
		"Plan and prepare healthy meals in advance to avoid impulsive food choices",
	},
	TipsBMI: {
		"Focus on gradual, sustainable changes rather than drastic dietary restrictions",
		"Incorporate regular physical activity that you enjoy to make it a long-term habit",
		"Consider consulting with a healthcare provider or registered dietitian for personalized guidance",
	},
}

// Plan is a generated or fallback daily meal plan
type Plan struct {
	Meals         []models.Meal `json:"meals"`
	TotalCalories int           `json:"totalCalories"`
}

var fallbackPlans = map[string]Plan{
	GoalWeightLoss: {
		Meals: []models.Meal{
			{Name: "Breakfast", Food: "Greek yogurt with mixed berries and almonds", Calories: 280},
			{Name: "Morning Snack", Food: "Apple with 1 tbsp almond butter", Calories: 150},
			{Name: "Lunch", Food: "Grilled chicken salad with quinoa and vegetables", Calories: 420},
			{Name: "Afternoon Snack", Food: "Carrot sticks with hummus", Calories: 120},
			{Name: "Dinner", Food: "Baked salmon with roasted broccoli and sweet potato", Calories: 380},
		},
		TotalCalories: 1350,
	},
	GoalWeightGain: {
		Meals: []models.Meal{
			{Name: "Breakfast", Food: "Protein pancakes with banana and peanut butter", Calories: 520},
			{Name: "Morning Snack", Food: "Protein smoothie with berries", Calories: 250},
			{Name: "Lunch", Food: "Turkey and avocado wrap with whole grain tortilla", Calories: 680},
			{Name: "Afternoon Snack", Food: "Trail mix with nuts and dried fruit", Calories: 200},
			{Name: "Dinner", Food: "Lean beef with quinoa and steamed vegetables", Calories: 720},
		},
		TotalCalories: 2370,
	},
	GoalMuscleGain: {
		Meals: []models.Meal{
			{Name: "Breakfast", Food: "Oatmeal with protein powder and banana", Calories: 450},
			{Name: "Morning Snack", Food: "Cottage cheese with pineapple", Calories: 180},
			{Name: "Lunch", Food: "Chicken breast with brown rice and vegetables", Calories: 580},
			{Name: "Pre-workout", Food: "Banana with honey", Calories: 120},
			{Name: "Post-workout", Food: "Protein shake with chocolate milk", Calories: 250},
			{Name: "Dinner", Food: "Grilled fish with quinoa and asparagus", Calories: 520},
		},
		TotalCalories: 2100,
	},
	GoalMaintenance: {
		Meals: []models.Meal{
			{Name: "Breakfast", Food: "Whole grain toast with avocado and eggs", Calories: 350},
			{Name: "Morning Snack", Food: "Greek yogurt with granola", Calories: 180},
			{Name: "Lunch", Food: "Quinoa bowl with chicken and mixed vegetables", Calories: 500},
			{Name: "Afternoon Snack", Food: "Handful of mixed nuts", Calories: 160},
			{Name: "Dinner", Food: "Grilled chicken with roasted vegetables", Calories: 460},
		},
		TotalCalories: 1650,
	},
}

// FallbackTips returns the static tips for key. Unknown keys get the general set.
func FallbackTips(key string) []string {
	tips, ok := fallbackTips[normalizeKey(key)]
	if !ok {
		tips = fallbackTips[TipsGeneral]
	}
	return slices.Clone(tips)
}

// FallbackPlan returns the static plan for goal. Unknown goals get the maintenance plan.
func FallbackPlan(goal string) Plan {
	plan, ok := fallbackPlans[normalizeKey(goal)]
	if !ok {
		plan = fallbackPlans[GoalMaintenance]
	}
	return Plan{
		Meals:         slices.Clone(plan.Meals),
		TotalCalories: plan.TotalCalories,
	}
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
