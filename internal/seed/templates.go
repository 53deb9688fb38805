package seed

// templateSeed is a starter template whose exercises are referenced by catalog name.
type templateSeed struct {
	Name                     string
	Description              string
	Category                 string
	DifficultyLevel          string
	EstimatedDurationMinutes int
	EstimatedCalories        int
	ImageURL                 string
	EquipmentNeeded          []string
	TargetMuscleGroups       []string
	Exercises                []templateExerciseSeed
}

type templateExerciseSeed struct {
	ExerciseName    string
	Order           int
	Sets            *int
	Reps            *int
	DurationSeconds *int
	RestSeconds     int
}

func setsReps(name string, order, sets, reps, rest int) templateExerciseSeed {
	return templateExerciseSeed{ExerciseName: name, Order: order, Sets: &sets, Reps: &reps, RestSeconds: rest}
}

func timed(name string, order, seconds, rest int) templateExerciseSeed {
	return templateExerciseSeed{ExerciseName: name, Order: order, DurationSeconds: &seconds, RestSeconds: rest}
}

var starterTemplates = []templateSeed{
	{
		Name:                     "Morning Energizer",
		Description:              "A quick 15-minute morning routine to kickstart your day with energy and focus.",
		Category:                 "cardio",
		DifficultyLevel:          "beginner",
		EstimatedDurationMinutes: 15,
		EstimatedCalories:        120,
		ImageURL:                 "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=300&fit=crop",
		EquipmentNeeded:          []string{"None"},
		TargetMuscleGroups:       []string{"full body", "core"},
		Exercises: []templateExerciseSeed{
			timed("Jumping Jacks", 1, 60, 30),
			setsReps("Push-ups", 2, 2, 10, 60),
			timed("Mountain Climbers", 3, 45, 30),
			setsReps("Squats", 4, 2, 15, 60),
			timed("Plank", 5, 30, 30),
		},
	},
	{
		Name:                     "Upper Body Strength",
		Description:              "Build upper body strength with this focused 30-minute workout targeting chest, shoulders, and arms.",
		Category:                 "strength",
		DifficultyLevel:          "intermediate",
		EstimatedDurationMinutes: 30,
		EstimatedCalories:        250,
		ImageURL:                 "https://images.unsplash.com/photo-1581009146145-b5ef050c2e1e?w=400&h=300&fit=crop",
		EquipmentNeeded:          []string{"Dumbbells", "Bench"},
		TargetMuscleGroups:       []string{"chest", "shoulders", "biceps", "triceps"},
		Exercises: []templateExerciseSeed{
			setsReps("Push-ups", 1, 3, 12, 90),
			setsReps("Shoulder Press", 2, 3, 10, 90),
			setsReps("Bicep Curls", 3, 3, 12, 60),
			setsReps("Rows", 4, 3, 10, 90),
			setsReps("Dips", 5, 3, 8, 60),
		},
	},
	{
		Name:                     "HIIT Fat Burner",
		Description:              "High-intensity interval training to maximize calorie burn in just 20 minutes.",
		Category:                 "hiit",
		DifficultyLevel:          "advanced",
		EstimatedDurationMinutes: 20,
		EstimatedCalories:        300,
		ImageURL:                 "https://images.unsplash.com/photo-1518611012118-696072aa579a?w=400&h=300&fit=crop",
		EquipmentNeeded:          []string{"None"},
		TargetMuscleGroups:       []string{"full body", "core"},
		Exercises: []templateExerciseSeed{
			timed("Burpees", 1, 45, 15),
			timed("Mountain Climbers", 2, 45, 15),
			timed("Jump Squats", 3, 45, 15),
			timed("High Knees", 4, 45, 15),
			timed("Plank Jacks", 5, 45, 60),
		},
	},
	{
		Name:                     "Lower Body Power",
		Description:              "Strengthen and tone your legs and glutes with this comprehensive lower body workout.",
		Category:                 "strength",
		DifficultyLevel:          "intermediate",
		EstimatedDurationMinutes: 35,
		EstimatedCalories:        280,
		ImageURL:                 "https://images.unsplash.com/photo-1566241440091-ec10de8db2e1?w=400&h=300&fit=crop",
		EquipmentNeeded:          []string{"Dumbbells"},
		TargetMuscleGroups:       []string{"quads", "hamstrings", "glutes", "calves"},
		Exercises: []templateExerciseSeed{
			setsReps("Squats", 1, 4, 15, 90),
			setsReps("Lunges", 2, 3, 12, 60),
			setsReps("Deadlifts", 3, 3, 10, 120),
			setsReps("Calf Raises", 4, 3, 20, 60),
			setsReps("Glute Bridges", 5, 3, 15, 60),
		},
	},
	{
		Name:                     "Core Crusher",
		Description:              "Target your core muscles with this intense 25-minute abdominal workout.",
		Category:                 "strength",
		DifficultyLevel:          "intermediate",
		EstimatedDurationMinutes: 25,
		EstimatedCalories:        180,
		ImageURL:                 "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=300&fit=crop",
		EquipmentNeeded:          []string{"Exercise Mat"},
		TargetMuscleGroups:       []string{"abs", "obliques", "core"},
		Exercises: []templateExerciseSeed{
			timed("Plank", 1, 60, 30),
			setsReps("Russian Twists", 2, 3, 20, 45),
			setsReps("Crunches", 3, 3, 20, 45),
			timed("Mountain Climbers", 4, 45, 30),
			setsReps("Dead Bug", 5, 3, 10, 60),
		},
	},
	{
		Name:                     "Yoga Flow Basics",
		Description:              "A gentle 30-minute yoga flow perfect for beginners to improve flexibility and mindfulness.",
		Category:                 "flexibility",
		DifficultyLevel:          "beginner",
		EstimatedDurationMinutes: 30,
		EstimatedCalories:        150,
		ImageURL:                 "https://images.unsplash.com/photo-1506126613408-eca07ce68773?w=400&h=300&fit=crop",
		EquipmentNeeded:          []string{"Yoga Mat"},
		TargetMuscleGroups:       []string{"full body", "core"},
		Exercises: []templateExerciseSeed{
			timed("Cat-Cow Stretch", 1, 300, 30),
			timed("Pigeon Pose", 2, 120, 30),
			timed("Downward Dog", 3, 60, 30),
			timed("Child's Pose", 4, 90, 30),
			timed("Downward Dog", 5, 120, 30),
		},
	},
}
