package seed

import "github.com/2beens/fittracker/internal/exercises"

// starterExercises is the exercise catalog a fresh database starts with.
var starterExercises = []exercises.AddRequest{
	{
		Name:            "Push-ups",
		Description:     strPtr("A bodyweight exercise for upper body strength"),
		Category:        "strength",
		MuscleGroups:    []string{"chest", "shoulders", "triceps"},
		Equipment:       strPtr("none"),
		DifficultyLevel: strPtr("beginner"),
		Instructions:    strPtr("1. Start in plank position\n2. Lower body until chest nearly touches floor\n3. Push back up to starting position"),
	},
	{
		Name:            "Squats",
		Description:     strPtr("A compound exercise for lower body strength"),
		Category:        "strength",
		MuscleGroups:    []string{"quadriceps", "glutes", "hamstrings"},
		Equipment:       strPtr("none"),
		DifficultyLevel: strPtr("beginner"),
		Instructions:    strPtr("1. Stand with feet shoulder-width apart\n2. Lower body as if sitting back into a chair\n3. Return to standing position"),
	},
	{
		Name:            "Plank",
		Description:     strPtr("Core strengthening exercise"),
		Category:        "strength",
		MuscleGroups:    []string{"core", "shoulders"},
		Equipment:       strPtr("none"),
		DifficultyLevel: strPtr("beginner"),
		Instructions:    strPtr("1. Start in push-up position\n2. Hold position with straight body\n3. Keep core engaged"),
	},
	{
		Name:            "Pull-ups",
		Description:     strPtr("Upper body pulling exercise"),
		Category:        "strength",
		MuscleGroups:    []string{"back", "biceps", "forearms"},
		Equipment:       strPtr("pull-up bar"),
		DifficultyLevel: strPtr("intermediate"),
		Instructions:    strPtr("1. Hang from bar with overhand grip\n2. Pull body up until chin clears bar\n3. Lower with control"),
	},
	{
		Name:            "Lunges",
		Description:     strPtr("Single-leg strengthening exercise"),
		Category:        "strength",
		MuscleGroups:    []string{"quadriceps", "glutes", "hamstrings"},
		Equipment:       strPtr("none"),
		DifficultyLevel: strPtr("beginner"),
		Instructions:    strPtr("1. Step forward into lunge position\n2. Lower back knee toward ground\n3. Push back to starting position"),
	},
	{
		Name:            "Mountain Climbers",
		Description:     strPtr("Dynamic core and cardio exercise"),
		Category:        "cardio",
		MuscleGroups:    []string{"core", "shoulders", "legs"},
		Equipment:       strPtr("none"),
		DifficultyLevel: strPtr("intermediate"),
		Instructions:    strPtr("1. Start in plank position\n2. Alternate bringing knees to chest rapidly\n3. Maintain plank form throughout"),
	},
	{
		Name:            "Burpees",
		Description:     strPtr("Full-body high-intensity exercise"),
		Category:        "cardio",
		MuscleGroups:    []string{"full body"},
		Equipment:       strPtr("none"),
		DifficultyLevel: strPtr("advanced"),
		Instructions:    strPtr("1. Start standing\n2. Drop to squat, kick back to plank\n3. Do push-up, jump feet back, jump up"),
	},
	{
		Name:            "Jumping Jacks",
		Description:     strPtr("Classic cardio warm-up exercise"),
		Category:        "cardio",
		MuscleGroups:    []string{"full body"},
		Equipment:       strPtr("none"),
		DifficultyLevel: strPtr("beginner"),
		Instructions:    strPtr("1. Start with feet together, arms at sides\n2. Jump feet apart while raising arms overhead\n3. Jump back to starting position"),
	},
	{
		Name:            "Dips",
		Description:     strPtr("Triceps and chest strengthening exercise"),
		Category:        "strength",
		MuscleGroups:    []string{"triceps", "chest", "shoulders"},
		Equipment:       strPtr("dip bars or chair"),
		DifficultyLevel: strPtr("intermediate"),
		Instructions:    strPtr("1. Support body weight on dip bars\n2. Lower body by bending elbows\n3. Push back up to starting position"),
	},
	{
		Name:            "High Knees",
		Description:     strPtr("Running in place with high knee lift"),
		Category:        "cardio",
		MuscleGroups:    []string{"legs", "core"},
		Equipment:       strPtr("none"),
		DifficultyLevel: strPtr("beginner"),
		Instructions:    strPtr("1. Stand in place\n2. Run lifting knees to waist level\n3. Pump arms naturally"),
	},
	{
		Name:            "Bench Press",
		Description:     strPtr("Upper body pressing exercise with barbell"),
		Category:        "strength",
		MuscleGroups:    []string{"chest", "shoulders", "triceps"},
		Equipment:       strPtr("barbell,bench"),
		DifficultyLevel: strPtr("intermediate"),
		Instructions:    strPtr("1. Lie on bench with feet on floor\n2. Lower bar to chest with control\n3. Press bar back to starting position"),
	},
	{
		Name:            "Deadlifts",
		Description:     strPtr("Full body compound lifting exercise"),
		Category:        "strength",
		MuscleGroups:    []string{"hamstrings", "glutes", "back", "traps"},
		Equipment:       strPtr("barbell"),
		DifficultyLevel: strPtr("advanced"),
		Instructions:    strPtr("1. Stand with feet hip-width apart\n2. Hinge at hips and grip bar\n3. Stand up straight lifting bar"),
	},
	{
		Name:            "Bicep Curls",
		Description:     strPtr("Isolated bicep strengthening exercise"),
		Category:        "strength",
		MuscleGroups:    []string{"biceps"},
		Equipment:       strPtr("dumbbells"),
		DifficultyLevel: strPtr("beginner"),
		Instructions:    strPtr("1. Hold dumbbells at sides\n2. Curl weights toward shoulders\n3. Lower with control"),
	},
	{
		Name:            "Shoulder Press",
		Description:     strPtr("Overhead pressing exercise for shoulders"),
		Category:        "strength",
		MuscleGroups:    []string{"shoulders", "triceps"},
		Equipment:       strPtr("dumbbells"),
		DifficultyLevel: strPtr("intermediate"),
		Instructions:    strPtr("1. Hold dumbbells at shoulder height\n2. Press weights overhead\n3. Lower back to shoulders"),
	},
	{
		Name:            "Rows",
		Description:     strPtr("Pulling exercise for back muscles"),
		Category:        "strength",
		MuscleGroups:    []string{"back", "biceps"},
		Equipment:       strPtr("dumbbells"),
		DifficultyLevel: strPtr("intermediate"),
		Instructions:    strPtr("1. Bend over with weight in hand\n2. Pull weight to lower chest\n3. Lower with control"),
	},
	{
		Name:            "Leg Press",
		Description:     strPtr("Machine-based leg strengthening exercise"),
		Category:        "strength",
		MuscleGroups:    []string{"quadriceps", "glutes", "hamstrings"},
		Equipment:       strPtr("leg press machine"),
		DifficultyLevel: strPtr("beginner"),
		Instructions:    strPtr("1. Sit in machine with feet on platform\n2. Lower weight by bending knees\n3. Press back to starting position"),
	},
	{
		Name:            "Running",
		Description:     strPtr("Cardiovascular exercise for endurance"),
		Category:        "cardio",
		MuscleGroups:    []string{"legs", "core"},
		Equipment:       strPtr("none"),
		DifficultyLevel: strPtr("intermediate"),
		Instructions:    strPtr("1. Start with a warm-up walk\n2. Maintain steady pace\n3. Cool down with walking"),
	},
	{
		Name:            "Cycling",
		Description:     strPtr("Low-impact cardio exercise"),
		Category:        "cardio",
		MuscleGroups:    []string{"legs", "glutes"},
		Equipment:       strPtr("bicycle or stationary bike"),
		DifficultyLevel: strPtr("beginner"),
		Instructions:    strPtr("1. Adjust seat height properly\n2. Start with easy pace\n3. Gradually increase intensity"),
	},
	{
		Name:            "Jump Rope",
		Description:     strPtr("High-intensity cardio with coordination"),
		Category:        "cardio",
		MuscleGroups:    []string{"legs", "shoulders", "core"},
		Equipment:       strPtr("jump rope"),
		DifficultyLevel: strPtr("intermediate"),
		Instructions:    strPtr("1. Hold rope handles at sides\n2. Jump with both feet together\n3. Maintain steady rhythm"),
	},
	{
		Name:            "Rowing",
		Description:     strPtr("Full-body cardio exercise"),
		Category:        "cardio",
		MuscleGroups:    []string{"back", "legs", "core", "arms"},
		Equipment:       strPtr("rowing machine"),
		DifficultyLevel: strPtr("intermediate"),
		Instructions:    strPtr("1. Sit with good posture\n2. Drive with legs first\n3. Pull handle to lower chest"),
	},
	{
		Name:            "Cat-Cow Stretch",
		Description:     strPtr("Spinal mobility exercise"),
		Category:        "flexibility",
		MuscleGroups:    []string{"spine", "core"},
		Equipment:       strPtr("none"),
		DifficultyLevel: strPtr("beginner"),
		Instructions:    strPtr("1. Start on hands and knees\n2. Arch back looking up (cow)\n3. Round back looking down (cat)"),
	},
	{
		Name:            "Downward Dog",
		Description:     strPtr("Full body stretch from yoga"),
		Category:        "flexibility",
		MuscleGroups:    []string{"hamstrings", "calves", "shoulders"},
		Equipment:       strPtr("none"),
		DifficultyLevel: strPtr("beginner"),
		Instructions:    strPtr("1. Start on hands and knees\n2. Tuck toes and lift hips up\n3. Straighten legs and arms"),
	},
	{
		Name:            "Child's Pose",
		Description:     strPtr("Relaxing stretch for back and hips"),
		Category:        "flexibility",
		MuscleGroups:    []string{"back", "hips"},
		Equipment:       strPtr("none"),
		DifficultyLevel: strPtr("beginner"),
		Instructions:    strPtr("1. Kneel on floor\n2. Sit back on heels\n3. Reach arms forward and rest head down"),
	},
	{
		Name:            "Pigeon Pose",
		Description:     strPtr("Deep hip opening stretch"),
		Category:        "flexibility",
		MuscleGroups:    []string{"hips", "glutes"},
		Equipment:       strPtr("none"),
		DifficultyLevel: strPtr("intermediate"),
		Instructions:    strPtr("1. Start in downward dog\n2. Bring one knee forward\n3. Extend back leg straight"),
	},
	{
		Name:            "Crunches",
		Description:     strPtr("Basic abdominal strengthening exercise"),
		Category:        "strength",
		MuscleGroups:    []string{"abs"},
		Equipment:       strPtr("none"),
		DifficultyLevel: strPtr("beginner"),
		Instructions:    strPtr("1. Lie on back with knees bent\n2. Lift shoulders off ground\n3. Lower back down with control"),
	},
	{
		Name:            "Russian Twists",
		Description:     strPtr("Rotational core exercise"),
		Category:        "strength",
		MuscleGroups:    []string{"abs", "obliques"},
		Equipment:       strPtr("none"),
		DifficultyLevel: strPtr("intermediate"),
		Instructions:    strPtr("1. Sit with knees bent, lean back slightly\n2. Rotate torso left and right\n3. Keep feet off ground for added difficulty"),
	},
	{
		Name:            "Dead Bug",
		Description:     strPtr("Core stability exercise"),
		Category:        "strength",
		MuscleGroups:    []string{"core"},
		Equipment:       strPtr("none"),
		DifficultyLevel: strPtr("beginner"),
		Instructions:    strPtr("1. Lie on back with arms up and knees bent\n2. Lower opposite arm and leg\n3. Return to starting position"),
	},
	{
		Name:            "Leg Raises",
		Description:     strPtr("Lower abdominal strengthening exercise"),
		Category:        "strength",
		MuscleGroups:    []string{"lower abs"},
		Equipment:       strPtr("none"),
		DifficultyLevel: strPtr("intermediate"),
		Instructions:    strPtr("1. Lie on back with legs straight\n2. Lift legs to 90 degrees\n3. Lower legs without touching ground"),
	},
	{
		Name:            "Turkish Get-Up",
		Description:     strPtr("Complex functional movement pattern"),
		Category:        "strength",
		MuscleGroups:    []string{"full body"},
		Equipment:       strPtr("kettlebell"),
		DifficultyLevel: strPtr("advanced"),
		Instructions:    strPtr("1. Lie with weight in one hand\n2. Slowly stand up keeping weight overhead\n3. Reverse the movement to return"),
	},
	{
		Name:            "Farmer's Walk",
		Description:     strPtr("Grip and core strengthening exercise"),
		Category:        "strength",
		MuscleGroups:    []string{"grip", "core", "traps"},
		Equipment:       strPtr("dumbbells or kettlebells"),
		DifficultyLevel: strPtr("intermediate"),
		Instructions:    strPtr("1. Hold heavy weights at sides\n2. Walk forward with good posture\n3. Maintain tight core throughout"),
	},
	{
		Name:            "Box Jumps",
		Description:     strPtr("Plyometric jumping exercise"),
		Category:        "cardio",
		MuscleGroups:    []string{"legs", "glutes"},
		Equipment:       strPtr("plyometric box"),
		DifficultyLevel: strPtr("intermediate"),
		Instructions:    strPtr("1. Stand in front of box\n2. Jump up onto box landing softly\n3. Step or jump down carefully"),
	},
}
