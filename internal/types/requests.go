package types

// CreateBMIRequest is the body of POST /api/bmi. Height and weight are metric;
// the imperial fields are optional alternatives and win when present.
type CreateBMIRequest struct {
	UserID       string   `json:"userId" binding:"max=64"`
	Height       *float64 `json:"height"`
	Weight       *float64 `json:"weight"`
	HeightFeet   *float64 `json:"heightFeet"`
	HeightInches *float64 `json:"heightInches"`
	WeightLbs    *float64 `json:"weightLbs"`
	Age          *int     `json:"age"`
	Gender       string   `json:"gender"`
}

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	UserID  string `json:"userId" binding:"max=64"`
	Message string `json:"message" binding:"required"`
}

// ChatResponse is returned by POST /api/chat
type ChatResponse struct {
	Response string `json:"response"`
}

// CreateDietPlanRequest is the body of POST /api/diet-plans
type CreateDietPlanRequest struct {
	UserID        string `json:"userId" binding:"max=64"`
	Goal          string `json:"goal" binding:"required,max=64"`
	DietType      string `json:"dietType" binding:"max=64"`
	Allergies     string `json:"allergies"`
	ActivityLevel string `json:"activityLevel"`
}

// HealthTipsRequest is the body of POST /api/health-tips
type HealthTipsRequest struct {
	Category    string               `json:"category"`
	UserProfile *UserProfileSnapshot `json:"userProfile"`
}

// HealthTipsResponse is returned by POST /api/health-tips
type HealthTipsResponse struct {
	Tips []string `json:"tips"`
}
